package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/eventease/pkg/models"
)

type reviewList struct {
	Reviews []models.Review `validate:"dive"`
}

func TestStructAcceptsValidRecords(t *testing.T) {
	err := Struct(models.ScheduleEntry{Name: "Keynote Speech", Time: "10:00 AM", Description: "Keynote."})
	assert.NoError(t, err)
}

func TestStructReportsFieldPath(t *testing.T) {
	list := reviewList{Reviews: []models.Review{
		{Author: "Alice Johnson", Comment: "Great event!", Rating: 5},
		{Author: "Bob Smith", Comment: "Nice.", Rating: 9},
	}}

	err := Struct(list)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "reviews[1].rating", ve.Field)
	assert.Contains(t, ve.Error(), "max")
}

func TestStructRequiresScheduleFields(t *testing.T) {
	err := Struct(models.ScheduleEntry{Name: "Opening Ceremony"})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "time", ve.Field)
}
