package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByName(t *testing.T) {
	res, ok := ByName(BannerName)
	assert.True(t, ok)
	assert.Same(t, Banner(), res)

	res, ok = ByName(AvatarName)
	assert.True(t, ok)
	assert.Same(t, Avatar(), res)

	_, ok = ByName("missing.png")
	assert.False(t, ok)
}

func TestResourcesAreEmbedded(t *testing.T) {
	assert.Contains(t, string(Banner().Content()), "<svg")
	assert.Contains(t, string(Avatar().Content()), "<svg")
}
