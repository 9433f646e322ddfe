package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/validation"
)

// Document is the on-disk YAML shape of an event.
type Document struct {
	Event    models.EventDetails    `yaml:"event"`
	Schedule []models.ScheduleEntry `yaml:"schedule" validate:"min=1,dive"`
	Reviews  []models.Review        `yaml:"reviews" validate:"dive"`
}

// DocumentProvider serves content decoded from a Document.
type DocumentProvider struct {
	doc Document
}

var _ Provider = (*DocumentProvider)(nil)

// ParseYAML decodes and validates an event document.
func ParseYAML(data []byte) (*DocumentProvider, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode event document: %w", err)
	}

	if err := validation.Struct(doc); err != nil {
		return nil, err
	}

	return &DocumentProvider{doc: doc}, nil
}

// LoadYAML reads an event document from path.
func LoadYAML(path string) (*DocumentProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event document %s: %w", path, err)
	}

	p, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (p *DocumentProvider) Details() models.EventDetails {
	return p.doc.Event
}

func (p *DocumentProvider) Schedule() []models.ScheduleEntry {
	return append([]models.ScheduleEntry(nil), p.doc.Schedule...)
}

func (p *DocumentProvider) Reviews() []models.Review {
	return append([]models.Review(nil), p.doc.Reviews...)
}
