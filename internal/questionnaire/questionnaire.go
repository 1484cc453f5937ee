// Package questionnaire holds the cultural question schema used for scoring.
package questionnaire

import (
	"fmt"
	"os"

	"culture-match/internal/domain"

	"gopkg.in/yaml.v3"
)

// Schema is an immutable, validated set of questions.
type Schema struct {
	Version   string            `yaml:"version"`
	Questions []domain.Question `yaml:"questions"`

	index map[string]int
}

// NewSchema validates questions and builds the lookup index.
func NewSchema(version string, questions []domain.Question) (*Schema, error) {
	s := &Schema{Version: version, Questions: questions}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) build() error {
	if len(s.Questions) == 0 {
		return domain.NewValidationError("questionnaire has no questions")
	}
	s.index = make(map[string]int, len(s.Questions))
	for i := range s.Questions {
		q := &s.Questions[i]
		if err := q.Validate(); err != nil {
			return err
		}
		if _, dup := s.index[q.ID]; dup {
			return domain.NewValidationError(fmt.Sprintf("duplicate question id %s", q.ID))
		}
		s.index[q.ID] = i
	}
	return nil
}

// Question implements scoring.QuestionLookup.
func (s *Schema) Question(id string) (*domain.Question, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.Questions[i], true
}

// ByCategory returns the questions of category c in schema order.
func (s *Schema) ByCategory(c domain.Category) []domain.Question {
	var out []domain.Question
	for _, q := range s.Questions {
		if q.Category == c {
			out = append(out, q)
		}
	}
	return out
}

// Load reads a YAML schema from path. An empty path returns the built-in schema.
func Load(path string) (*Schema, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questionnaire %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML schema document.
func Parse(raw []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to parse questionnaire: %w", err)
	}
	if err := s.build(); err != nil {
		return nil, fmt.Errorf("invalid questionnaire: %w", err)
	}
	return &s, nil
}
