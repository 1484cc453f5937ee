package domain

import "fmt"

// QuestionType describes how an answer to a question is collected.
type QuestionType string

const (
	QuestionTypeSlider         QuestionType = "slider"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeImageSelection QuestionType = "image_selection"
	QuestionTypeRanking        QuestionType = "ranking"
)

// MinScore and MaxScore bound every option value, answer value and category score.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Option is a selectable answer carrying a value on the 0-10 scale.
type Option struct {
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Question is an immutable questionnaire entry.
type Question struct {
	ID       string       `json:"id" yaml:"id"`
	Category Category     `json:"category" yaml:"category"`
	Type     QuestionType `json:"type" yaml:"type"`
	Prompt   string       `json:"prompt" yaml:"prompt"`
	Weight   float64      `json:"weight" yaml:"weight"`
	Options  []Option     `json:"options,omitempty" yaml:"options,omitempty"`
}

// Validate checks the question definition.
func (q *Question) Validate() error {
	if q.ID == "" {
		return NewValidationError("question id is required")
	}
	if !q.Category.IsValid() {
		return NewValidationError(fmt.Sprintf("question %s: unknown category %q", q.ID, q.Category))
	}
	if q.Weight <= 0 {
		return NewValidationError(fmt.Sprintf("question %s: weight must be positive", q.ID))
	}
	switch q.Type {
	case QuestionTypeSlider:
		return nil
	case QuestionTypeMultipleChoice, QuestionTypeImageSelection, QuestionTypeRanking:
		if len(q.Options) == 0 {
			return NewValidationError(fmt.Sprintf("question %s: at least one option is required", q.ID))
		}
		seen := make(map[string]struct{}, len(q.Options))
		for _, o := range q.Options {
			if o.ID == "" {
				return NewValidationError(fmt.Sprintf("question %s: option id is required", q.ID))
			}
			if _, dup := seen[o.ID]; dup {
				return NewValidationError(fmt.Sprintf("question %s: duplicate option %s", q.ID, o.ID))
			}
			seen[o.ID] = struct{}{}
		}
		return nil
	default:
		return NewValidationError(fmt.Sprintf("question %s: unknown type %q", q.ID, q.Type))
	}
}

// Option returns the option with the given id.
func (q *Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// ClampScore limits v to [MinScore, MaxScore].
func ClampScore(v float64) float64 {
	if v != v { // NaN
		return MinScore
	}
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
