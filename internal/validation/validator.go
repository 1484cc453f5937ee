package validation

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"culture-match/internal/domain"
	"culture-match/internal/dto"
)

// MaxAnswers bounds the number of answers in one submission.
const MaxAnswers = 200

// Validator provides request validation functionality
type Validator struct {
	maxLimit int
}

// NewValidator creates a validator. maxLimit bounds the matches limit parameter.
func NewValidator(maxLimit int) *Validator {
	if maxLimit <= 0 {
		maxLimit = 50
	}
	return &Validator{maxLimit: maxLimit}
}

// ValidateSubmitAnswersRequest checks the shape of a questionnaire submission.
// Unknown question IDs are left to the scorer, which skips them.
func (v *Validator) ValidateSubmitAnswersRequest(req *dto.SubmitAnswersRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if req == nil || req.Answers == nil {
		return append(errs, domain.NewMissingFieldError("answers"))
	}
	if len(req.Answers) > MaxAnswers {
		errs = append(errs, domain.NewOutOfRangeError("answers", len(req.Answers), 0, MaxAnswers))
		return errs
	}

	for i, a := range req.Answers {
		field := fmt.Sprintf("answers[%d]", i)
		if strings.TrimSpace(a.QuestionID) == "" {
			errs = append(errs, domain.NewMissingFieldError(field+".question_id"))
		}
		if a.Value != nil && (math.IsNaN(*a.Value) || math.IsInf(*a.Value, 0)) {
			errs = append(errs, domain.NewInvalidFormatError(field+".value", *a.Value))
		}
	}
	return errs
}

// ValidateCompareRequest requires both maps, known categories and finite scores.
func (v *Validator) ValidateCompareRequest(req *dto.CompareRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if req == nil {
		return append(errs, domain.NewMissingFieldError("a"), domain.NewMissingFieldError("b"))
	}
	errs = append(errs, validateScores("a", req.A)...)
	errs = append(errs, validateScores("b", req.B)...)
	return errs
}

func validateScores(field string, scores map[string]float64) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if scores == nil {
		return append(errs, domain.NewMissingFieldError(field))
	}
	seen := make(map[domain.Category]bool, len(scores))
	for _, raw := range sortedKeys(scores) {
		v := scores[raw]
		key := fmt.Sprintf("%s.%s", field, raw)
		c, err := domain.ParseCategory(raw)
		if err != nil {
			errs = append(errs, domain.ValidationError{
				Field:   key,
				Code:    domain.CodeInvalidCategory,
				Message: fmt.Sprintf("unknown category %q", raw),
			})
			continue
		}
		// Keys are case-insensitive: "food" and "FOOD" name the same category.
		if seen[c] {
			errs = append(errs, domain.ValidationError{
				Field:   key,
				Code:    domain.CodeInvalidCategory,
				Message: fmt.Sprintf("category %s given more than once", c),
			})
			continue
		}
		seen[c] = true
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, domain.NewInvalidFormatError(key, v))
		}
	}
	return errs
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseLimit parses the optional limit query parameter. Empty means 0, the service default.
func (v *Validator) ParseLimit(raw string) (int, domain.ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
	}
	if n < 1 || n > v.maxLimit {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("limit", n, 1, v.maxLimit)}
	}
	return n, nil
}
