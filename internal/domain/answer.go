package domain

// Answer is a respondent's response to one question. Exactly one of Value,
// SelectedOptionIDs or Ranking is expected to be set, matching the question type.
type Answer struct {
	QuestionID        string   `json:"question_id"`
	Value             *float64 `json:"value,omitempty"`
	SelectedOptionIDs []string `json:"selected_option_ids,omitempty"`
	Ranking           []string `json:"ranking,omitempty"`
}

// Resolve turns the answer into a single value on the 0-10 scale using q's options.
// The second return is false when nothing usable was supplied.
func (a *Answer) Resolve(q *Question) (float64, bool) {
	switch q.Type {
	case QuestionTypeSlider:
		if a.Value == nil {
			return 0, false
		}
		return ClampScore(*a.Value), true
	case QuestionTypeMultipleChoice, QuestionTypeImageSelection:
		return a.resolveSelection(q)
	case QuestionTypeRanking:
		return a.resolveRanking(q)
	default:
		return 0, false
	}
}

func (a *Answer) resolveSelection(q *Question) (float64, bool) {
	var sum float64
	var n int
	for _, id := range a.SelectedOptionIDs {
		o, ok := q.Option(id)
		if !ok {
			continue
		}
		sum += ClampScore(o.Value)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return ClampScore(sum / float64(n)), true
}

// resolveRanking weights the option at position i of n known options by n-i,
// so the top choice dominates.
func (a *Answer) resolveRanking(q *Question) (float64, bool) {
	known := make([]Option, 0, len(a.Ranking))
	seen := make(map[string]struct{}, len(a.Ranking))
	for _, id := range a.Ranking {
		if _, dup := seen[id]; dup {
			continue
		}
		o, ok := q.Option(id)
		if !ok {
			continue
		}
		seen[id] = struct{}{}
		known = append(known, o)
	}
	if len(known) == 0 {
		return 0, false
	}

	var weighted, total float64
	n := len(known)
	for i, o := range known {
		w := float64(n - i)
		weighted += ClampScore(o.Value) * w
		total += w
	}
	return ClampScore(weighted / total), true
}
