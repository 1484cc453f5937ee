package dto

import (
	"math"
	"time"

	"culture-match/internal/domain"
)

// AnswerRequest is one answer in a questionnaire submission.
// @Description Supply value for sliders, selected_option_ids for choice questions or ranking for ranking questions.
type AnswerRequest struct {
	QuestionID        string   `json:"question_id"`
	Value             *float64 `json:"value,omitempty"`
	SelectedOptionIDs []string `json:"selected_option_ids,omitempty"`
	Ranking           []string `json:"ranking,omitempty"`
}

// SubmitAnswersRequest is the body of POST /profiles.
type SubmitAnswersRequest struct {
	Answers []AnswerRequest `json:"answers"`
}

// ToDomain converts the request answers.
func (r *SubmitAnswersRequest) ToDomain() []domain.Answer {
	out := make([]domain.Answer, 0, len(r.Answers))
	for _, a := range r.Answers {
		out = append(out, domain.Answer{
			QuestionID:        a.QuestionID,
			Value:             a.Value,
			SelectedOptionIDs: a.SelectedOptionIDs,
			Ranking:           a.Ranking,
		})
	}
	return out
}

// ProfileResponse represents a scored cultural profile.
// @Description category_scores lists all categories; unanswered ones are 0 and absent from answered_categories.
type ProfileResponse struct {
	ID                 string             `json:"id"`
	RespondentID       string             `json:"respondent_id"`
	CategoryScores     map[string]float64 `json:"category_scores"`
	AnsweredCategories []string           `json:"answered_categories"`
	OverallScore       float64            `json:"overall_score"`
	OverallPercentage  int                `json:"overall_percentage"`
	CulturalStrength   string             `json:"cultural_strength"`
	ProfileType        string             `json:"profile_type"`
	Recommendations    []string           `json:"recommendations"`
	CreatedAt          time.Time          `json:"created_at"`
}

// NewProfileResponse renders p for the API. Scores are rounded to two decimals.
func NewProfileResponse(p *domain.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:                 p.ID,
		RespondentID:       p.RespondentID,
		CategoryScores:     make(map[string]float64, len(domain.AllCategories())),
		AnsweredCategories: []string{},
		OverallScore:       round2(p.OverallScore),
		OverallPercentage:  int(math.Round(p.OverallScore * 10)),
		CulturalStrength:   string(p.CulturalStrength),
		ProfileType:        string(p.ProfileType),
		Recommendations:    p.Recommendations,
		CreatedAt:          p.CreatedAt,
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []string{}
	}
	for _, c := range domain.AllCategories() {
		s, answered := p.CategoryScores[c]
		resp.CategoryScores[string(c)] = round2(s)
		if answered {
			resp.AnsweredCategories = append(resp.AnsweredCategories, string(c))
		}
	}
	return resp
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// QuestionnaireResponse is the active question schema.
type QuestionnaireResponse struct {
	Version   string            `json:"version"`
	Questions []domain.Question `json:"questions"`
}

// CategoryResponse describes one category and the questionnaire section that covers it.
type CategoryResponse struct {
	ID                  string   `json:"id"`
	Label               string   `json:"label"`
	CompatibilityWeight *float64 `json:"compatibility_weight,omitempty"`
	QuestionIDs         []string `json:"question_ids"`
}
