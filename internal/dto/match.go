package dto

// CompareRequest carries two category score maps keyed by category id.
type CompareRequest struct {
	A map[string]float64 `json:"a"`
	B map[string]float64 `json:"b"`
}

// CategoryMatchResponse is the 0-10 compatibility of one shared category.
type CategoryMatchResponse struct {
	Category      string  `json:"category"`
	Compatibility float64 `json:"compatibility"`
	Weight        float64 `json:"weight"`
}

// CompareResponse is the result of comparing two score maps.
type CompareResponse struct {
	Percentage      int                     `json:"percentage"`
	Categories      []CategoryMatchResponse `json:"categories"`
	SharedStrengths []string                `json:"shared_strengths"`
}

// MatchResponse is one ranked candidate.
type MatchResponse struct {
	RespondentID     string   `json:"respondent_id"`
	ProfileType      string   `json:"profile_type"`
	CulturalStrength string   `json:"cultural_strength"`
	Percentage       int      `json:"percentage"`
	SharedStrengths  []string `json:"shared_strengths"`
}

// MatchesResponse lists candidates ordered by percentage, highest first.
type MatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
	Total   int             `json:"total"`
}
