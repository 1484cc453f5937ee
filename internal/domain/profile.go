package domain

import (
	"context"
	"time"
)

// CulturalStrength is the five-tier summary of a profile's overall score.
type CulturalStrength string

const (
	StrengthVeryStrong CulturalStrength = "Very Strong"
	StrengthStrong     CulturalStrength = "Strong"
	StrengthModerate   CulturalStrength = "Moderate"
	StrengthDeveloping CulturalStrength = "Developing"
	StrengthFlexible   CulturalStrength = "Flexible"
)

// ProfileType names the dominant pattern of a profile's category scores.
type ProfileType string

const (
	ProfileTypeTraditionGuardian ProfileType = "Tradition Guardian"
	ProfileTypeCulturalBridge    ProfileType = "Cultural Bridge"
	ProfileTypeCultureEnthusiast ProfileType = "Culture Enthusiast"
	ProfileTypeFamilyHeart       ProfileType = "Family Heart"
	ProfileTypeCulturalExplorer  ProfileType = "Cultural Explorer"
)

// CategoryScores maps a category to its 0-10 score. Absent categories were not answered.
type CategoryScores map[Category]float64

// Get returns the score for c, or 0 when c was not answered.
func (s CategoryScores) Get(c Category) float64 {
	return s[c]
}

// Profile is the scored result of one completed questionnaire.
// A retake replaces the whole profile.
type Profile struct {
	ID               string
	RespondentID     string
	CategoryScores   CategoryScores // 응답한 카테고리만 포함 (0 ~ 10)
	OverallScore     float64        // 응답한 카테고리 점수의 평균
	CulturalStrength CulturalStrength
	ProfileType      ProfileType
	Recommendations  []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProfileRepository defines the interface for profile persistence.
type ProfileRepository interface {
	// ReplaceForRespondent removes any stored profile of the respondent and stores p.
	ReplaceForRespondent(ctx context.Context, p *Profile) error
	// GetByRespondentID returns nil, nil when the respondent has no profile.
	GetByRespondentID(ctx context.Context, respondentID string) (*Profile, error)
	// ListCandidates returns the most recently updated profiles of other respondents.
	ListCandidates(ctx context.Context, excludeRespondentID string, limit int) ([]*Profile, error)
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
