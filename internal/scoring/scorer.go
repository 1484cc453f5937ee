// Package scoring turns questionnaire answers into cultural profiles and compares them.
// Everything here is pure and safe for concurrent use.
package scoring

import (
	"culture-match/internal/domain"
)

// QuestionLookup resolves a question by its id.
type QuestionLookup interface {
	Question(id string) (*domain.Question, bool)
}

// MaxRecommendations caps the recommendation list of a profile.
const MaxRecommendations = 4

type recommendationRule struct {
	category  domain.Category
	threshold float64
	text      string
}

// Evaluated in order; the first MaxRecommendations matches are kept.
var recommendationRules = []recommendationRule{
	{domain.CategoryFood, 7, "Join a Portuguese cooking workshop and share family recipes"},
	{domain.CategoryMusic, 7, "Attend a fado night with other members of the community"},
	{domain.CategoryCommunity, 6, "Get involved with your local Portuguese community centre"},
	{domain.CategoryLanguage, 7, "Share your Portuguese by volunteering as a language teacher"},
	{domain.CategoryTraditions, 8, "Help organise a traditional Portuguese festival"},
	{domain.CategoryFamily, 8, "Host a family-style gathering for newcomers"},
	{domain.CategoryHolidays, 7, "Celebrate the Santos Populares with a local group"},
	{domain.CategoryRegional, 7, "Connect with a regional association from your home region"},
}

// Score aggregates answers into a profile. Answers referencing unknown questions or
// carrying no usable value are skipped; an empty answer set yields a zero "Flexible" profile.
// The returned profile has no ID, respondent or timestamps.
func Score(answers []domain.Answer, schema QuestionLookup) *domain.Profile {
	weighted := make(map[domain.Category]float64)
	weights := make(map[domain.Category]float64)

	for i := range answers {
		q, ok := schema.Question(answers[i].QuestionID)
		if !ok || q.Weight <= 0 {
			continue
		}
		v, ok := answers[i].Resolve(q)
		if !ok {
			continue
		}
		weighted[q.Category] += domain.ClampScore(v) * q.Weight
		weights[q.Category] += q.Weight
	}

	scores := make(domain.CategoryScores, len(weights))
	var sum float64
	for _, c := range domain.AllCategories() {
		w := weights[c]
		if w == 0 {
			continue
		}
		s := domain.ClampScore(weighted[c] / w)
		scores[c] = s
		sum += s
	}

	var overall float64
	if len(scores) > 0 {
		overall = domain.ClampScore(sum / float64(len(scores)))
	}

	return &domain.Profile{
		CategoryScores:   scores,
		OverallScore:     overall,
		CulturalStrength: StrengthFor(overall),
		ProfileType:      ProfileTypeFor(scores),
		Recommendations:  RecommendationsFor(scores),
	}
}

// StrengthFor maps an overall score to its tier. Lower bounds are inclusive.
func StrengthFor(overall float64) domain.CulturalStrength {
	switch {
	case overall >= 8.5:
		return domain.StrengthVeryStrong
	case overall >= 7.0:
		return domain.StrengthStrong
	case overall >= 5.5:
		return domain.StrengthModerate
	case overall >= 3.5:
		return domain.StrengthDeveloping
	default:
		return domain.StrengthFlexible
	}
}

// ProfileTypeFor applies the first matching rule; unanswered categories count as 0.
func ProfileTypeFor(s domain.CategoryScores) domain.ProfileType {
	switch {
	case s.Get(domain.CategoryTraditions) >= 8 && s.Get(domain.CategoryLanguage) >= 8:
		return domain.ProfileTypeTraditionGuardian
	case s.Get(domain.CategoryIntegration) >= 7 && s.Get(domain.CategoryCommunity) >= 7:
		return domain.ProfileTypeCulturalBridge
	case s.Get(domain.CategoryFood) >= 8 && s.Get(domain.CategoryMusic) >= 8:
		return domain.ProfileTypeCultureEnthusiast
	case s.Get(domain.CategoryFamily) >= 8:
		return domain.ProfileTypeFamilyHeart
	default:
		return domain.ProfileTypeCulturalExplorer
	}
}

// RecommendationsFor returns at most MaxRecommendations suggestions in rule order.
func RecommendationsFor(s domain.CategoryScores) []string {
	out := make([]string, 0, MaxRecommendations)
	for _, r := range recommendationRules {
		if len(out) == MaxRecommendations {
			break
		}
		if s.Get(r.category) >= r.threshold {
			out = append(out, r.text)
		}
	}
	return out
}
