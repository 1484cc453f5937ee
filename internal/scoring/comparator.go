package scoring

import (
	"math"

	"culture-match/internal/domain"
)

// SharedStrengthThreshold is the score both sides need for a category to count as a shared strength.
const SharedStrengthThreshold = 7.0

// CategoryMatch is the compatibility of one shared category, on the 0-10 scale.
type CategoryMatch struct {
	Category      domain.Category
	Compatibility float64
	Weight        float64
}

// Comparison is the detailed result of comparing two sets of category scores.
type Comparison struct {
	Percentage      int
	Categories      []CategoryMatch
	SharedStrengths []domain.Category
}

// Compare returns the 0-100 match percentage of a and b.
func Compare(a, b domain.CategoryScores) int {
	return Breakdown(a, b).Percentage
}

// Breakdown compares a and b category by category. Categories missing on either side
// or without a compatibility weight are skipped; with no overlap the percentage is 0.
// The result is symmetric in a and b.
func Breakdown(a, b domain.CategoryScores) Comparison {
	var cmp Comparison
	var sum, total float64

	for _, c := range domain.AllCategories() {
		w, weighted := c.CompatibilityWeight()
		if !weighted {
			continue
		}
		va, okA := a[c]
		vb, okB := b[c]
		if !okA || !okB {
			continue
		}
		va, vb = domain.ClampScore(va), domain.ClampScore(vb)

		compat := math.Max(0, domain.MaxScore-math.Abs(va-vb))
		sum += compat * w
		total += w
		cmp.Categories = append(cmp.Categories, CategoryMatch{Category: c, Compatibility: compat, Weight: w})

		if va >= SharedStrengthThreshold && vb >= SharedStrengthThreshold {
			cmp.SharedStrengths = append(cmp.SharedStrengths, c)
		}
	}

	if total == 0 {
		return cmp
	}

	pct := int(math.Round(sum / total * 10))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	cmp.Percentage = pct
	return cmp
}
