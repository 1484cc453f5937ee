package scoring

import (
	"math/rand"
	"testing"

	"culture-match/internal/domain"

	"github.com/stretchr/testify/assert"
)

func fullScores(v float64) domain.CategoryScores {
	s := make(domain.CategoryScores)
	for _, c := range domain.AllCategories() {
		s[c] = v
	}
	return s
}

func TestCompare_Examples(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.CategoryScores
		want int
	}{
		{
			name: "identical partial profiles",
			a:    domain.CategoryScores{domain.CategoryFood: 9, domain.CategoryMusic: 9},
			b:    domain.CategoryScores{domain.CategoryFood: 9, domain.CategoryMusic: 9},
			want: 100,
		},
		{
			name: "opposite ends of the only shared category",
			a:    domain.CategoryScores{domain.CategoryFood: 10},
			b:    domain.CategoryScores{domain.CategoryFood: 0},
			want: 0,
		},
		{
			name: "no overlap",
			a:    domain.CategoryScores{domain.CategoryFood: 5},
			b:    domain.CategoryScores{domain.CategoryMusic: 5},
			want: 0,
		},
		{
			name: "empty",
			a:    domain.CategoryScores{},
			b:    nil,
			want: 0,
		},
		{
			name: "missing categories are skipped, not zeroed",
			a:    domain.CategoryScores{domain.CategoryFamily: 8, domain.CategoryValues: 3},
			b:    domain.CategoryScores{domain.CategoryFamily: 8},
			want: 100,
		},
		{
			name: "unweighted categories do not contribute",
			a:    domain.CategoryScores{domain.CategoryHolidays: 10, domain.CategoryRegional: 10},
			b:    domain.CategoryScores{domain.CategoryHolidays: 0, domain.CategoryRegional: 0},
			want: 0,
		},
		{
			// traditions: 8*2.0, food: 10*1.5 -> 31 / 3.5 * 10 = 88.57
			name: "weighted mix",
			a:    domain.CategoryScores{domain.CategoryTraditions: 9, domain.CategoryFood: 5},
			b:    domain.CategoryScores{domain.CategoryTraditions: 7, domain.CategoryFood: 5},
			want: 89,
		},
		{
			name: "out of range inputs are clamped",
			a:    domain.CategoryScores{domain.CategoryMusic: 14},
			b:    domain.CategoryScores{domain.CategoryMusic: 10},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestCompare_IdenticalCompleteProfiles(t *testing.T) {
	for _, v := range []float64{0, 3.3, 7, 10} {
		assert.Equal(t, 100, Compare(fullScores(v), fullScores(v)))
	}
}

func TestCompare_SymmetricAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := func() domain.CategoryScores {
		s := make(domain.CategoryScores)
		for _, c := range domain.AllCategories() {
			if rng.Intn(4) == 0 {
				continue
			}
			s[c] = rng.Float64()*14 - 2
		}
		return s
	}

	for i := 0; i < 500; i++ {
		a, b := random(), random()
		ab, ba := Compare(a, b), Compare(b, a)
		assert.Equal(t, ab, ba)
		assert.GreaterOrEqual(t, ab, 0)
		assert.LessOrEqual(t, ab, 100)
	}
}

func TestBreakdown(t *testing.T) {
	a := domain.CategoryScores{
		domain.CategoryFood: 8, domain.CategoryMusic: 9, domain.CategoryFamily: 4, domain.CategoryHolidays: 9,
	}
	b := domain.CategoryScores{
		domain.CategoryFood: 7, domain.CategoryMusic: 6, domain.CategoryFamily: 9, domain.CategoryHolidays: 9,
	}

	got := Breakdown(a, b)

	assert.Equal(t, []CategoryMatch{
		{Category: domain.CategoryFood, Compatibility: 9, Weight: 1.5},
		{Category: domain.CategoryMusic, Compatibility: 7, Weight: 1.5},
		{Category: domain.CategoryFamily, Compatibility: 5, Weight: 2.0},
	}, got.Categories)
	assert.Equal(t, []domain.Category{domain.CategoryFood}, got.SharedStrengths)
	// (13.5 + 10.5 + 10) / 5 * 10 = 68
	assert.Equal(t, 68, got.Percentage)
}
