package domain

import (
	"fmt"
	"strings"
)

// Category is one of the fixed cultural dimensions questions and scores are bucketed by.
type Category string

const (
	CategoryFood        Category = "food"
	CategoryMusic       Category = "music"
	CategoryTraditions  Category = "traditions"
	CategoryFamily      Category = "family"
	CategoryLanguage    Category = "language"
	CategoryIntegration Category = "integration"
	CategoryCommunity   Category = "community"
	CategoryValues      Category = "values"
	CategoryHolidays    Category = "holidays"
	CategoryRegional    Category = "regional"
)

var allCategories = []Category{
	CategoryFood,
	CategoryMusic,
	CategoryTraditions,
	CategoryFamily,
	CategoryLanguage,
	CategoryIntegration,
	CategoryCommunity,
	CategoryValues,
	CategoryHolidays,
	CategoryRegional,
}

// AllCategories returns every category in canonical order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// ParseCategory converts a raw identifier (case-insensitive) into a Category.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q", raw)
	}
	return c, nil
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryMusic, CategoryTraditions, CategoryFamily, CategoryLanguage,
		CategoryIntegration, CategoryCommunity, CategoryValues, CategoryHolidays, CategoryRegional:
		return true
	default:
		return false
	}
}

// CompatibilityWeight is the relative importance of a category when two profiles are compared.
// Categories that return false do not take part in comparisons.
func (c Category) CompatibilityWeight() (float64, bool) {
	switch c {
	case CategoryFood, CategoryMusic:
		return 1.5, true
	case CategoryTraditions, CategoryFamily:
		return 2.0, true
	case CategoryLanguage:
		return 1.8, true
	case CategoryIntegration:
		return 1.2, true
	case CategoryCommunity:
		return 1.3, true
	case CategoryValues:
		return 1.7, true
	default:
		return 0, false
	}
}

// Label is the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryFood:
		return "Food & Cuisine"
	case CategoryMusic:
		return "Music & Fado"
	case CategoryTraditions:
		return "Traditions"
	case CategoryFamily:
		return "Family"
	case CategoryLanguage:
		return "Language"
	case CategoryIntegration:
		return "Integration"
	case CategoryCommunity:
		return "Community"
	case CategoryValues:
		return "Values"
	case CategoryHolidays:
		return "Holidays & Festivals"
	case CategoryRegional:
		return "Regional Identity"
	default:
		return string(c)
	}
}
