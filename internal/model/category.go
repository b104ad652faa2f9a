package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Category names a categorical volcano column that can be filtered or counted.
type Category string

const (
	CategoryCountry          Category = "country"
	CategoryPrimaryType      Category = "primary-type"
	CategoryRockType         Category = "rock-type"
	CategoryTectonicSetting  Category = "tectonic-setting"
	CategoryActivityEvidence Category = "activity-evidence"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryCountry,
	CategoryPrimaryType,
	CategoryRockType,
	CategoryTectonicSetting,
	CategoryActivityEvidence,
}

var categoryLabels = map[Category]string{
	CategoryCountry:          "Country",
	CategoryPrimaryType:      "Primary Volcano Type",
	CategoryRockType:         "Dominant Rock Type",
	CategoryTectonicSetting:  "Tectonic Setting",
	CategoryActivityEvidence: "Activity Evidence",
}

// Label returns the source column header for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// ParseCategory accepts either the category key ("rock-type") or its column
// header ("Dominant Rock Type"), case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return "", eris.Errorf("model: unknown category %q", s)
}

// Value returns the volcano's value for the category.
func (v Volcano) Value(c Category) string {
	switch c {
	case CategoryCountry:
		return v.Country
	case CategoryPrimaryType:
		return v.PrimaryType
	case CategoryRockType:
		return v.RockType
	case CategoryTectonicSetting:
		return v.TectonicSetting
	case CategoryActivityEvidence:
		return v.ActivityEvidence
	default:
		return ""
	}
}
