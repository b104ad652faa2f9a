package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Category
	}{
		{"country", CategoryCountry},
		{"Country", CategoryCountry},
		{"primary-type", CategoryPrimaryType},
		{"Primary Volcano Type", CategoryPrimaryType},
		{"  rock-type ", CategoryRockType},
		{"dominant rock type", CategoryRockType},
		{"Tectonic Setting", CategoryTectonicSetting},
		{"activity-evidence", CategoryActivityEvidence},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ParseCategory("elevation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elevation")
}

func TestVolcanoValue(t *testing.T) {
	t.Parallel()

	v := Volcano{
		Country:          "Japan",
		PrimaryType:      "Stratovolcano",
		RockType:         "Andesite / Basaltic Andesite",
		TectonicSetting:  "Subduction zone / Continental crust (>25 km)",
		ActivityEvidence: "Eruption Observed",
	}

	assert.Equal(t, "Japan", v.Value(CategoryCountry))
	assert.Equal(t, "Stratovolcano", v.Value(CategoryPrimaryType))
	assert.Equal(t, "Andesite / Basaltic Andesite", v.Value(CategoryRockType))
	assert.Equal(t, "Subduction zone / Continental crust (>25 km)", v.Value(CategoryTectonicSetting))
	assert.Equal(t, "Eruption Observed", v.Value(CategoryActivityEvidence))
	assert.Empty(t, v.Value(Category("elevation")))
}

func TestCategoryLabels(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		assert.NotEmpty(t, c.Label(), "category %q has no label", c)
	}
}

func TestPoints(t *testing.T) {
	t.Parallel()

	v := Volcano{Latitude: 19.421, Longitude: -155.287}
	assert.InDelta(t, 19.421, v.Point().Lat, 1e-9)
	assert.InDelta(t, -155.287, v.Point().Lon, 1e-9)

	c := City{Latitude: 35.6897, Longitude: 139.6922}
	assert.InDelta(t, 35.6897, c.Point().Lat, 1e-9)
	assert.InDelta(t, 139.6922, c.Point().Lon, 1e-9)
}
