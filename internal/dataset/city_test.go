package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCities(t *testing.T) {
	t.Parallel()

	cities, err := ParseCities(readTable(t, cityCSV), 0)
	require.NoError(t, err)
	require.Len(t, cities, 3)

	assert.Equal(t, 0, cities[0].Index)
	assert.Equal(t, "Tokyo", cities[0].Name)
	assert.Equal(t, "Japan", cities[0].Country)
	assert.InDelta(t, 139.6922, cities[0].Longitude, 1e-9)
	assert.Equal(t, int64(37732000), cities[0].Population)
	assert.Zero(t, cities[2].Population)
}

func TestParseCities_MinPopulation(t *testing.T) {
	t.Parallel()

	cities, err := ParseCities(readTable(t, cityCSV), 1_000_000)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Tokyo", cities[0].Name)
	assert.Equal(t, 0, cities[0].Index, "indices are positions after filtering")
}

func TestParseCities_LonHeaderAndDecimalPopulation(t *testing.T) {
	t.Parallel()

	csv := "city_ascii,lat,lon,country,population\nQuito,-0.22,-78.5125,Ecuador,2011388.0\nReykjavik,64.1475,-21.935,Iceland,1.3e5\n"
	cities, err := ParseCities(readTable(t, csv), 200_000)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Quito", cities[0].Name)
	assert.Equal(t, int64(2011388), cities[0].Population)
	assert.InDelta(t, -78.5125, cities[0].Longitude, 1e-9)
}

func TestParseCities_FallsBackToCityColumn(t *testing.T) {
	t.Parallel()

	cities, err := ParseCities(readTable(t, "city,lat,lng,country\nManila,14.5958,120.9772,Philippines\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "Manila", cities[0].Name)
}

func TestParseCities_MissingColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		csv  string
		want string
	}{
		{"name,lat,lng,country\nx,0,0,X\n", "city_ascii"},
		{"city_ascii,lat,country\nx,0,X\n", `"lon"`},
		{"city_ascii,lng,country\nx,0,X\n", `"lat"`},
		{"city_ascii,lat,lng\nx,0,0\n", `"country"`},
	}
	for _, tt := range tests {
		_, err := ParseCities(readTable(t, tt.csv), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), tt.want)
	}
}

func TestParseCities_BadCoordinates(t *testing.T) {
	t.Parallel()

	_, err := ParseCities(readTable(t, "city_ascii,lat,lng,country\nX,north,0,X\n"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2: latitude")
}
