package fetcher

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectRows(t *testing.T, rowCh <-chan []string, errCh <-chan error) ([][]string, error) {
	t.Helper()
	var rows [][]string
	for row := range rowCh {
		rows = append(rows, row)
	}
	for err := range errCh {
		if err != nil {
			return rows, err
		}
	}
	return rows, nil
}

func TestStreamCSV_Basic(t *testing.T) {
	input := "a,b,c\n1,2,3\n4,5,6\n"
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
	assert.Equal(t, []string{"4", "5", "6"}, rows[2])
}

func TestStreamCSV_WithHeader(t *testing.T) {
	input := "name,country\nEtna,Italy\nHekla,Iceland\n"
	headerCh := make(chan []string, 1)

	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
	})

	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Etna", "Italy"}, rows[0])
	assert.Equal(t, []string{"name", "country"}, <-headerCh)
}

func TestStreamCSV_StripsBOM(t *testing.T) {
	input := "\ufeffcity,lat\nLima,-12.06\n"
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	assert.Equal(t, "city", rows[0][0])
}

func TestStreamCSV_Latin1(t *testing.T) {
	// "Cerro Azul (Galápagos)" encoded as ISO-8859-1.
	var buf bytes.Buffer
	buf.WriteString("Volcano Name\nCerro Azul (Gal")
	buf.WriteByte(0xE1)
	buf.WriteString("pagos)\n")

	rowCh, errCh := StreamCSV(context.Background(), &buf, CSVOptions{Charset: "iso-8859-1", HasHeader: true})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cerro Azul (Galápagos)", rows[0][0])
}

func TestStreamCSV_UnknownCharset(t *testing.T) {
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader("a\n"), CSVOptions{Charset: "klingon"})
	_, err := collectRows(t, rowCh, errCh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported charset")
}

func TestStreamCSV_TrimSpace(t *testing.T) {
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(" a , b \n"), CSVOptions{TrimSpace: true})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rows[0])
}

func TestStreamCSV_ContextCancellation(t *testing.T) {
	var sb strings.Builder
	for range 10000 {
		sb.WriteString("a,b,c\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rowCh, errCh := StreamCSV(ctx, strings.NewReader(sb.String()), CSVOptions{})
	_, err := collectRows(t, rowCh, errCh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context cancelled")
}

func TestStreamCSV_MalformedQuote(t *testing.T) {
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader("a,\"b\nc"), CSVOptions{})
	_, err := collectRows(t, rowCh, errCh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv: read row")
}

func TestReadCSV(t *testing.T) {
	input := "\"city_ascii\",\"lat\",\"lng\",\"country\"\n\"Tokyo\",\"35.6897\",\"139.6922\",\"Japan\"\n\"Short\"\n"
	table, err := ReadCSV(context.Background(), strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.True(t, table.Has("lng"))
	assert.False(t, table.Has("lon"))

	col, ok := table.Lookup("lon", "lng")
	require.True(t, ok)
	assert.Equal(t, "lng", col)

	assert.Equal(t, "Tokyo", table.Value(table.Rows[0], "city_ascii"))
	assert.Equal(t, "139.6922", table.Value(table.Rows[0], "lng"))
	assert.Empty(t, table.Value(table.Rows[1], "country"), "short rows read as empty")
	assert.Empty(t, table.Value(table.Rows[0], "population"), "missing columns read as empty")
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(context.Background(), strings.NewReader(""), CSVOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}
