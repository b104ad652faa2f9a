package geospatial

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/volcano-cli/internal/model"
)

const attrWidth = 254

// volcanoFields are the DBF columns of a volcano shapefile. DBF names are capped at
// 10 characters.
var volcanoFields = []shp.Field{
	shp.StringField("VOLC_NUM", 16),
	shp.StringField("NAME", 80),
	shp.StringField("COUNTRY", 80),
	shp.StringField("PRIM_TYPE", 80),
	shp.StringField("EVIDENCE", 80),
	shp.StringField("LAST_ERUPT", 40),
	shp.StringField("REGION", 120),
	shp.StringField("ROCK_TYPE", 120),
	shp.StringField("TECTONIC", 120),
	shp.StringField("ELEV_M", 16),
}

// WriteShapefile writes volcanoes as a point shapefile at path (the .shp file;
// the .shx and .dbf siblings are created beside it).
func WriteShapefile(path string, volcanoes []model.Volcano) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrap(err, "geospatial: create output dir")
	}

	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return eris.Wrapf(err, "geospatial: create shapefile %s", path)
	}
	err = writeVolcanoRecords(w, volcanoes)
	w.Close()
	if err != nil {
		return err
	}
	if err := fixDBFName(path); err != nil {
		return err
	}

	zap.L().Info("geospatial: wrote shapefile",
		zap.String("path", path),
		zap.Int("records", len(volcanoes)),
	)
	return nil
}

func writeVolcanoRecords(w *shp.Writer, volcanoes []model.Volcano) error {
	if err := w.SetFields(volcanoFields); err != nil {
		return eris.Wrap(err, "geospatial: set fields")
	}

	for _, v := range volcanoes {
		n := int(w.Write(&shp.Point{X: v.Longitude, Y: v.Latitude}))
		attrs := []string{
			v.Number, v.Name, v.Country, v.PrimaryType, v.ActivityEvidence,
			v.LastKnownEruption, v.Region, v.RockType, v.TectonicSetting, v.Elevation,
		}
		for i, a := range attrs {
			size := int(volcanoFields[i].Size)
			if err := w.WriteAttribute(n, i, truncate(a, size)); err != nil {
				return eris.Wrapf(err, "geospatial: write attribute %d of record %d", i, n)
			}
		}
	}
	return nil
}

// fixDBFName moves the attribute table to its conventional name. go-shp v0.1.1
// names it "<base>dbf" without the dot when the path ends in ".shp".
func fixDBFName(path string) error {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	misnamed := base + "dbf"
	if _, err := os.Stat(misnamed); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return eris.Wrap(err, "geospatial: stat dbf")
	}
	if err := os.Rename(misnamed, base+".dbf"); err != nil {
		return eris.Wrap(err, "geospatial: rename dbf")
	}
	return nil
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if n > attrWidth {
		n = attrWidth
	}
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
