// Package api serves a proximity snapshot over HTTP as JSON and GeoJSON.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/volcano-cli/internal/explore"
	"github.com/sells-group/volcano-cli/internal/geospatial"
	"github.com/sells-group/volcano-cli/internal/model"
	"github.com/sells-group/volcano-cli/internal/proximity"
)

// Handler answers read-only queries against one immutable snapshot.
type Handler struct {
	snap *explore.Snapshot
}

// NewHandler creates a Handler over snap.
func NewHandler(snap *explore.Snapshot) *Handler {
	return &Handler{snap: snap}
}

// RegisterRoutes mounts the API endpoints on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/snapshot", h.snapshot)
		r.Get("/categories", h.categories)
		r.Get("/categories/{category}/options", h.options)
		r.Get("/volcanoes", h.volcanoes)
		r.Get("/volcanoes/counts", h.volcanoCounts)
		r.Get("/map", h.volcanoMap)
		r.Get("/proximity", h.proximity)
		r.Get("/proximity/evidence", h.nearbyEvidence)
		r.Get("/proximity/map", h.cityMap)
	})
}

type categoryInfo struct {
	Key   model.Category `json:"key"`
	Label string         `json:"label"`
}

type optionsResponse struct {
	Category model.Category `json:"category"`
	Options  []string       `json:"options"`
}

type volcanoesResponse struct {
	Category model.Category  `json:"category"`
	Values   []string        `json:"values"`
	Count    int             `json:"count"`
	Rows     []model.Volcano `json:"volcanoes"`
}

type countsResponse struct {
	By     model.Category       `json:"by"`
	Total  int                  `json:"total"`
	Counts []explore.ValueCount `json:"counts"`
}

type proximityResponse struct {
	ThresholdMiles float64         `json:"threshold_miles"`
	Total          int             `json:"total"`
	Rows           proximity.Table `json:"rows"`
	Bars           explore.Series  `json:"bars"`
}

func (h *Handler) snapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.snap.Summary())
}

func (h *Handler) categories(w http.ResponseWriter, _ *http.Request) {
	out := make([]categoryInfo, len(model.Categories))
	for i, c := range model.Categories {
		out[i] = categoryInfo{Key: c, Label: c.Label()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) options(w http.ResponseWriter, r *http.Request) {
	c, err := model.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, optionsResponse{Category: c, Options: explore.Options(h.snap.Volcanoes, c)})
}

// selection parses ?category=&value=... into the filtered volcano rows.
func (h *Handler) selection(r *http.Request) (model.Category, []string, []model.Volcano, error) {
	q := r.URL.Query()
	c := model.CategoryCountry
	if raw := q.Get("category"); raw != "" {
		parsed, err := model.ParseCategory(raw)
		if err != nil {
			return "", nil, nil, err
		}
		c = parsed
	}
	values := q["value"]
	return c, values, explore.Select(h.snap.Volcanoes, c, values), nil
}

func (h *Handler) volcanoes(w http.ResponseWriter, r *http.Request) {
	c, values, rows, err := h.selection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if values == nil {
		values = []string{}
	}
	if rows == nil {
		rows = []model.Volcano{}
	}
	writeJSON(w, http.StatusOK, volcanoesResponse{Category: c, Values: values, Count: len(rows), Rows: rows})
}

func parseBy(r *http.Request) (model.Category, error) {
	raw := r.URL.Query().Get("by")
	if raw == "" {
		return model.CategoryActivityEvidence, nil
	}
	return model.ParseCategory(raw)
}

func (h *Handler) volcanoCounts(w http.ResponseWriter, r *http.Request) {
	_, _, rows, err := h.selection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	by, err := parseBy(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, countsResponse{By: by, Total: len(rows), Counts: explore.ValueCounts(rows, by)})
}

func (h *Handler) nearbyEvidence(w http.ResponseWriter, r *http.Request) {
	by, err := parseBy(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, countsResponse{By: by, Total: len(h.snap.Matched), Counts: h.snap.NearbyCounts(by)})
}

func (h *Handler) proximity(w http.ResponseWriter, _ *http.Request) {
	rows := h.snap.Table
	if rows == nil {
		rows = proximity.Table{}
	}
	writeJSON(w, http.StatusOK, proximityResponse{
		ThresholdMiles: h.snap.Threshold,
		Total:          rows.Total(),
		Rows:           rows,
		Bars:           h.snap.Bars(),
	})
}

func (h *Handler) volcanoMap(w http.ResponseWriter, r *http.Request) {
	_, _, rows, err := h.selection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeGeoJSON(w, geospatial.VolcanoLayer(rows))
}

func (h *Handler) cityMap(w http.ResponseWriter, _ *http.Request) {
	layer, err := geospatial.CityLayer(h.snap.Table, h.snap.Cities)
	if err != nil {
		zap.L().Error("api: build city layer", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to build city layer")
		return
	}
	writeGeoJSON(w, layer)
}
