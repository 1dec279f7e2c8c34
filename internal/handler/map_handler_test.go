package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/itinerary"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/pkg/gpx"
)

func TestGetTrackGeoJSON(t *testing.T) {
	track := &gpx.Track{
		Name: "Flåmsbana",
		Points: []gpx.Point{
			{Lat: 60.8630, Lon: 7.1128, Ele: 2},
			{Lat: 60.7333, Lon: 7.1167, Ele: 866},
		},
	}
	h := NewMapHandler(store.NewLive(itinerary.Default()), track, slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	h.GetTrack(rec, httptest.NewRequest(http.MethodGet, "/v1/map/track", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "LineString", fc.Features[0].Geometry.GeoJSONType())
	assert.Equal(t, "Flåmsbana", fc.Features[0].Properties["name"])
}

func TestGetTrackWithoutGPX(t *testing.T) {
	h := NewMapHandler(store.NewLive(itinerary.Default()), nil, slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	h.GetTrack(rec, httptest.NewRequest(http.MethodGet, "/v1/map/track", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetLayers(t *testing.T) {
	h := NewMapHandler(store.NewLive(itinerary.Default()), nil, slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	h.GetLayers(rec, httptest.NewRequest(http.MethodGet, "/v1/map/layers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LayersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Layers, 2)
	assert.Equal(t, "standard", resp.Default)
	assert.Equal(t, "satellite", resp.Layers[1].ID)
	assert.Contains(t, resp.Layers[0].URL, "openstreetmap.org")
}

func TestGetMarkersIncludesEndLocations(t *testing.T) {
	h := NewMapHandler(store.NewLive(itinerary.Default()), nil, slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	h.GetMarkers(rec, httptest.NewRequest(http.MethodGet, "/v1/map/markers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fc struct {
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))

	// 11 activities plus the end points of the point-to-point legs
	assert.Greater(t, len(fc.Features), 11)

	byID := make(map[string]map[string]any)
	for _, f := range fc.Features {
		byID[f.Properties["id"].(string)] = f.Properties
	}
	require.Contains(t, byID, "4")
	assert.Equal(t, "The Flåm Railway", byID["4"]["title"])
	require.Contains(t, byID, "4:end")
	assert.Equal(t, "end", byID["4:end"]["leg"])
}
