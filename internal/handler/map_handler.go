package handler

import (
	"log/slog"
	"net/http"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/pkg/gpx"
)

type MapHandler struct {
	store  *store.Live
	track  *gpx.Track
	logger *slog.Logger
}

// NewMapHandler serves the map overlays. track may be nil when no GPX file is
// configured; the track endpoint then returns 404.
func NewMapHandler(s *store.Live, track *gpx.Track, logger *slog.Logger) *MapHandler {
	return &MapHandler{store: s, track: track, logger: logger}
}

// GetTrack returns the railway track as a GeoJSON LineString feature.
func (h *MapHandler) GetTrack(w http.ResponseWriter, r *http.Request) {
	if h.track == nil {
		respondError(w, http.StatusNotFound, "no track configured")
		return
	}

	line := make(orb.LineString, 0, len(h.track.Points))
	for _, p := range h.track.Points {
		line = append(line, orb.Point{p.Lon, p.Lat})
	}

	feature := geojson.NewFeature(line)
	feature.Properties = geojson.Properties{
		"name":   h.track.Name,
		"points": len(h.track.Points),
	}

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	respondJSON(w, http.StatusOK, fc)
}

// TileLayer describes a raster tile source the frontend can render.
type TileLayer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"maxZoom"`
}

type LayersResponse struct {
	Layers  []TileLayer `json:"layers"`
	Default string      `json:"default"`
}

// GetLayers returns the available base map tile layers.
func (h *MapHandler) GetLayers(w http.ResponseWriter, r *http.Request) {
	resp := LayersResponse{
		Layers: []TileLayer{
			{
				ID:          "standard",
				Name:        "Standard",
				URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
				Attribution: "© OpenStreetMap contributors",
				MaxZoom:     19,
			},
			{
				ID:          "satellite",
				Name:        "Satellite",
				URL:         "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
				Attribution: "Esri, Maxar, Earthstar Geographics",
				MaxZoom:     18,
			},
		},
		Default: "standard",
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetMarkers returns every activity location as a GeoJSON point feature. End
// locations of point-to-point legs get their own feature.
func (h *MapHandler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	fc := geojson.NewFeatureCollection()

	for _, a := range h.store.Activities() {
		feature := geojson.NewFeature(orb.Point{a.Coords.Lon, a.Coords.Lat})
		feature.Properties = geojson.Properties{
			"id":        a.ID,
			"title":     a.Title,
			"location":  a.LocationName,
			"startTime": a.StartTime,
			"endTime":   a.EndTime,
			"type":      string(a.Type),
			"marker":    a.Marker.String(),
			"completed": a.Completed,
		}
		fc.Append(feature)

		if a.EndCoords != nil {
			end := geojson.NewFeature(orb.Point{a.EndCoords.Lon, a.EndCoords.Lat})
			end.Properties = geojson.Properties{
				"id":       a.ID + ":end",
				"title":    a.Title,
				"location": a.EndLocationName,
				"type":     string(a.Type),
				"leg":      "end",
			}
			fc.Append(end)
		}
	}

	respondJSON(w, http.StatusOK, fc)
}
