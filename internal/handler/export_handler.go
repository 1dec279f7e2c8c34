package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/export"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

type ExportHandler struct {
	store  *store.Live
	title  string
	logger *slog.Logger
}

func NewExportHandler(s *store.Live, title string, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{store: s, title: title, logger: logger}
}

// Export writes the itinerary as a downloadable CSV or JSON document.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	doc := export.Build(h.title, h.store.Activities(), time.Now())

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
		if err := export.WriteCSV(w, doc); err != nil {
			h.logger.Error("csv export failed", "error", err)
		}
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="itinerary.json"`)
		if err := export.WriteJSON(w, doc); err != nil {
			h.logger.Error("json export failed", "error", err)
		}
	default:
		respondError(w, http.StatusBadRequest, "unknown format: must be csv or json")
	}
}
