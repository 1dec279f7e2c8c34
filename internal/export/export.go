package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/schedule"
)

// Row is one itinerary entry flattened for the exported document. Rows keep
// the itinerary sequence order.
type Row struct {
	ID           string  `json:"id"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Duration     string  `json:"duration"`
	Title        string  `json:"title"`
	Location     string  `json:"location"`
	EndLocation  string  `json:"endLocation,omitempty"`
	Description  string  `json:"description"`
	Tips         string  `json:"tips"`
	KeyDetails   string  `json:"keyDetails"`
	Type         string  `json:"type"`
	PriceNOK     float64 `json:"priceNOK"`
	PriceEUR     float64 `json:"priceEUR"`
	Completed    bool    `json:"completed"`
}

// Document is the exported itinerary plus its budget summary
type Document struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generatedAt"`
	Rows        []Row     `json:"rows"`
	TotalNOK    float64   `json:"totalNOK"`
	TotalEUR    float64   `json:"totalEUR"`
}

// Build flattens the activity list into a document. Export is pure output; it
// never feeds back into live state.
func Build(title string, activities []domain.Activity, now time.Time) Document {
	doc := Document{
		Title:       title,
		GeneratedAt: now,
		Rows:        make([]Row, 0, len(activities)),
	}

	for _, a := range activities {
		doc.Rows = append(doc.Rows, Row{
			ID:          a.ID,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			Duration:    schedule.FormatDuration(a.StartTime, a.EndTime),
			Title:       a.Title,
			Location:    a.LocationName,
			EndLocation: a.EndLocationName,
			Description: a.Description,
			Tips:        a.Tips,
			KeyDetails:  a.KeyDetails,
			Type:        string(a.Type),
			PriceNOK:    a.PriceNOK,
			PriceEUR:    a.PriceEUR,
			Completed:   a.Completed,
		})
		doc.TotalNOK += a.PriceNOK
		doc.TotalEUR += a.PriceEUR
	}

	return doc
}

// WriteCSV renders the document as CSV with a header row
func WriteCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "start", "end", "duration", "title", "location", "end_location", "type", "description", "tips", "key_details", "price_nok", "price_eur", "completed"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range doc.Rows {
		record := []string{
			r.ID, r.StartTime, r.EndTime, r.Duration, r.Title, r.Location, r.EndLocation,
			r.Type, r.Description, r.Tips, r.KeyDetails,
			formatPrice(r.PriceNOK), formatPrice(r.PriceEUR),
			strconv.FormatBool(r.Completed),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON renders the document as indented JSON
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
