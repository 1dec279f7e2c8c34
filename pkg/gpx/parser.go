package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Point is one track point. Elevation is zero when absent from the source.
type Point struct {
	Lat float64
	Lon float64
	Ele float64
}

// Track is a flattened GPX track: all segments of all tracks in document
// order.
type Track struct {
	Name   string
	Points []Point
}

type gpxDoc struct {
	Tracks []struct {
		Name     string `xml:"name"`
		Segments []struct {
			Points []gpxPoint `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
}

type gpxPoint struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
	Ele float64 `xml:"ele"`
}

type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	return &Parser{
		logger: logger.With("component", "gpx_parser"),
	}
}

func (p *Parser) ParseFile(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gpx: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads a GPX document and flattens it. Points with out-of-range
// coordinates are dropped, not fatal.
func (p *Parser) Parse(r io.Reader) (*Track, error) {
	start := time.Now()

	var doc gpxDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode gpx: %w", err)
	}

	if len(doc.Tracks) == 0 {
		return nil, fmt.Errorf("gpx contains no tracks")
	}

	track := &Track{Name: doc.Tracks[0].Name}
	skipped := 0
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, pt := range seg.Points {
				if pt.Lat < -90 || pt.Lat > 90 || pt.Lon < -180 || pt.Lon > 180 {
					skipped++
					continue
				}
				track.Points = append(track.Points, Point{Lat: pt.Lat, Lon: pt.Lon, Ele: pt.Ele})
			}
		}
	}

	if len(track.Points) == 0 {
		return nil, fmt.Errorf("gpx contains no valid track points")
	}

	p.logger.Info("parsed GPX track",
		"name", track.Name,
		"points", len(track.Points),
		"skipped", skipped,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return track, nil
}
