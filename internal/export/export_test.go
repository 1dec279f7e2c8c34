package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/itinerary"
)

func TestBuildKeepsSequenceOrderAndTotals(t *testing.T) {
	acts := itinerary.Default()
	doc := Build("Day in Flåm", acts, time.Date(2026, time.May, 12, 6, 0, 0, 0, time.UTC))

	require.Len(t, doc.Rows, len(acts))
	for i, row := range doc.Rows {
		assert.Equal(t, acts[i].ID, row.ID)
	}

	// 810 + 80 + 835 + 440
	assert.InDelta(t, 2165, doc.TotalNOK, 0.001)
	assert.InDelta(t, 203.5, doc.TotalEUR, 0.001)
}

func TestWriteCSV(t *testing.T) {
	doc := Build("Day in Flåm", itinerary.Default(), time.Now())

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, doc))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(doc.Rows)+1)

	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "07:00", records[1][1])

	// The railway row carries its price and duration.
	rail := records[4]
	assert.Equal(t, "The Flåm Railway", rail[4])
	assert.Equal(t, "2h 8m", rail[3])
	assert.Equal(t, "810.00", rail[11])
}

func TestWriteJSON(t *testing.T) {
	doc := Build("Day in Flåm", itinerary.Default(), time.Now())

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc))

	var decoded Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, doc.Title, decoded.Title)
	assert.Len(t, decoded.Rows, len(doc.Rows))
}
