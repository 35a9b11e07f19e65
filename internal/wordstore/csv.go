package wordstore

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"vocabtracker/internal/domain"
)

// CSVHeader is the first row of every export
var CSVHeader = []string{"Foreign", "English", "Pronunciation"}

// ExportCSV serializes entries as UTF-8 CSV, one row per entry after the header.
// Fields containing commas, quotes or line breaks are quoted.
func ExportCSV(entries []domain.WordEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Foreign, e.English, e.Pronunciation}); err != nil {
			return nil, fmt.Errorf("failed to write csv row for word %d: %w", e.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
