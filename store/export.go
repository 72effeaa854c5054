package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ZaguanLabs/isoglot"
)

// ExportFormat represents the JSON structure for glossary export/import.
type ExportFormat struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Rows       []Row             `json:"rows"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// csvHeader is the fixed column order for CSV export/import.
var csvHeader = []string{"key", "translation", "category", "status"}

// ExportJSON writes the glossary to a writer in JSON format.
func ExportJSON(w io.Writer, g *isoglot.Glossary, metadata map[string]string) error {
	export := ExportFormat{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:       Snapshot(g),
		Metadata:   metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ExportCSV writes the glossary to a writer as CSV with a fixed header
// row: key, translation, category, status.
func ExportCSV(w io.Writer, g *isoglot.Glossary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range Snapshot(g) {
		record := []string{row.Key, row.Translation, string(row.Category), string(row.Status)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportJSON reads a JSON export and applies its rows to the glossary.
func ImportJSON(r io.Reader, g *isoglot.Glossary) (*ApplyResult, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	return Apply(g, export.Rows), nil
}

// ImportCSV reads CSV rows and applies them to the glossary. The first
// record is treated as a header when it matches the export header.
func ImportCSV(r io.Reader, g *isoglot.Glossary) (*ApplyResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	rows := make([]Row, 0, len(records))
	for i, record := range records {
		if i == 0 && isHeader(record) {
			continue
		}
		row := Row{}
		if len(record) > 0 {
			row.Key = record[0]
		}
		if len(record) > 1 {
			row.Translation = record[1]
		}
		if len(record) > 2 {
			row.Category = isoglot.Category(record[2])
		}
		if len(record) > 3 {
			row.Status = isoglot.Status(record[3])
		}
		rows = append(rows, row)
	}
	return Apply(g, rows), nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && record[0] == csvHeader[0]
}

// ExportToFile exports the glossary to a file, choosing the format by the
// format argument ("json" or "csv").
// The path is provided by the caller and is intentionally user-controlled.
func ExportToFile(path, format string, g *isoglot.Glossary, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	switch format {
	case "csv":
		return ExportCSV(f, g)
	default:
		return ExportJSON(f, g, metadata)
	}
}

// ImportFromFile imports glossary rows from a file, choosing the format by
// the format argument ("json" or "csv").
// The path is provided by the caller and is intentionally user-controlled.
func ImportFromFile(path, format string, g *isoglot.Glossary) (*ApplyResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	switch format {
	case "csv":
		return ImportCSV(f, g)
	default:
		return ImportJSON(f, g)
	}
}
