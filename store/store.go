// Package store provides flat tabular views of the glossary for
// round-trip export, import, and persistence.
//
// Every import path applies rows through Register-then-Resolve on the
// glossary, never bypassing it.
package store

import "github.com/ZaguanLabs/isoglot"

// Row is the flat tabular view of one glossary entry.
type Row struct {
	Key         string           `json:"key"`
	Translation string           `json:"translation"`
	Category    isoglot.Category `json:"category"`
	Status      isoglot.Status   `json:"status"`
}

// Snapshot extracts all glossary entries as rows, sorted by key.
func Snapshot(g *isoglot.Glossary) []Row {
	entries := g.Entries()
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Key:         e.Key,
			Translation: e.Translation,
			Category:    e.Category,
			Status:      e.Status,
		})
	}
	return rows
}

// ApplyResult contains statistics about an import operation.
type ApplyResult struct {
	Registered int // Rows registered (with or without a translation)
	Resolved   int // Rows whose translation was applied
	Failed     int // Rows that could not be applied
}

// Apply loads rows into the glossary by registering each key and then
// resolving it when a translation is present. Rows with an empty key are
// counted as failures; the import continues past them.
func Apply(g *isoglot.Glossary, rows []Row) *ApplyResult {
	result := &ApplyResult{}
	for _, row := range rows {
		if row.Key == "" {
			result.Failed++
			continue
		}
		category := row.Category
		if category == "" {
			category = isoglot.CategoryCore
		}
		g.Register(row.Key, category)
		result.Registered++

		if row.Translation == "" {
			continue
		}
		if err := g.Resolve(row.Key, row.Translation); err != nil {
			result.Failed++
			continue
		}
		result.Resolved++
	}
	return result
}
