package isoglot

// CoverageReport classifies a token sequence against the glossary. It is
// the "what still needs work" view a caller derives before asking the
// oracle for suggestions or prompting a user for decisions.
type CoverageReport struct {
	// Resolved contains keys with an accepted translation.
	Resolved []string

	// Unresolved contains registered keys still waiting for a translation.
	Unresolved []string

	// Unregistered contains keys with no glossary entry at all. After a
	// pass through Engine.Tokenize this is empty, since tokenization
	// registers every key it sees.
	Unregistered []string
}

// CoverageStats contains summary counts for a coverage report.
type CoverageStats struct {
	Resolved     int
	Unresolved   int
	Unregistered int
}

// Stats returns summary counts for the report.
func (r *CoverageReport) Stats() CoverageStats {
	return CoverageStats{
		Resolved:     len(r.Resolved),
		Unresolved:   len(r.Unresolved),
		Unregistered: len(r.Unregistered),
	}
}

// Complete returns true if every key has an accepted translation.
func (r *CoverageReport) Complete() bool {
	return len(r.Unresolved) == 0 && len(r.Unregistered) == 0
}

// NeedsResolution returns the keys that still require a translation, in
// first-occurrence order.
func (r *CoverageReport) NeedsResolution() []string {
	out := make([]string, 0, len(r.Unresolved)+len(r.Unregistered))
	out = append(out, r.Unresolved...)
	out = append(out, r.Unregistered...)
	return out
}

// Coverage compares a token sequence with the glossary and reports which
// keys are resolved, registered but unresolved, and unknown. Keys are
// deduplicated, preserving first-occurrence order; punctuation is skipped
// since it carries itself.
func Coverage(tokens []Token, glossary *Glossary) *CoverageReport {
	report := &CoverageReport{}
	seen := make(map[string]bool)

	for _, tok := range tokens {
		if tok.Category == CategoryPunctuation {
			continue
		}
		key := TokenKey(tok.Text, tok.Category)
		if seen[key] {
			continue
		}
		seen[key] = true

		entry, ok := glossary.Lookup(key)
		switch {
		case !ok:
			report.Unregistered = append(report.Unregistered, key)
		case entry.Translation != "":
			report.Resolved = append(report.Resolved, key)
		default:
			report.Unresolved = append(report.Unresolved, key)
		}
	}

	return report
}
