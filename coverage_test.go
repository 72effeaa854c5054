package isoglot

import (
	"reflect"
	"testing"
)

func TestCoverage_Classification(t *testing.T) {
	g := NewGlossary()
	g.Register("kitab", CategoryCore)
	g.Register("ilm", CategoryCore)
	mustResolve(t, g, "kitab", "libro")

	tk := NewTokenizer()
	tokens := tk.Tokenize("Kitab al-ilm.")

	report := Coverage(tokens, g)

	if !reflect.DeepEqual(report.Resolved, []string{"kitab"}) {
		t.Errorf("Unexpected resolved keys: %v", report.Resolved)
	}
	if !reflect.DeepEqual(report.Unresolved, []string{"ilm"}) {
		t.Errorf("Unexpected unresolved keys: %v", report.Unresolved)
	}
	// "al" never registered; "." skipped as punctuation.
	if !reflect.DeepEqual(report.Unregistered, []string{"al"}) {
		t.Errorf("Unexpected unregistered keys: %v", report.Unregistered)
	}

	stats := report.Stats()
	if stats.Resolved != 1 || stats.Unresolved != 1 || stats.Unregistered != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if report.Complete() {
		t.Error("Report with open keys must not be complete")
	}
	if got := report.NeedsResolution(); !reflect.DeepEqual(got, []string{"ilm", "al"}) {
		t.Errorf("Unexpected NeedsResolution: %v", got)
	}
}

func TestCoverage_DeduplicatesKeys(t *testing.T) {
	g := NewGlossary()
	tk := NewTokenizer()

	report := Coverage(tk.Tokenize("nur nur Nur"), g)
	if len(report.Unregistered) != 1 {
		t.Errorf("Repeated tokens should count once, got %v", report.Unregistered)
	}
}

func TestCoverage_CompleteAfterEngineFlow(t *testing.T) {
	g := NewGlossary()
	e := NewEngine(g)
	tokens := e.Tokenize("Kitab al-ilm.")
	mustResolve(t, g, "kitab", "libro")
	mustResolve(t, g, "al", "el")
	mustResolve(t, g, "ilm", "conocimiento")

	report := Coverage(tokens, g)
	if !report.Complete() {
		t.Errorf("Fully resolved text should report complete: %+v", report)
	}
	if len(report.Unregistered) != 0 {
		t.Errorf("Tokenize registers everything, got unregistered %v", report.Unregistered)
	}
}
