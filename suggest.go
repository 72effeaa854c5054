package isoglot

import (
	"context"
	"errors"
	"strings"
)

// Oracle proposes glossary translations for unresolved token keys. A
// missing key in the returned map means "not resolved" and is not an
// error; implementations report transport and payload failures as
// *OracleError.
type Oracle interface {
	Suggest(ctx context.Context, req SuggestRequest) (map[string]string, error)
}

// SuggestRequest carries the keys to resolve plus the session parameters
// an oracle needs to propose isomorphic translations.
type SuggestRequest struct {
	Keys       []string // Unresolved token keys, sorted
	SourceLang string   // Source language code (e.g. "ar_SA")
	TargetLang string   // Target language code (e.g. "es_ES")
	Context    string   // Global context hint
	Rules      []string // Free-form user directives
}

// SuggestResult summarizes one suggestion round.
type SuggestResult struct {
	Requested int // Keys sent to the oracle
	Resolved  int // Proposals accepted into the glossary
	Ignored   int // Extraneous or empty proposals discarded
}

// Suggest collects the currently unresolved CORE keys, asks the oracle for
// proposals, and resolves every validated pair. Keys the oracle did not
// return stay unresolved; keys it returned but were never requested are
// ignored. On any oracle failure the glossary is left unchanged and the
// error is an *OracleError.
func (e *Engine) Suggest(ctx context.Context) (*SuggestResult, error) {
	if e.oracle == nil {
		return nil, &OracleError{Message: "no oracle configured"}
	}

	keys := e.glossary.UnresolvedKeys(CategoryCore)
	if len(keys) == 0 {
		return &SuggestResult{}, nil
	}

	proposals, err := e.oracle.Suggest(ctx, SuggestRequest{
		Keys:       keys,
		SourceLang: e.sourceLang,
		TargetLang: e.targetLang,
		Context:    e.context,
		Rules:      e.rules,
	})
	if err != nil {
		var oerr *OracleError
		if errors.As(err, &oerr) {
			return nil, err
		}
		return nil, &OracleError{Message: "suggestion call failed", Cause: err}
	}
	if len(proposals) == 0 {
		return nil, &OracleError{Message: "oracle returned no suggestions", Retryable: true}
	}

	requested := make(map[string]bool, len(keys))
	for _, k := range keys {
		requested[k] = true
	}

	result := &SuggestResult{Requested: len(keys)}
	for key, translation := range proposals {
		if !requested[key] || strings.TrimSpace(translation) == "" {
			result.Ignored++
			continue
		}
		if err := e.glossary.Resolve(key, translation); err != nil {
			result.Ignored++
			continue
		}
		result.Resolved++
	}
	return result, nil
}
