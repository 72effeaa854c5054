package isoglot

// Engine owns one aligned source/target matrix pair and projects glossary
// state onto it. The glossary is injected and outlives individual texts:
// re-tokenizing replaces both matrices wholesale while the glossary keeps
// accumulating. All operations run to completion before the next is
// accepted; an Engine is not safe for concurrent use.
type Engine struct {
	glossary   *Glossary
	tokenizer  *Tokenizer
	oracle     Oracle
	sourceLang string
	targetLang string
	context    string
	rules      []string

	source []Slot
	target []Slot
}

// EngineOption is a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithOracle sets the suggestion oracle used by Suggest.
func WithOracle(o Oracle) EngineOption {
	return func(e *Engine) {
		e.oracle = o
	}
}

// WithParticles sets the closed set of function words the tokenizer
// classifies as PARTICLE.
func WithParticles(particles ...string) EngineOption {
	return func(e *Engine) {
		e.tokenizer = NewTokenizer(particles...)
	}
}

// WithSourceLang sets the source language code (e.g. "ar_SA").
func WithSourceLang(lang string) EngineOption {
	return func(e *Engine) {
		e.sourceLang = lang
	}
}

// WithTargetLang sets the target language code (e.g. "es_ES").
func WithTargetLang(lang string) EngineOption {
	return func(e *Engine) {
		e.targetLang = lang
	}
}

// WithContext sets a global context hint passed to the oracle.
func WithContext(ctx string) EngineOption {
	return func(e *Engine) {
		e.context = ctx
	}
}

// WithRules sets free-form user directives passed to the oracle.
func WithRules(rules ...string) EngineOption {
	return func(e *Engine) {
		e.rules = rules
	}
}

// NewEngine creates an Engine bound to the given glossary. A nil glossary
// gets a fresh one.
func NewEngine(glossary *Glossary, opts ...EngineOption) *Engine {
	if glossary == nil {
		glossary = NewGlossary()
	}
	e := &Engine{
		glossary:   glossary,
		tokenizer:  NewTokenizer(),
		sourceLang: "ar_SA",
		targetLang: "es_ES",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tokenize splits text, atomically replaces both matrices, and registers a
// PENDING glossary entry for every token key not already present. It
// returns the token sequence.
func (e *Engine) Tokenize(text string) []Token {
	tokens := e.tokenizer.Tokenize(text)
	e.source, e.target = newMatrices(tokens)
	for _, tok := range tokens {
		e.glossary.Register(TokenKey(tok.Text, tok.Category), tok.Category)
	}
	return tokens
}

// Fuse merges the contiguous index range [start, end] into a single
// locution. Atomically: the composite key (space-joined, lower-cased source
// texts) is force-written to the glossary as a resolved LOCUTION entry
// (last write wins), every covered target slot becomes BLOCKED, the head
// slot carries the translation, and interior slots are absorbed (empty
// text, rendered as nothing). Fusion has no inverse; treat it as committing.
func (e *Engine) Fuse(start, end int, translation string) error {
	if start < 0 || end >= len(e.target) || start > end {
		return &InvalidRangeError{Start: start, End: end, Len: len(e.target)}
	}

	texts := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		texts = append(texts, e.source[i].SourceText)
	}
	e.glossary.put(LocutionKey(texts), translation, CategoryLocution)

	for i := start; i <= end; i++ {
		slot := &e.target[i]
		slot.Status = StatusBlocked
		if i == start {
			slot.TargetText = translation
			slot.Category = CategoryLocution
		} else {
			slot.TargetText = ""
		}
	}
	return nil
}

// InjectPosition selects which side of a slot an injection attaches to.
type InjectPosition string

const (
	// InjectPre renders before the slot's core text.
	InjectPre InjectPosition = "PRE"
	// InjectPost renders after the slot's core text.
	InjectPost InjectPosition = "POST"
)

// Inject appends a literal support string to the slot's pre or post
// injection list. Injections are unbounded, repeatable, and render in
// insertion order.
func (e *Engine) Inject(index int, text string, position InjectPosition) error {
	if index < 0 || index >= len(e.target) {
		return &IndexError{Index: index, Len: len(e.target)}
	}
	slot := &e.target[index]
	if position == InjectPre {
		slot.PreInjections = append(slot.PreInjections, text)
	} else {
		slot.PostInjections = append(slot.PostInjections, text)
	}
	return nil
}

// ClearInjections empties both injection lists for the slot.
func (e *Engine) ClearInjections(index int) error {
	if index < 0 || index >= len(e.target) {
		return &IndexError{Index: index, Len: len(e.target)}
	}
	e.target[index].PreInjections = nil
	e.target[index].PostInjections = nil
	return nil
}

// ToggleNullified flips the slot's elision state. Turning elision off
// restores ASSIGNED if a translation is present, PENDING otherwise, so the
// slot re-enters normal synchronization on the next run.
func (e *Engine) ToggleNullified(index int) error {
	if index < 0 || index >= len(e.target) {
		return &IndexError{Index: index, Len: len(e.target)}
	}
	slot := &e.target[index]
	if slot.Status == StatusNullified {
		if slot.TargetText != "" {
			slot.Status = StatusAssigned
		} else {
			slot.Status = StatusPending
		}
	} else {
		slot.Status = StatusNullified
	}
	return nil
}

// Synchronize re-projects the glossary onto the target matrix: every slot
// that is not BLOCKED or NULLIFIED is re-derived from current glossary
// state. A glossary hit with a non-empty translation assigns it; a miss or
// cleared entry resets the slot to PENDING. The projection is full and
// idempotent: with no intervening glossary change, running it twice equals
// running it once. It never fails.
func (e *Engine) Synchronize() {
	for i := range e.target {
		slot := &e.target[i]
		switch slot.Status {
		case StatusBlocked, StatusNullified:
			continue
		case StatusPending, StatusAssigned:
			// Re-derive below.
		}

		key := TokenKey(e.source[i].SourceText, e.source[i].Category)
		entry, ok := e.glossary.Lookup(key)
		if !ok && e.source[i].Category == CategoryPunctuation {
			// Punctuation keys are literal, never lower-cased.
			entry, ok = e.glossary.Lookup(e.source[i].SourceText)
		}
		if ok && entry.Translation != "" {
			slot.Status = StatusAssigned
			slot.TargetText = entry.Translation
		} else {
			slot.Status = StatusPending
			slot.TargetText = ""
		}
	}
}

// Render serializes the target matrix to text in the given mode.
func (e *Engine) Render(mode RenderMode) string {
	return renderSlots(e.target, mode)
}

// Source returns the source matrix. The returned slice is a copy; slots
// are read-only by contract.
func (e *Engine) Source() []Slot {
	out := make([]Slot, len(e.source))
	copy(out, e.source)
	return out
}

// Target returns the target matrix. The returned slice is a copy; mutate
// through engine operations only.
func (e *Engine) Target() []Slot {
	out := make([]Slot, len(e.target))
	copy(out, e.target)
	return out
}

// Glossary returns the injected glossary.
func (e *Engine) Glossary() *Glossary {
	return e.glossary
}

// SourceLang returns the source language code.
func (e *Engine) SourceLang() string {
	return e.sourceLang
}

// TargetLang returns the target language code.
func (e *Engine) TargetLang() string {
	return e.targetLang
}
