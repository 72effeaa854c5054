package isoglot

// Status is the lifecycle state of a target slot. The set is closed:
// synchronization and rendering switch exhaustively over it. There is no
// terminal state; "final" is a rendering mode, not a status.
type Status string

const (
	// StatusPending means no accepted translation covers the slot yet.
	StatusPending Status = "PENDING"
	// StatusAssigned means synchronization copied a resolved translation in.
	StatusAssigned Status = "ASSIGNED"
	// StatusBlocked means locution fusion claims the slot; synchronization
	// leaves it untouched.
	StatusBlocked Status = "BLOCKED"
	// StatusNullified means the slot is deliberately elided from output.
	StatusNullified Status = "NULLIFIED"
)

// Slot is one aligned position. Source and target matrices hold one slot
// per token at identical indices; only target slots mutate.
type Slot struct {
	Index          int
	SourceText     string
	TargetText     string
	Category       Category
	Status         Status
	PreInjections  []string
	PostInjections []string
}

// newMatrices builds the aligned source and target matrices for a token
// sequence. Target slots start PENDING with empty translations and carry a
// copy of the source text for display and fallback.
func newMatrices(tokens []Token) (source, target []Slot) {
	source = make([]Slot, len(tokens))
	target = make([]Slot, len(tokens))
	for i, tok := range tokens {
		source[i] = Slot{
			Index:      i,
			SourceText: tok.Text,
			Category:   tok.Category,
			Status:     StatusPending,
		}
		target[i] = Slot{
			Index:      i,
			SourceText: tok.Text,
			Category:   tok.Category,
			Status:     StatusPending,
		}
	}
	return source, target
}
