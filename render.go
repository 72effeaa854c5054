package isoglot

import "strings"

// RenderMode selects the output register.
type RenderMode string

const (
	// RenderDraft marks unresolved content with a distinguishing decoration
	// for review.
	RenderDraft RenderMode = "DRAFT"
	// RenderFinal produces the plain serialized text.
	RenderFinal RenderMode = "FINAL"
)

// closingMarks are fragments that attach to the preceding fragment without
// a separating space.
var closingMarks = map[string]bool{
	".": true, ",": true, ";": true, ":": true,
	"!": true, "?": true, ")": true, "]": true,
	"}": true, "…": true, "»": true, "%": true,
}

// openingMarks are fragments that suppress the space that would otherwise
// follow them.
var openingMarks = map[string]bool{
	"(": true, "[": true, "{": true, "«": true,
	"¿": true, "¡": true,
}

// renderSlots serializes a target matrix in index order. It is pure,
// read-only, and deterministic.
func renderSlots(slots []Slot, mode RenderMode) string {
	var b strings.Builder
	suppressSpace := true // No leading space at the start of the buffer.

	for i := range slots {
		frag := fragment(&slots[i], mode)
		if frag == "" {
			// Absorbed and empty slots contribute nothing, not even spacing.
			continue
		}

		trimmed := strings.TrimSpace(frag)
		closing := slots[i].Category == CategoryPunctuation || closingMarks[trimmed]
		if !suppressSpace && !closing {
			b.WriteByte(' ')
		}
		b.WriteString(frag)
		suppressSpace = openingMarks[trimmed]
	}

	return strings.TrimRight(b.String(), " \t\n")
}

// fragment computes the display text for one slot, or "" if the slot is
// absorbed into a locution.
func fragment(slot *Slot, mode RenderMode) string {
	var core string
	switch slot.Status {
	case StatusNullified:
		// Braces mark deliberate elision while keeping the source auditable.
		core = "{" + slot.SourceText + "}"
	case StatusBlocked:
		if slot.TargetText == "" {
			return ""
		}
		core = slot.TargetText
	case StatusPending, StatusAssigned:
		core = slot.TargetText
		if core == "" {
			if slot.Category == CategoryPunctuation {
				// Punctuation carries itself when unresolved.
				core = slot.SourceText
			} else {
				core = "[" + slot.SourceText + "?]"
			}
		}
		if mode == RenderDraft && slot.Status == StatusPending && slot.Category != CategoryPunctuation {
			core = "⟨" + core + "⟩"
		}
	}

	var parts []string
	for _, inj := range slot.PreInjections {
		parts = append(parts, "["+inj+"]")
	}
	parts = append(parts, core)
	for _, inj := range slot.PostInjections {
		parts = append(parts, "["+inj+"]")
	}
	return strings.Join(parts, " ")
}
