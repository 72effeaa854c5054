package isoglot

import "sort"

// Entry is one glossary record: the accepted translation for a token key
// and its classification.
type Entry struct {
	Translation string
	Category    Category
	Status      Status
}

// KeyedEntry pairs a glossary key with its entry, for display and export.
type KeyedEntry struct {
	Key string
	Entry
}

// Glossary is the single source of truth for what a token means. The
// matrices never hold a translation that did not pass through it, so
// editing an entry and re-synchronizing propagates to every occurrence.
//
// A Glossary is scoped to one translation session and is not safe for
// concurrent use; the engine contract is single-threaded.
type Glossary struct {
	entries map[string]*Entry
}

// NewGlossary creates an empty glossary.
func NewGlossary() *Glossary {
	return &Glossary{entries: make(map[string]*Entry)}
}

// Register inserts a PENDING entry with an empty translation under key.
// It is a no-op if the key already exists: the first registration wins the
// category and nothing is ever overwritten through this path.
func (g *Glossary) Register(key string, category Category) {
	if _, ok := g.entries[key]; ok {
		return
	}
	g.entries[key] = &Entry{Category: category, Status: StatusPending}
}

// Resolve sets the translation for a registered key. A non-empty
// translation moves the entry to ASSIGNED; an empty one clears it back to
// PENDING. The optional category overrides the stored classification.
// Resolving a key that was never registered returns *UnknownKeyError.
func (g *Glossary) Resolve(key, translation string, category ...Category) error {
	entry, ok := g.entries[key]
	if !ok {
		return &UnknownKeyError{Key: key}
	}
	entry.Translation = translation
	if translation == "" {
		entry.Status = StatusPending
	} else {
		entry.Status = StatusAssigned
	}
	if len(category) > 0 {
		entry.Category = category[0]
	}
	return nil
}

// Lookup returns a copy of the entry for key and whether it exists. It
// never mutates the glossary.
func (g *Glossary) Lookup(key string) (Entry, bool) {
	entry, ok := g.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// put force-writes an entry, overwriting any prior one under the same key.
// Reserved for locution fusion, which registers and resolves atomically
// with last-write-wins semantics.
func (g *Glossary) put(key, translation string, category Category) {
	status := StatusAssigned
	if translation == "" {
		status = StatusPending
	}
	g.entries[key] = &Entry{Translation: translation, Category: category, Status: status}
}

// Entries returns all entries sorted by key.
func (g *Glossary) Entries() []KeyedEntry {
	out := make([]KeyedEntry, 0, len(g.entries))
	for key, entry := range g.entries {
		out = append(out, KeyedEntry{Key: key, Entry: *entry})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len returns the number of entries.
func (g *Glossary) Len() int {
	return len(g.entries)
}

// UnresolvedKeys returns the sorted keys of PENDING entries in the given
// category. This is the request set for the suggestion oracle.
func (g *Glossary) UnresolvedKeys(category Category) []string {
	var keys []string
	for key, entry := range g.entries {
		if entry.Status == StatusPending && entry.Category == category {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Clear removes every entry, resetting the session's translation memory.
func (g *Glossary) Clear() {
	g.entries = make(map[string]*Entry)
}
