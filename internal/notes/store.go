package notes

import "strings"

// Store is an append-only, ordered log of notes. It is not safe for
// concurrent use; the owning dashboard serialises access.
type Store struct {
	notes []Note
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add validates and appends a note. Both fields are trimmed; a field that is
// empty after trimming rejects the note and leaves the store untouched.
func (s *Store) Add(text, tag string) (Note, error) {
	text = strings.TrimSpace(text)
	tag = strings.TrimSpace(tag)

	if text == "" {
		return Note{}, ErrEmptyText
	}
	if tag == "" {
		return Note{}, ErrEmptyTag
	}

	n := Note{Text: text, Tag: tag}
	s.notes = append(s.notes, n)
	return n, nil
}

// Len returns the number of stored notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// Notes returns a copy of the note log in insertion order.
func (s *Store) Notes() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// GroupedByTag folds the log into per-tag groups. Groups appear in the order
// their tag was first seen; notes keep insertion order inside a group.
func (s *Store) GroupedByTag() []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, n := range s.notes {
		i, ok := index[n.Tag]
		if !ok {
			i = len(groups)
			index[n.Tag] = i
			groups = append(groups, Group{Tag: n.Tag, Color: ColorFor(n.Tag)})
		}
		groups[i].Notes = append(groups[i].Notes, n)
	}

	return groups
}
