package notes

// Note is a free-form note filed under a tag. Notes are immutable once added.
type Note struct {
	Text string
	Tag  string
}

// Group is every note sharing a tag, in insertion order.
type Group struct {
	Tag   string
	Color Color
	Notes []Note
}
