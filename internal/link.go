package internal

// LinkKind tells how a column builds the URL of its cells.
type LinkKind int

const (
	// LinkNone leaves cells unlinked.
	LinkNone LinkKind = iota
	// LinkValue links each cell to its own displayed value.
	LinkValue
	// LinkLiteral links every cell to the same URL.
	LinkLiteral
	// LinkCallback computes the URL per row.
	LinkCallback
)

type link struct {
	kind LinkKind
	url  string
	fn   func(Row, *Column) string
}

// resolve returns the href of a cell displaying value.
// Empty values are never linked.
func (l link) resolve(row Row, col *Column, value string) string {
	if value == "" {
		return ""
	}
	switch l.kind {
	case LinkValue:
		return value
	case LinkLiteral:
		return l.url
	case LinkCallback:
		return l.fn(row, col)
	default:
		return ""
	}
}
