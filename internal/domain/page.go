package domain

// DefaultPageSize is the number of entries shown per page
const DefaultPageSize = 10

// Page is one bounded slice of the search view
type Page struct {
	Term       string
	Number     int
	Size       int
	TotalPages int
	// Matches is the size of the whole view, not of Items
	Matches int
	Items   []WordEntry
}

// HasPrev reports whether a previous page exists
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a following page exists
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// Empty reports whether the view has no entries at all
func (p Page) Empty() bool {
	return p.Matches == 0
}

// Offset is the zero-based position of the first item of the page within the view
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}
