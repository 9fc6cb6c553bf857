package internal

// Paginator computes page bounds. A PerPage of zero shows every row on one page.
type Paginator struct {
	Total   int
	PerPage int
	Page    int
}

// onEachSide is the number of pages shown around the current one.
const onEachSide = 3

// NewPaginator returns a paginator with page clamped to the valid range.
func NewPaginator(total, perPage, page int) Paginator {
	p := Paginator{Total: max(total, 0), PerPage: max(perPage, 0), Page: page}
	p.Page = min(max(page, 1), p.LastPage())
	return p
}

// LastPage returns the number of pages, at least 1.
func (p Paginator) LastPage() int {
	if p.PerPage <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// Offset returns the number of rows before the current page.
func (p Paginator) Offset() int {
	if p.PerPage <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// From returns the 1-based position of the first row of the page, 0 when empty.
func (p Paginator) From() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// To returns the position of the last row of the page.
func (p Paginator) To() int {
	if p.PerPage <= 0 {
		return p.Total
	}
	return min(p.Page*p.PerPage, p.Total)
}

// HasPages reports whether there is more than one page.
func (p Paginator) HasPages() bool {
	return p.LastPage() > 1
}

// Window returns the page numbers to link. Zero marks a gap.
// Up to 13 pages are all listed; beyond that the first and last two pages
// frame a slider of onEachSide pages around the current one.
func (p Paginator) Window() []int {
	last := p.LastPage()
	if last < onEachSide*2+8 {
		return pageRange(1, last)
	}

	window := onEachSide + 4
	switch {
	case p.Page <= window:
		out := pageRange(1, window+onEachSide)
		out = append(out, 0)
		return append(out, last-1, last)
	case p.Page > last-window:
		out := []int{1, 2, 0}
		return append(out, pageRange(last-(window+onEachSide-1), last)...)
	default:
		out := []int{1, 2, 0}
		out = append(out, pageRange(p.Page-onEachSide, p.Page+onEachSide)...)
		out = append(out, 0)
		return append(out, last-1, last)
	}
}

func pageRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
