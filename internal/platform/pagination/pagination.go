// Package pagination provides page math for the history view, including the
// elided page range (leading/trailing pages with ellipsis markers around the
// current page).
package pagination

// Default elision window: 3 pages on each side of the current page and
// 2 pages at each end of the range.
const (
	DefaultOnEachSide = 3
	DefaultOnEnds     = 2
)

// PageItem is one slot in an elided page range: either a page number or an
// ellipsis marker.
type PageItem struct {
	Number   int
	Ellipsis bool
}

// Paginator slices a count of items into fixed-size pages.
type Paginator struct {
	Count   int64
	PerPage int
}

// New returns a Paginator for count items with perPage items per page.
// perPage must be positive.
func New(count int64, perPage int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	return &Paginator{Count: count, PerPage: perPage}
}

// PageCount returns the number of pages; at least 1 even when empty.
func (p *Paginator) PageCount() int {
	if p.Count <= 0 {
		return 1
	}
	n := int((p.Count + int64(p.PerPage) - 1) / int64(p.PerPage))
	if n < 1 {
		return 1
	}
	return n
}

// Required reports whether pagination controls should render at all.
func (p *Paginator) Required() bool {
	return p.Count > int64(p.PerPage)
}

// Clamp returns number forced into the valid page range [1, PageCount].
func (p *Paginator) Clamp(number int) int {
	if number < 1 {
		return 1
	}
	if last := p.PageCount(); number > last {
		return last
	}
	return number
}

// Offset returns the item offset at which the given (clamped) page starts.
func (p *Paginator) Offset(number int) int {
	return (p.Clamp(number) - 1) * p.PerPage
}

// ElidedRange returns the page items to render around the current page using
// the default window.
func (p *Paginator) ElidedRange(number int) []PageItem {
	return p.ElidedRangeWindow(number, DefaultOnEachSide, DefaultOnEnds)
}

// ElidedRangeWindow returns the 1-based pages to render for the current page
// number, keeping onEachSide pages around it and onEnds pages at each edge,
// with an ellipsis item wherever pages were elided. When the total page count
// fits within the window, every page is returned and nothing is elided.
func (p *Paginator) ElidedRangeWindow(number, onEachSide, onEnds int) []PageItem {
	number = p.Clamp(number)
	last := p.PageCount()

	if last <= (onEachSide+onEnds)*2 {
		return pageRange(1, last)
	}

	var items []PageItem
	if number > 1+onEachSide+onEnds+1 {
		items = append(items, pageRange(1, onEnds)...)
		items = append(items, PageItem{Ellipsis: true})
		items = append(items, pageRange(number-onEachSide, number)...)
	} else {
		items = append(items, pageRange(1, number)...)
	}

	if number < last-onEachSide-onEnds-1 {
		items = append(items, pageRange(number+1, number+onEachSide)...)
		items = append(items, PageItem{Ellipsis: true})
		items = append(items, pageRange(last-onEnds+1, last)...)
	} else {
		items = append(items, pageRange(number+1, last)...)
	}
	return items
}

func pageRange(from, to int) []PageItem {
	if to < from {
		return nil
	}
	out := make([]PageItem, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, PageItem{Number: n})
	}
	return out
}
