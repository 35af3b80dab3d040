// Package paginator slices ordered collections into fixed-size pages.
//
// Page numbers are 1-based. A missing or non-numeric page selects the first
// page; a numeric page outside [1, last] selects the last page. An empty
// collection still has one (empty) page.
package paginator

import (
	"strconv"
	"strings"
)

// PerPage is the page size of every feed.
const PerPage = 10

type Paginator struct {
	PerPage int
}

func New(perPage int) *Paginator {
	if perPage <= 0 {
		perPage = PerPage
	}
	return &Paginator{PerPage: perPage}
}

// Page locates one page inside a collection of Count items.
type Page struct {
	Number   int
	NumPages int
	Count    int64
	PerPage  int
}

// Paginate resolves raw (usually the "page" query parameter) against count.
func (p *Paginator) Paginate(count int64, raw string) Page {
	if count < 0 {
		count = 0
	}
	pg := Page{Count: count, PerPage: p.PerPage, NumPages: numPages(count, p.PerPage)}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case err != nil:
		pg.Number = 1
	case n < 1 || n > pg.NumPages:
		pg.Number = pg.NumPages
	default:
		pg.Number = n
	}
	return pg
}

func numPages(count int64, perPage int) int {
	if count == 0 {
		return 1
	}
	return int((count + int64(perPage) - 1) / int64(perPage))
}

// Offset is the index of the first item on the page.
func (pg Page) Offset() int {
	return (pg.Number - 1) * pg.PerPage
}

// Limit is the number of items the page holds.
func (pg Page) Limit() int {
	rest := pg.Count - int64(pg.Offset())
	if rest <= 0 {
		return 0
	}
	if rest < int64(pg.PerPage) {
		return int(rest)
	}
	return pg.PerPage
}

func (pg Page) HasNext() bool     { return pg.Number < pg.NumPages }
func (pg Page) HasPrevious() bool { return pg.Number > 1 }

// StartIndex is the 1-based position of the first item, 0 for an empty page.
func (pg Page) StartIndex() int {
	if pg.Limit() == 0 {
		return 0
	}
	return pg.Offset() + 1
}

// EndIndex is the 1-based position of the last item, 0 for an empty page.
func (pg Page) EndIndex() int {
	return pg.Offset() + pg.Limit()
}

// Slice returns the page's window of items, which must hold the whole
// collection.
func Slice[T any](items []T, pg Page) []T {
	start := pg.Offset()
	if start >= len(items) {
		return items[:0]
	}
	end := start + pg.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
