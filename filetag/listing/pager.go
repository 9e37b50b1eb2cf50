package listing

import "github.com/nonibytes/filetag/filetag"

// Pager splits a list into fixed-size pages numbered from 1. There is always
// at least one page, even for an empty list.
type Pager[T any] struct {
	items    []T
	pageSize int
	page     int
}

func NewPager[T any](pageSize int) *Pager[T] {
	if pageSize < 1 {
		pageSize = filetag.DefaultPageSize
	}
	return &Pager[T]{pageSize: pageSize, page: 1}
}

// SetItems replaces the list, pulling the current page back if it no longer exists
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	if tp := p.TotalPages(); p.page > tp {
		p.page = tp
	}
}

// SetPageSize changes the page size (minimum 1) and returns to page 1
func (p *Pager[T]) SetPageSize(n int) {
	n = max(1, n)
	if n == p.pageSize {
		return
	}
	p.pageSize = n
	p.page = 1
}

// SetPage moves to page, clamped into [1, TotalPages]
func (p *Pager[T]) SetPage(page int) {
	p.page = min(max(1, page), p.TotalPages())
}

func (p *Pager[T]) PageSize() int    { return p.pageSize }
func (p *Pager[T]) CurrentPage() int { return p.page }
func (p *Pager[T]) TotalItems() int  { return len(p.items) }

func (p *Pager[T]) TotalPages() int {
	n := len(p.items)
	if n == 0 {
		return 1
	}
	return (n + p.pageSize - 1) / p.pageSize
}

// Items returns the current page's slice of the list
func (p *Pager[T]) Items() []T {
	start := (p.page - 1) * p.pageSize
	if start >= len(p.items) {
		return nil
	}
	end := min(start+p.pageSize, len(p.items))
	return p.items[start:end]
}
