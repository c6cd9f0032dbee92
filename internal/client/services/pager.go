// Package services contains application services for the Findra CLI: the
// object layer between the raw API client and the terminal UI. Services own
// accumulated state (pages, drafts, selections) and enforce the client-side
// rules the backend does not.
package services

import (
	"context"
	"sync"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/selection"
)

// Pager accumulates a paginated listing page by page. Items are de-duplicated
// by id across page boundaries with the first occurrence winning, so a record
// that shifts between pages while the user scrolls never appears twice.
//
// LoadMore is guarded: while a fetch is in flight, further calls return
// immediately without starting a second request. Reset discards everything
// and starts over at page one.
type Pager[T any] struct {
	fetch func(ctx context.Context, page int) (api.Page[T], error)
	id    func(T) int64

	mu      sync.Mutex
	loading bool
	items   []T
	seen    selection.Set
	next    int
	hasMore bool
	count   int64
}

// NewPager builds a pager over fetch, identifying items by id. The first
// LoadMore requests page 1.
func NewPager[T any](fetch func(ctx context.Context, page int) (api.Page[T], error), id func(T) int64) *Pager[T] {
	return &Pager[T]{
		fetch:   fetch,
		id:      id,
		seen:    selection.NewSet(),
		next:    1,
		hasMore: true,
	}
}

// LoadMore fetches the next page and merges it into the accumulated list.
// It reports whether a fetch actually ran: false means a fetch was already
// in flight or the last page had been reached.
func (p *Pager[T]) LoadMore(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.loading || !p.hasMore {
		p.mu.Unlock()
		return false, nil
	}
	p.loading = true
	page := p.next
	p.mu.Unlock()

	result, err := p.fetch(ctx, page)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		return false, err
	}

	p.count = result.Count
	for _, item := range result.Results {
		if p.seen.Add(p.id(item)) {
			p.items = append(p.items, item)
		}
	}
	if next, ok := result.NextPage(); ok {
		p.next = next
	} else {
		p.hasMore = false
	}
	return true, nil
}

// Items returns a snapshot of the accumulated list.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Len returns the number of accumulated items.
func (p *Pager[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Count returns the server-reported total across all pages.
func (p *Pager[T]) Count() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// HasMore reports whether another page is available.
func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Loading reports whether a fetch is currently in flight.
func (p *Pager[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Reset discards accumulated items and restarts pagination at page one.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = nil
	p.seen = selection.NewSet()
	p.next = 1
	p.hasMore = true
	p.count = 0
}
