package services

import (
	"context"
	"strings"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
)

// FeedAPI is the slice of the API client the opportunity feed uses.
type FeedAPI interface {
	ListOpportunities(ctx context.Context, filter api.OpportunityFilter, page int) (api.Page[models.Opportunity], error)
	GetOpportunity(ctx context.Context, id int64) (models.Opportunity, error)
}

// FeedService drives the opportunity feed: server-side filters select what
// the backend returns, the pager accumulates pages, and Search narrows the
// accumulated list locally without another round trip.
type FeedService struct {
	api    FeedAPI
	filter api.OpportunityFilter
	pager  *Pager[models.Opportunity]
}

func NewFeedService(api FeedAPI) *FeedService {
	s := &FeedService{api: api}
	s.pager = s.newPager()
	return s
}

func (s *FeedService) newPager() *Pager[models.Opportunity] {
	filter := s.filter
	return NewPager(
		func(ctx context.Context, page int) (api.Page[models.Opportunity], error) {
			return s.api.ListOpportunities(ctx, filter, page)
		},
		func(o models.Opportunity) int64 { return o.ID },
	)
}

// Filter returns the active server-side filter.
func (s *FeedService) Filter() api.OpportunityFilter {
	return s.filter
}

// SetFilter replaces the server-side filter. A changed filter discards the
// accumulated feed and restarts pagination; setting the same filter again
// keeps the current pages.
func (s *FeedService) SetFilter(filter api.OpportunityFilter) {
	if filter == s.filter {
		return
	}
	s.filter = filter
	s.pager = s.newPager()
}

// LoadMore fetches the next feed page. See Pager.LoadMore for the in-flight
// and last-page semantics.
func (s *FeedService) LoadMore(ctx context.Context) (bool, error) {
	return s.pager.LoadMore(ctx)
}

// Opportunities returns the accumulated feed.
func (s *FeedService) Opportunities() []models.Opportunity {
	return s.pager.Items()
}

// HasMore reports whether another page is available.
func (s *FeedService) HasMore() bool {
	return s.pager.HasMore()
}

// Total returns the server-reported total for the active filter.
func (s *FeedService) Total() int64 {
	return s.pager.Count()
}

// Get fetches one posting by id.
func (s *FeedService) Get(ctx context.Context, id int64) (models.Opportunity, error) {
	return s.api.GetOpportunity(ctx, id)
}

// Search narrows the accumulated feed to postings whose title, organization
// or description contains q, case-insensitively. An empty q returns the
// whole accumulated feed. No request is made; only loaded pages are
// searched.
func (s *FeedService) Search(q string) []models.Opportunity {
	items := s.pager.Items()
	if q == "" {
		return items
	}
	q = strings.ToLower(q)
	var out []models.Opportunity
	for _, o := range items {
		if strings.Contains(strings.ToLower(o.Title), q) ||
			strings.Contains(strings.ToLower(o.Organization), q) ||
			strings.Contains(strings.ToLower(o.DescriptionEN), q) {
			out = append(out, o)
		}
	}
	return out
}
