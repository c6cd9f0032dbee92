package services

import (
	"context"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
)

// MatchAPI is the slice of the API client the match dashboard uses.
type MatchAPI interface {
	ListMatches(ctx context.Context, status models.MatchStatus, page int) (api.Page[models.Match], error)
	GetMatch(ctx context.Context, id int64) (models.Match, error)
}

// MatchService drives the personalized match dashboard. The pager is keyed
// on the status filter: switching status discards accumulated pages and
// restarts at page one.
type MatchService struct {
	api    MatchAPI
	status models.MatchStatus
	pager  *Pager[models.Match]
}

func NewMatchService(api MatchAPI) *MatchService {
	s := &MatchService{api: api}
	s.pager = s.newPager()
	return s
}

func (s *MatchService) newPager() *Pager[models.Match] {
	status := s.status
	return NewPager(
		func(ctx context.Context, page int) (api.Page[models.Match], error) {
			return s.api.ListMatches(ctx, status, page)
		},
		func(m models.Match) int64 { return m.ID },
	)
}

// Status returns the active status filter; empty means all statuses.
func (s *MatchService) Status() models.MatchStatus {
	return s.status
}

// SetStatus replaces the status filter, resetting pagination when it
// actually changes.
func (s *MatchService) SetStatus(status models.MatchStatus) {
	if status == s.status {
		return
	}
	s.status = status
	s.pager = s.newPager()
}

// LoadMore fetches the next page of matches.
func (s *MatchService) LoadMore(ctx context.Context) (bool, error) {
	return s.pager.LoadMore(ctx)
}

// Matches returns the accumulated list.
func (s *MatchService) Matches() []models.Match {
	return s.pager.Items()
}

// HasMore reports whether another page is available.
func (s *MatchService) HasMore() bool {
	return s.pager.HasMore()
}

// Total returns the server-reported total for the active status filter.
func (s *MatchService) Total() int64 {
	return s.pager.Count()
}

// Get fetches one match by id.
func (s *MatchService) Get(ctx context.Context, id int64) (models.Match, error) {
	return s.api.GetMatch(ctx, id)
}
