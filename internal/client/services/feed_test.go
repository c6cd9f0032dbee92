package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
)

type fakeFeedAPI struct {
	pages   map[int]api.Page[models.Opportunity]
	filters []api.OpportunityFilter
	byID    map[int64]models.Opportunity
}

func (f *fakeFeedAPI) ListOpportunities(ctx context.Context, filter api.OpportunityFilter, page int) (api.Page[models.Opportunity], error) {
	f.filters = append(f.filters, filter)
	return f.pages[page], nil
}

func (f *fakeFeedAPI) GetOpportunity(ctx context.Context, id int64) (models.Opportunity, error) {
	return f.byID[id], nil
}

func TestFeedService_FilterChangeResetsPagination(t *testing.T) {
	fake := &fakeFeedAPI{pages: map[int]api.Page[models.Opportunity]{
		1: oppPage(nextURL(2), 1, 2),
		2: oppPage(nil, 3),
	}}
	s := NewFeedService(fake)

	_, err := s.LoadMore(context.Background())
	require.NoError(t, err)
	_, err = s.LoadMore(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids(s.Opportunities()))

	// Same filter again keeps the accumulated pages.
	s.SetFilter(api.OpportunityFilter{})
	require.Equal(t, []int64{1, 2, 3}, ids(s.Opportunities()))

	// A changed filter discards them and restarts at page one.
	s.SetFilter(api.OpportunityFilter{Query: "robotics"})
	require.Empty(t, s.Opportunities())

	_, err = s.LoadMore(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, ids(s.Opportunities()))
	require.Equal(t, "robotics", fake.filters[len(fake.filters)-1].Query)
}

func TestFeedService_SearchIsLocalAndCaseInsensitive(t *testing.T) {
	fake := &fakeFeedAPI{pages: map[int]api.Page[models.Opportunity]{
		1: {Count: 3, Results: []models.Opportunity{
			{ID: 1, Title: "Robotics Intern", Organization: "Acme"},
			{ID: 2, Title: "Data Analyst", Organization: "RoboCorp"},
			{ID: 3, Title: "Teacher", Organization: "School", DescriptionEN: "no match here"},
		}},
	}}
	s := NewFeedService(fake)
	_, err := s.LoadMore(context.Background())
	require.NoError(t, err)
	listCalls := len(fake.filters)

	require.Equal(t, []int64{1, 2}, ids(s.Search("ROBO")))
	require.Equal(t, []int64{1, 2, 3}, ids(s.Search("")))
	require.Empty(t, s.Search("quantum"))
	require.Equal(t, listCalls, len(fake.filters), "search must not hit the server")
}
