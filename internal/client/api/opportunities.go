package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// OpportunityFilter holds the server-side list filters. The zero value
// means "no filter". Changing any field must restart pagination at page 1;
// the feed service enforces that by keying its pager on the filter value.
type OpportunityFilter struct {
	Query            string
	OpTypeID         int64
	DomainID         int64
	SpecializationID int64
	LocationID       int64
	Remote           *bool
	WorkMode         models.WorkMode
	ExperienceLevel  models.ExperienceLevel
	Status           string
}

func (f OpportunityFilter) values(page int) url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.OpTypeID != 0 {
		q.Set("op_type", strconv.FormatInt(f.OpTypeID, 10))
	}
	if f.DomainID != 0 {
		q.Set("domain", strconv.FormatInt(f.DomainID, 10))
	}
	if f.SpecializationID != 0 {
		q.Set("specialization", strconv.FormatInt(f.SpecializationID, 10))
	}
	if f.LocationID != 0 {
		q.Set("location", strconv.FormatInt(f.LocationID, 10))
	}
	if f.Remote != nil {
		q.Set("is_remote", strconv.FormatBool(*f.Remote))
	}
	if f.WorkMode != "" {
		q.Set("work_mode", string(f.WorkMode))
	}
	if f.ExperienceLevel != "" {
		q.Set("experience_level", string(f.ExperienceLevel))
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}

// ListOpportunities fetches one page of the opportunity feed.
func (c *Client) ListOpportunities(ctx context.Context, filter OpportunityFilter, page int) (Page[models.Opportunity], error) {
	var result Page[models.Opportunity]
	err := c.get(ctx, "/api/opportunities/", filter.values(page), &result)
	return result, err
}

// GetOpportunity fetches a single posting.
func (c *Client) GetOpportunity(ctx context.Context, id int64) (models.Opportunity, error) {
	var result models.Opportunity
	err := c.get(ctx, fmt.Sprintf("/api/opportunities/%d/", id), nil, &result)
	return result, err
}
