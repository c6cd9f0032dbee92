package api

import (
	"context"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// Taxonomy read endpoints. These lists are small and unpaginated.

func (c *Client) ListOpportunityTypes(ctx context.Context) ([]models.OpportunityType, error) {
	var result []models.OpportunityType
	err := c.get(ctx, "/api/opportunities/taxonomy/opportunity-types/", nil, &result)
	return result, err
}

func (c *Client) ListDomains(ctx context.Context) ([]models.Domain, error) {
	var result []models.Domain
	err := c.get(ctx, "/api/opportunities/taxonomy/domains/", nil, &result)
	return result, err
}

func (c *Client) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	var result []models.Specialization
	err := c.get(ctx, "/api/opportunities/taxonomy/specializations/", nil, &result)
	return result, err
}

func (c *Client) ListLocations(ctx context.Context) ([]models.Location, error) {
	var result []models.Location
	err := c.get(ctx, "/api/opportunities/taxonomy/locations/", nil, &result)
	return result, err
}
