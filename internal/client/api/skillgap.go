package api

import (
	"context"
	"fmt"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// ListSkillGapAnalyses fetches the user's analyses, newest first.
func (c *Client) ListSkillGapAnalyses(ctx context.Context) (Page[models.SkillGapAnalysis], error) {
	var result Page[models.SkillGapAnalysis]
	err := c.get(ctx, "/api/skill-gap-analysis/", nil, &result)
	return result, err
}

// GetSkillGapAnalysis fetches the full analysis record.
func (c *Client) GetSkillGapAnalysis(ctx context.Context, id int64) (models.SkillGapAnalysis, error) {
	var result models.SkillGapAnalysis
	err := c.get(ctx, fmt.Sprintf("/api/skill-gap-analysis/%d/", id), nil, &result)
	return result, err
}

// AnalyzeSkillGap kicks off an analysis for an opportunity. The returned
// record is usually still GENERATING.
func (c *Client) AnalyzeSkillGap(ctx context.Context, opportunityID int64) (models.SkillGapAnalysis, error) {
	var result models.SkillGapAnalysis
	in := map[string]int64{"opportunity_id": opportunityID}
	err := c.post(ctx, "/api/skill-gap-analysis/analyze/", in, &result)
	return result, err
}
