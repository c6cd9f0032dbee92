package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// UploadCV starts an extraction session from a CV file. The returned
// session may already be terminal.
func (c *Client) UploadCV(ctx context.Context, fileName string, file []byte) (models.CVExtractionSession, error) {
	var result models.CVExtractionSession
	err := c.doMultipart(ctx, http.MethodPost, "/api/cv-extraction/upload/", nil, "cv_file", fileName, file, &result)
	return result, err
}

// ListCVSessions fetches the user's extraction sessions, newest first.
func (c *Client) ListCVSessions(ctx context.Context) (Page[models.CVExtractionSession], error) {
	var result Page[models.CVExtractionSession]
	err := c.get(ctx, "/api/cv-extraction/sessions/", nil, &result)
	return result, err
}

// GetCVSession fetches the full session record.
func (c *Client) GetCVSession(ctx context.Context, id int64) (models.CVExtractionSession, error) {
	var result models.CVExtractionSession
	err := c.get(ctx, fmt.Sprintf("/api/cv-extraction/sessions/%d/", id), nil, &result)
	return result, err
}

// GetCVSessionStatus hits the lightweight status endpoint used while
// polling.
func (c *Client) GetCVSessionStatus(ctx context.Context, id int64) (models.JobStatus, error) {
	var result struct {
		Status models.JobStatus `json:"status"`
	}
	err := c.get(ctx, fmt.Sprintf("/api/cv-extraction/sessions/%d/status/", id), nil, &result)
	return result.Status, err
}

// ApplyCVExtraction writes the session's extracted fields to the profile
// and returns the updated profile.
func (c *Client) ApplyCVExtraction(ctx context.Context, id int64) (models.UserProfile, error) {
	var result models.UserProfile
	err := c.post(ctx, fmt.Sprintf("/api/cv-extraction/sessions/%d/apply/", id), nil, &result)
	return result, err
}
