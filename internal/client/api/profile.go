package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// ProfileUpdate is the JSON patch form of the profile. Nil fields are left
// untouched by the backend.
type ProfileUpdate struct {
	FullName     *string          `json:"full_name,omitempty"`
	CVText       *string          `json:"cv_text,omitempty"`
	AcademicInfo map[string]any   `json:"academic_info,omitempty"`
	Skills       []string         `json:"skills,omitempty"`
	Interests    []string         `json:"interests,omitempty"`
	Languages    []map[string]any `json:"languages,omitempty"`
}

// GetProfile fetches the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var result models.UserProfile
	err := c.get(ctx, "/api/profile/me/", nil, &result)
	return result, err
}

// UpdateProfile patches the profile with JSON. Use UpdateProfileWithCV when
// a CV file is attached.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (models.UserProfile, error) {
	var result models.UserProfile
	err := c.patch(ctx, "/api/profile/me/", update, &result)
	return result, err
}

// UpdateProfileWithCV patches the profile as multipart so the CV file can
// ride along; non-file fields are JSON-encoded into form values the way the
// browser client sends them.
func (c *Client) UpdateProfileWithCV(ctx context.Context, update ProfileUpdate, fileName string, cv []byte) (models.UserProfile, error) {
	fields := map[string]string{}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.CVText != nil {
		fields["cv_text"] = *update.CVText
	}
	for name, v := range map[string]any{
		"academic_info": update.AcademicInfo,
		"skills":        update.Skills,
		"interests":     update.Interests,
		"languages":     update.Languages,
	} {
		if v == nil {
			continue
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return models.UserProfile{}, err
		}
		fields[name] = string(encoded)
	}

	var result models.UserProfile
	err := c.doMultipart(ctx, http.MethodPatch, "/api/profile/me/", fields, "cv_file", fileName, cv, &result)
	return result, err
}
