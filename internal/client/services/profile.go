package services

import (
	"context"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
)

// ProfileAPI is the slice of the API client the profile service uses.
type ProfileAPI interface {
	GetProfile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (models.UserProfile, error)
	UpdateProfileWithCV(ctx context.Context, update api.ProfileUpdate, fileName string, cv []byte) (models.UserProfile, error)
}

// ProfileService edits the one-to-one profile record. A plain update
// travels as JSON; attaching a CV switches the same endpoint to multipart.
type ProfileService struct {
	api ProfileAPI
}

func NewProfileService(api ProfileAPI) *ProfileService {
	return &ProfileService{api: api}
}

func (s *ProfileService) Get(ctx context.Context) (models.UserProfile, error) {
	return s.api.GetProfile(ctx)
}

func (s *ProfileService) Update(ctx context.Context, update api.ProfileUpdate) (models.UserProfile, error) {
	return s.api.UpdateProfile(ctx, update)
}

// UpdateWithCV replaces the stored CV file alongside the field update. The
// file must pass the same constraints as an extraction upload.
func (s *ProfileService) UpdateWithCV(ctx context.Context, update api.ProfileUpdate, fileName string, cv []byte) (models.UserProfile, error) {
	if err := ValidateCV(fileName, int64(len(cv))); err != nil {
		return models.UserProfile{}, err
	}
	return s.api.UpdateProfileWithCV(ctx, update, fileName, cv)
}
