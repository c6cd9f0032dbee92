package services

import (
	"context"
	"errors"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
)

// ErrUpgradePending is returned when a new upgrade request is submitted
// while an earlier one is still awaiting review.
var ErrUpgradePending = errors.New("an upgrade request is already pending review")

// SubscriptionAPI is the slice of the API client the subscription service
// uses.
type SubscriptionAPI interface {
	ListUpgradeRequests(ctx context.Context) (api.Page[models.SubscriptionUpgradeRequest], error)
	SubmitUpgradeRequest(ctx context.Context, paymentMethod, reference, proofName string, proof []byte) (models.SubscriptionUpgradeRequest, error)
}

// SubscriptionService handles the manually reviewed upgrade flow: the user
// submits a payment reference (optionally with a proof file) and an admin
// approves or rejects it later.
type SubscriptionService struct {
	api SubscriptionAPI
}

func NewSubscriptionService(api SubscriptionAPI) *SubscriptionService {
	return &SubscriptionService{api: api}
}

// Requests lists the user's upgrade requests, newest first.
func (s *SubscriptionService) Requests(ctx context.Context) ([]models.SubscriptionUpgradeRequest, error) {
	page, err := s.api.ListUpgradeRequests(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// RequestUpgrade submits a new upgrade request. While an earlier request is
// still pending the submission is refused locally with ErrUpgradePending.
func (s *SubscriptionService) RequestUpgrade(ctx context.Context, paymentMethod, reference, proofName string, proof []byte) (models.SubscriptionUpgradeRequest, error) {
	existing, err := s.Requests(ctx)
	if err != nil {
		return models.SubscriptionUpgradeRequest{}, err
	}
	for i := range existing {
		if existing[i].Pending() {
			return models.SubscriptionUpgradeRequest{}, ErrUpgradePending
		}
	}
	return s.api.SubmitUpgradeRequest(ctx, paymentMethod, reference, proofName, proof)
}
