package api

import (
	"context"
	"net/http"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// ListUpgradeRequests fetches the user's subscription upgrade requests,
// newest first.
func (c *Client) ListUpgradeRequests(ctx context.Context) (Page[models.SubscriptionUpgradeRequest], error) {
	var result Page[models.SubscriptionUpgradeRequest]
	err := c.get(ctx, "/api/auth/subscription/requests/", nil, &result)
	return result, err
}

// SubmitUpgradeRequest sends a payment-proof submission as multipart. The
// proof image is optional; some payment methods only need a reference.
func (c *Client) SubmitUpgradeRequest(ctx context.Context, paymentMethod, reference, proofName string, proof []byte) (models.SubscriptionUpgradeRequest, error) {
	fields := map[string]string{
		"payment_method": paymentMethod,
		"reference":      reference,
	}
	fileField := ""
	if len(proof) > 0 {
		fileField = "payment_proof"
	}

	var result models.SubscriptionUpgradeRequest
	err := c.doMultipart(ctx, http.MethodPost, "/api/auth/subscription/requests/", fields, fileField, proofName, proof, &result)
	return result, err
}
