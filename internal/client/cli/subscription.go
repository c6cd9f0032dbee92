package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/client/services"
)

// Subscription shows the current plan and past upgrade requests.
func (a *App) Subscription(ctx context.Context) error {
	user, err := a.auth.Me(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	a.user = &user

	printlnFn("Plan:", string(user.SubscriptionLevel))

	requests, err := a.subscription.Requests(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	for _, r := range requests {
		line := r.CreatedAt.Format("2006-01-02") + "  " + string(r.Status) + "  " + r.Reference
		if r.ReviewNote != "" {
			line += "  (" + r.ReviewNote + ")"
		}
		printlnFn(line)
	}
	return nil
}

// Upgrade submits a manually reviewed upgrade request with a payment
// reference and an optional proof file.
func (a *App) Upgrade(ctx context.Context) error {
	if a.user != nil && a.user.SubscriptionLevel == models.SubscriptionPro {
		printlnFn("You are already on the Pro plan.")
		return nil
	}

	method, err := getSimpleText(a.reader, "Payment method (e.g. telebirr, cbe)", os.Stdout)
	if err != nil {
		return err
	}
	reference, err := getSimpleText(a.reader, "Payment reference", os.Stdout)
	if err != nil {
		return err
	}
	proofPath, err := getSimpleText(a.reader, "Path to payment proof image (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	var (
		proof     []byte
		proofName string
	)
	if proofPath != "" {
		proof, err = os.ReadFile(proofPath)
		if err != nil {
			printlnFn(color.RedString("Cannot read %s: %s", proofPath, err))
			return err
		}
		proofName = filepath.Base(proofPath)
	}

	req, err := a.subscription.RequestUpgrade(ctx, method, reference, proofName, proof)
	if err != nil {
		if errors.Is(err, services.ErrUpgradePending) {
			printlnFn(color.YellowString("You already have a request pending review."))
			return nil
		}
		a.reportError(ctx, err)
		return err
	}
	printlnFn(color.GreenString("Request %d submitted; an admin will review it.", req.ID))
	return nil
}
