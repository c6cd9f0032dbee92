package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// Matches lists the personalized matches, optionally filtered by status
// (active, notified, ignored, expired).
func (a *App) Matches(ctx context.Context, status string) error {
	parsed, err := parseMatchStatus(status)
	if err != nil {
		printlnFn("Usage: matches [active|notified|ignored|expired]")
		return err
	}
	a.matches.SetStatus(parsed)

	if len(a.matches.Matches()) == 0 || a.matches.HasMore() {
		if _, err := a.matches.LoadMore(ctx); err != nil {
			a.reportError(ctx, err)
			return err
		}
	}

	items := a.matches.Matches()
	if len(items) == 0 {
		printlnFn("No matches yet. Set your preferences with 'prefs' to get matched.")
		return nil
	}
	for _, m := range items {
		printlnFn(matchRow(m))
	}
	printlnFn(color.New(color.FgHiBlack).Sprintf("%d of %d loaded", len(items), a.matches.Total()))
	return nil
}

// ShowMatch prints one match with its justification and posting.
func (a *App) ShowMatch(ctx context.Context, arg string) error {
	id, err := parseID(arg, "match <id>")
	if err != nil {
		return err
	}
	m, err := a.matches.Get(ctx, id)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn(matchDetail(m))
	return nil
}

func parseMatchStatus(s string) (models.MatchStatus, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "active":
		return models.MatchActive, nil
	case "notified":
		return models.MatchNotified, nil
	case "ignored":
		return models.MatchIgnored, nil
	case "expired":
		return models.MatchExpired, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}
