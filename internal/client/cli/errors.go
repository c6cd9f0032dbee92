package cli

import (
	"context"
	"errors"
	"sort"

	"github.com/fatih/color"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/common"
)

// reportError prints a user-facing message for err and logs the detail.
// A session expiry additionally drops the in-memory session so the prompt
// falls back to the logged-out command set.
func (a *App) reportError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	a.log.Debug(ctx, "command failed", "error", err)

	var verr *api.ValidationError
	switch {
	case errors.Is(err, common.ErrSessionExpired):
		a.forgetSession()
		printlnFn(color.YellowString("Session expired. Please login again."))
	case errors.As(err, &verr):
		printValidation(verr)
	case errors.Is(err, common.ErrUnavailable):
		printlnFn(color.RedString("Cannot reach the Findra server. Try again in a moment."))
	case errors.Is(err, common.ErrUnauthorized):
		printlnFn(color.RedString("Not allowed: %s", err.Error()))
	case errors.Is(err, common.ErrNotFound):
		printlnFn(color.RedString("Not found."))
	default:
		printlnFn(color.RedString("Error: %s", err.Error()))
	}
}

func printValidation(verr *api.ValidationError) {
	if len(verr.Fields) == 0 {
		printlnFn(color.RedString("Rejected: %s", verr.Error()))
		return
	}
	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		for _, msg := range verr.Fields[field] {
			printlnFn(color.RedString("%s: %s", field, msg))
		}
	}
}
