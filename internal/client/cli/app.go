// Package cli implements the interactive Findra terminal client: a REPL
// over the application services, with prompt helpers for text and password
// input and colorized rendering of backend records.
package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/config"
	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/client/services"
	"github.com/findra-app/findra-cli/internal/client/session"
	"github.com/findra-app/findra-cli/internal/logging"
)

// App wires the services behind the REPL and carries per-session state:
// the signed-in identity and the input reader.
type App struct {
	config *config.Config
	log    logging.Logger

	auth          services.AuthService
	feed          *services.FeedService
	matches       *services.MatchService
	prefs         *services.PrefsService
	profile       *services.ProfileService
	jobs          *services.JobsService
	notifications *services.NotificationService
	subscription  *services.SubscriptionService

	user   *models.User
	editor *services.PrefsEditor
	reader *bufio.Reader
}

// NewApp opens the local session database and builds the API client and the
// service layer on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "opening session database", "error", err, "path", c.SessionDBPath)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	client := api.New(c.BaseURL, store, log,
		api.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}))

	return &App{
		config:        c,
		log:           log,
		auth:          services.NewAuthService(client, store),
		feed:          services.NewFeedService(client),
		matches:       services.NewMatchService(client),
		prefs:         services.NewPrefsService(client),
		profile:       services.NewProfileService(client),
		jobs:          services.NewJobsService(client, c.PollInterval),
		notifications: services.NewNotificationService(client),
		subscription:  services.NewSubscriptionService(client),
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

// Run resumes a persisted session if one is present, then hands control to
// the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	if a.auth.Authenticated(ctx) {
		user, err := a.auth.Me(ctx)
		if err == nil {
			a.user = &user
			a.showUnreadBadge(ctx)
		} else {
			a.reportError(ctx, err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// status is the prompt fragment: the signed-in email, or empty.
func (a *App) status() string {
	if a.user == nil {
		return ""
	}
	return "(" + a.user.Email + ")"
}

// forgetSession drops per-session state after logout or session expiry.
func (a *App) forgetSession() {
	a.user = nil
	a.editor = nil
}
