package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/client/services"
	"github.com/findra-app/findra-cli/internal/common"
	"github.com/findra-app/findra-cli/internal/logging"
)

func stubInputs(t *testing.T, text string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	services.AuthService

	loginEmail string
	loginPass  string
	loginErr   error
	user       models.User

	loggedOut bool
}

func (f *fakeAuth) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	f.loginEmail, f.loginPass = email, string(password)
	return f.user, f.loginErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	return nil
}

type silentNotifAPI struct{}

func (silentNotifAPI) ListNotifications(ctx context.Context, page int) (api.Page[models.Notification], error) {
	return api.Page[models.Notification]{}, nil
}
func (silentNotifAPI) MarkNotificationViewed(ctx context.Context, id int64) error { return nil }
func (silentNotifAPI) MarkAllNotificationsViewed(ctx context.Context) error       { return nil }
func (silentNotifAPI) UnreadNotificationCount(ctx context.Context) (int64, error) { return 0, nil }

func testApp(auth services.AuthService) *App {
	return &App{
		log:           logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		auth:          auth,
		notifications: services.NewNotificationService(silentNotifAPI{}),
	}
}

func TestLogin_SetsUser(t *testing.T) {
	muteOutput(t)
	stubInputs(t, "user@example.com", []byte("secret"))

	fake := &fakeAuth{user: models.User{ID: 7, Email: "user@example.com"}}
	a := testApp(fake)

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
	require.Equal(t, "user@example.com", fake.loginEmail)
	require.Equal(t, "secret", fake.loginPass)
	require.Equal(t, "(user@example.com)", a.status())
}

func TestLogin_FailureLeavesLoggedOut(t *testing.T) {
	muteOutput(t)
	stubInputs(t, "user@example.com", []byte("wrong"))

	fake := &fakeAuth{loginErr: common.ErrUnauthorized}
	a := testApp(fake)

	require.Error(t, a.Login(context.Background()))
	require.False(t, a.isLoggedIn())
}

func TestLogout_ForgetsSession(t *testing.T) {
	muteOutput(t)

	fake := &fakeAuth{user: models.User{ID: 7, Email: "user@example.com"}}
	a := testApp(fake)
	a.user = &fake.user

	require.NoError(t, a.Logout(context.Background()))
	require.True(t, fake.loggedOut)
	require.False(t, a.isLoggedIn())
	require.Equal(t, "", a.status())
}

func TestReportError_SessionExpiryDropsSession(t *testing.T) {
	lines := muteOutput(t)

	a := testApp(&fakeAuth{})
	user := models.User{ID: 1, Email: "user@example.com"}
	a.user = &user

	a.reportError(context.Background(), common.ErrSessionExpired)
	require.False(t, a.isLoggedIn())
	require.NotEmpty(t, *lines)
}
