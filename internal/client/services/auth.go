package services

import (
	"context"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/client/session"
)

// AuthAPI is the slice of the API client the auth service uses.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (api.TokenPair, error)
	Register(ctx context.Context, email, password string) (models.User, error)
	Me(ctx context.Context) (models.User, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error
	PasswordChange(ctx context.Context, oldPassword, newPassword string) error
	PasswordResetRequest(ctx context.Context, email string) error
	PasswordResetConfirm(ctx context.Context, token, newPassword string) error
	DeleteAccount(ctx context.Context) error
}

// AuthService owns the account lifecycle for the CLI session. Token
// persistence and refresh live in the API client; this layer adds the
// identity fetch after login and local cleanup after destructive calls.
//
// Passwords arrive as byte slices so the caller can wipe the buffer after
// the call returns.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Register(ctx context.Context, email string, password []byte) (models.User, error)
	Me(ctx context.Context) (models.User, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error
	ChangePassword(ctx context.Context, oldPassword, newPassword []byte) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token string, newPassword []byte) error
	DeleteAccount(ctx context.Context) error
	Authenticated(ctx context.Context) bool
}

type authService struct {
	api   AuthAPI
	store session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(api AuthAPI, store session.Store) AuthService {
	return &authService{api: api, store: store}
}

// Login signs in and returns the authenticated identity. The API client has
// already persisted the token pair by the time Me is called.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	if _, err := a.api.Login(ctx, email, string(password)); err != nil {
		return models.User{}, err
	}
	return a.api.Me(ctx)
}

// Register creates the account but does not sign in; a fresh registration
// still goes through the normal login step.
func (a *authService) Register(ctx context.Context, email string, password []byte) (models.User, error) {
	return a.api.Register(ctx, email, string(password))
}

func (a *authService) Me(ctx context.Context) (models.User, error) {
	return a.api.Me(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.api.Logout(ctx)
}

func (a *authService) LogoutAll(ctx context.Context) error {
	return a.api.LogoutAll(ctx)
}

func (a *authService) ChangePassword(ctx context.Context, oldPassword, newPassword []byte) error {
	return a.api.PasswordChange(ctx, string(oldPassword), string(newPassword))
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return a.api.PasswordResetRequest(ctx, email)
}

func (a *authService) ConfirmPasswordReset(ctx context.Context, token string, newPassword []byte) error {
	return a.api.PasswordResetConfirm(ctx, token, string(newPassword))
}

// DeleteAccount removes the account server-side, then wipes the local
// session so the next command starts logged out.
func (a *authService) DeleteAccount(ctx context.Context) error {
	if err := a.api.DeleteAccount(ctx); err != nil {
		return err
	}
	return a.store.Clear(ctx)
}

// Authenticated reports whether a token pair is present locally. It does
// not verify the tokens against the server; an expired pair surfaces as
// ErrSessionExpired on the first authenticated call instead.
func (a *authService) Authenticated(ctx context.Context) bool {
	tokens, err := session.LoadTokens(ctx, a.store)
	if err != nil {
		return false
	}
	return tokens.Access != "" || tokens.Refresh != ""
}
