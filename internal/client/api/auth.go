package api

import (
	"context"
	"net/http"

	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/client/session"
)

// TokenPair is the response of the token obtain/refresh endpoints.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login exchanges credentials for a token pair and persists it.
func (c *Client) Login(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair
	in := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/token/", nil, in, &pair, false); err != nil {
		return TokenPair{}, err
	}
	err := session.SaveTokens(ctx, c.store, session.Tokens{Access: pair.Access, Refresh: pair.Refresh})
	return pair, err
}

// Refresh exchanges a refresh token for a new pair. Persistence is handled
// by the caller (refreshAfter), which also owns failure cleanup.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	var pair TokenPair
	in := map[string]string{"refresh": refreshToken}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/token/refresh/", nil, in, &pair, false)
	return pair, err
}

// Register creates an account. The backend requires the password twice.
func (c *Client) Register(ctx context.Context, email, password string) (models.User, error) {
	var user models.User
	in := map[string]string{"email": email, "password": password, "password2": password}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register/", nil, in, &user, false)
	return user, err
}

// Me fetches the current authenticated user.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.get(ctx, "/api/auth/me/", nil, &user)
	return user, err
}

// Logout invalidates the refresh token server-side, then clears the local
// session regardless of the call's outcome.
func (c *Client) Logout(ctx context.Context) error {
	tokens, err := session.LoadTokens(ctx, c.store)
	if err != nil {
		return err
	}
	if tokens.Refresh != "" {
		in := map[string]string{"refresh": tokens.Refresh}
		if err := c.post(ctx, "/api/auth/logout/", in, nil); err != nil {
			c.log.Warn(ctx, "server-side logout failed", "error", err)
		}
	}
	return session.ClearTokens(ctx, c.store)
}

// LogoutAll revokes every refresh token issued to the account.
func (c *Client) LogoutAll(ctx context.Context) error {
	if err := c.post(ctx, "/api/auth/logout/all/", nil, nil); err != nil {
		return err
	}
	return session.ClearTokens(ctx, c.store)
}

// PasswordChange updates the password of the authenticated user.
func (c *Client) PasswordChange(ctx context.Context, oldPassword, newPassword string) error {
	in := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return c.post(ctx, "/api/auth/password/change/", in, nil)
}

// PasswordResetRequest asks for a reset email. The backend answers 200
// whether or not the account exists, and so does this method.
func (c *Client) PasswordResetRequest(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/password/reset/", nil, in, nil, false)
}

// PasswordResetConfirm completes a reset with the emailed token.
func (c *Client) PasswordResetConfirm(ctx context.Context, token, newPassword string) error {
	in := map[string]string{"token": token, "new_password": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/password/reset/confirm/", nil, in, nil, false)
}

// DeleteAccount removes the account and clears the local session.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.post(ctx, "/api/auth/account/delete/", nil, nil); err != nil {
		return err
	}
	return session.ClearTokens(ctx, c.store)
}
