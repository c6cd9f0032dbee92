// Package session persists the client's only durable local state: the
// access/refresh token pair and a post-login redirect hint, kept under fixed
// keys in a small sqlite key/value table.
package session

import "context"

// Fixed storage keys. The names mirror what the web client keeps in local
// storage so a shared machine can be debugged consistently.
const (
	KeyAccessToken  = "findra_access_token"
	KeyRefreshToken = "findra_refresh_token"
	KeyRedirectPath = "findra_redirect_path"
)

// Store is a persistent string key/value store for session state.
//
// Get returns ("", nil) for a missing key; deletion of a missing key is not
// an error. Clear wipes everything, which is the logout path.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Tokens is a convenience pair for the two token keys.
type Tokens struct {
	Access  string
	Refresh string
}

// LoadTokens reads both tokens; missing keys yield empty strings.
func LoadTokens(ctx context.Context, s Store) (Tokens, error) {
	access, err := s.Get(ctx, KeyAccessToken)
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := s.Get(ctx, KeyRefreshToken)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{Access: access, Refresh: refresh}, nil
}

// batchSetter is implemented by stores that can write several keys
// atomically.
type batchSetter interface {
	SetAll(ctx context.Context, kv map[string]string) error
}

// SaveTokens writes both tokens under their fixed keys. When the store can
// write batches atomically the pair is stored in one shot, so a failure
// never strands a fresh access token next to a stale refresh token.
func SaveTokens(ctx context.Context, s Store, t Tokens) error {
	if b, ok := s.(batchSetter); ok {
		return b.SetAll(ctx, map[string]string{
			KeyAccessToken:  t.Access,
			KeyRefreshToken: t.Refresh,
		})
	}
	if err := s.Set(ctx, KeyAccessToken, t.Access); err != nil {
		return err
	}
	return s.Set(ctx, KeyRefreshToken, t.Refresh)
}

// ClearTokens removes both tokens but leaves other keys intact.
func ClearTokens(ctx context.Context, s Store) error {
	if err := s.Delete(ctx, KeyAccessToken); err != nil {
		return err
	}
	return s.Delete(ctx, KeyRefreshToken)
}
