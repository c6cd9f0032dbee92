// Package api is the HTTP/JSON client for the Findra backend: one
// configured transport with bearer-token attachment and a single transparent
// refresh-and-retry on 401, plus one typed module per backend resource.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/findra-app/findra-cli/internal/client/session"
	"github.com/findra-app/findra-cli/internal/common"
	"github.com/findra-app/findra-cli/internal/logging"
)

// expiryLeeway is how close to the access token's exp claim we refresh
// proactively instead of waiting for a 401.
const expiryLeeway = 30 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     logging.Logger

	// refreshMu serializes token refresh so simultaneous 401s coalesce on
	// one refresh call instead of racing each other.
	refreshMu sync.Mutex

	now func() time.Time
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, store session.Store, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   store,
		log:     log,
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Store exposes the underlying session store (the auth module clears it on
// logout).
func (c *Client) Store() session.Store {
	return c.store
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// accessToken returns a usable access token, refreshing proactively when
// the exp claim is within expiryLeeway. An empty string means no session.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	tokens, err := session.LoadTokens(ctx, c.store)
	if err != nil {
		return "", err
	}
	if tokens.Access == "" {
		return "", nil
	}
	if exp, ok := tokenExpiry(tokens.Access); ok && c.now().Add(expiryLeeway).After(exp) && tokens.Refresh != "" {
		return c.refreshAfter(ctx, tokens.Access)
	}
	return tokens.Access, nil
}

// tokenExpiry decodes the exp claim without verifying the signature. The
// client never trusts the token contents for anything but scheduling.
func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// refreshAfter exchanges the refresh token for a new access token. The
// failedAccess argument lets callers that just saw a 401 detect that another
// request already refreshed: if the stored token differs, it is reused
// without a second refresh call. Any refresh failure clears both tokens and
// returns common.ErrSessionExpired.
func (c *Client) refreshAfter(ctx context.Context, failedAccess string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	tokens, err := session.LoadTokens(ctx, c.store)
	if err != nil {
		return "", err
	}
	if tokens.Access != "" && tokens.Access != failedAccess {
		return tokens.Access, nil
	}
	if tokens.Refresh == "" {
		_ = session.ClearTokens(ctx, c.store)
		return "", common.ErrSessionExpired
	}

	refreshed, err := c.Refresh(ctx, tokens.Refresh)
	if err != nil {
		_ = session.ClearTokens(ctx, c.store)
		c.log.Warn(ctx, "token refresh failed, session cleared", "error", err)
		return "", common.ErrSessionExpired
	}

	newTokens := session.Tokens{Access: refreshed.Access, Refresh: refreshed.Refresh}
	if newTokens.Refresh == "" {
		newTokens.Refresh = tokens.Refresh
	}
	if err := session.SaveTokens(ctx, c.store, newTokens); err != nil {
		return "", err
	}
	return newTokens.Access, nil
}

// doJSON performs one JSON round trip. When withAuth is set, the bearer
// token is attached and a 401 triggers exactly one refresh-and-retry; auth
// endpoints themselves call with withAuth=false and never retry.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any, withAuth bool) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		var access string
		if withAuth {
			var err error
			access, err = c.accessToken(ctx)
			if err != nil {
				return err
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), bytes.NewReader(body))
		if err != nil {
			return err
		}
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		c.setCommonHeaders(req, access)

		status, raw, err := c.roundTrip(ctx, req)
		if err != nil {
			return err
		}

		if status == http.StatusUnauthorized && withAuth && attempt == 0 {
			if _, err := c.refreshAfter(ctx, access); err != nil {
				return err
			}
			continue
		}

		return decodeResponse(status, raw, out)
	}
}

// doMultipart posts or patches a multipart form with an optional file part.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file []byte, out any) error {
	for attempt := 0; ; attempt++ {
		access, err := c.accessToken(ctx)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for k, v := range fields {
			if err := w.WriteField(k, v); err != nil {
				return err
			}
		}
		if fileField != "" {
			part, err := w.CreateFormFile(fileField, fileName)
			if err != nil {
				return err
			}
			if _, err := part.Write(file); err != nil {
				return err
			}
		}
		if err := w.Close(); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, method, c.url(path, nil), &buf)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", w.FormDataContentType())
		c.setCommonHeaders(req, access)

		status, raw, err := c.roundTrip(ctx, req)
		if err != nil {
			return err
		}

		if status == http.StatusUnauthorized && attempt == 0 {
			if _, err := c.refreshAfter(ctx, access); err != nil {
				return err
			}
			continue
		}

		return decodeResponse(status, raw, out)
	}
}

func (c *Client) setCommonHeaders(req *http.Request, access string) {
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
}

func (c *Client) roundTrip(ctx context.Context, req *http.Request) (int, []byte, error) {
	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed",
			"method", req.Method, "path", req.URL.Path, "error", err)
		return 0, nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read body: %v", common.ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", c.now().Sub(start),
		"request_id", req.Header.Get("X-Request-ID"))

	return resp.StatusCode, raw, nil
}

func decodeResponse(status int, raw []byte, out any) error {
	if status < 200 || status > 299 {
		return mapStatusError(status, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Convenience wrappers used by the typed modules.

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, in, out, true)
}

func (c *Client) patch(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, nil, in, out, true)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil, true)
}
