package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/findra-app/findra-cli/internal/common"
)

// ValidationError carries the backend's structured 400 payload: a map of
// field name to messages, plus an optional top-level detail. Callers match
// it with errors.Is(err, common.ErrValidation) and render per-field text.
type ValidationError struct {
	Fields map[string][]string
	Detail string
}

// Error follows the fallback chain: first field message (fields in name
// order, so the text is stable), then detail, then generic text.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if msgs := e.Fields[field]; len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", field, msgs[0])
		}
	}
	if e.Detail != "" {
		return e.Detail
	}
	return common.ErrValidation.Error()
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

// FieldMessage returns the first message for a field, or "".
func (e *ValidationError) FieldMessage(field string) string {
	if msgs, ok := e.Fields[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// mapStatusError converts a non-2xx response into a sentinel or a
// ValidationError. The body has already been read into raw.
func mapStatusError(status int, raw []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return fmt.Errorf("%w: forbidden", common.ErrUnauthorized)
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusBadRequest:
		return parseValidationError(raw)
	}
	if status >= 500 {
		return fmt.Errorf("%w: status %d", common.ErrUnavailable, status)
	}
	return fmt.Errorf("unexpected status %d: %s", status, strings.TrimSpace(string(raw)))
}

// parseValidationError decodes DRF's error shape, where each field maps to
// either a list of strings or a single string, and "detail" carries the
// non-field message.
func parseValidationError(raw []byte) error {
	ve := &ValidationError{Fields: map[string][]string{}}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		ve.Detail = strings.TrimSpace(string(raw))
		return ve
	}

	for field, v := range payload {
		switch value := v.(type) {
		case string:
			if field == "detail" {
				ve.Detail = value
				continue
			}
			ve.Fields[field] = []string{value}
		case []any:
			var msgs []string
			for _, m := range value {
				if s, ok := m.(string); ok {
					msgs = append(msgs, s)
				}
			}
			if len(msgs) > 0 {
				ve.Fields[field] = msgs
			}
		}
	}

	return ve
}
