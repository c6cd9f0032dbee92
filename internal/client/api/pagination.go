package api

import (
	"net/url"
	"strconv"
)

// Page is the DRF pagination envelope. Next/Previous are full URLs or null.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NextPage extracts the "page" query parameter from the Next URL.
// It returns false when there is no further page, when the URL does not
// parse, or when the parameter is absent or non-numeric. An opaque cursor
// therefore ends pagination silently rather than erroring.
func (p *Page[T]) NextPage() (int, bool) {
	if p.Next == nil || *p.Next == "" {
		return 0, false
	}
	u, err := url.Parse(*p.Next)
	if err != nil {
		return 0, false
	}
	raw := u.Query().Get("page")
	if raw == "" {
		return 0, false
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}
