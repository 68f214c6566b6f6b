package data

import (
	"net/url"
	"strconv"

	"github.com/emzola/sdmagic/internal/validator"
)

const (
	DefaultWindowLimit = 50
	MaxWindowLimit     = 100
)

// Window holds offset-based pagination parameters for prompt listings.
type Window struct {
	Skip  int
	Limit int
}

func ValidateWindow(v *validator.Validator, w Window) {
	v.Check(w.Skip >= 0, "skip", "must not be negative")
	v.Check(w.Limit > 0, "limit", "must be greater than zero")
	v.Check(w.Limit <= MaxWindowLimit, "limit", "must be a maximum of 100")
}

// Page is one window of prompts together with links to its neighbours.
type Page struct {
	Results  []*Prompt `json:"results"`
	Count    int       `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
}

// Links builds the next and previous URLs for a window over count records.
// Extra query values are carried over to both links.
func (w Window) Links(path string, count int, extra url.Values) (next, previous *string) {
	build := func(skip int) *string {
		qs := url.Values{}
		for k, vs := range extra {
			for _, v := range vs {
				if v != "" {
					qs.Add(k, v)
				}
			}
		}
		qs.Set("skip", strconv.Itoa(skip))
		qs.Set("limit", strconv.Itoa(w.Limit))
		link := path + "?" + qs.Encode()
		return &link
	}
	if w.Skip+w.Limit < count {
		next = build(w.Skip + w.Limit)
	}
	if w.Skip > 0 {
		previous = build(max(0, w.Skip-w.Limit))
	}
	return next, previous
}
