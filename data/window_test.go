package data

import (
	"net/url"
	"testing"

	"github.com/emzola/sdmagic/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowLinks(t *testing.T) {
	tests := []struct {
		name     string
		window   Window
		count    int
		next     string
		previous string
	}{
		{name: "first of many", window: Window{Skip: 0, Limit: 50}, count: 120, next: "/api/prompts?limit=50&skip=50"},
		{name: "middle", window: Window{Skip: 50, Limit: 50}, count: 120, next: "/api/prompts?limit=50&skip=100", previous: "/api/prompts?limit=50&skip=0"},
		{name: "last", window: Window{Skip: 100, Limit: 50}, count: 120, previous: "/api/prompts?limit=50&skip=50"},
		{name: "previous clamps at zero", window: Window{Skip: 10, Limit: 50}, count: 30, previous: "/api/prompts?limit=50&skip=0"},
		{name: "single page", window: Window{Skip: 0, Limit: 50}, count: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, previous := tt.window.Links("/api/prompts", tt.count, nil)
			if tt.next == "" {
				assert.Nil(t, next)
			} else {
				require.NotNil(t, next)
				assert.Equal(t, tt.next, *next)
			}
			if tt.previous == "" {
				assert.Nil(t, previous)
			} else {
				require.NotNil(t, previous)
				assert.Equal(t, tt.previous, *previous)
			}
		})
	}
}

func TestWindowLinksCarryFilters(t *testing.T) {
	extra := url.Values{"category_id": {"3"}, "search": {"cat ears"}, "empty": {""}}
	next, _ := Window{Skip: 0, Limit: 10}.Links("/api/prompts", 11, extra)
	require.NotNil(t, next)
	assert.Equal(t, "/api/prompts?category_id=3&limit=10&search=cat+ears&skip=10", *next)
}

func TestValidateWindow(t *testing.T) {
	v := validator.New()
	ValidateWindow(v, Window{Skip: -1, Limit: 101})
	assert.Contains(t, v.Errors, "skip")
	assert.Contains(t, v.Errors, "limit")

	v = validator.New()
	ValidateWindow(v, Window{Skip: 0, Limit: DefaultWindowLimit})
	assert.True(t, v.Valid())
}
