package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/landing/app/enum"
	"github.com/umputun/landing/app/server/internal"
)

func TestHandler_Get(t *testing.T) {
	router := newTestRouter(t, internal.ThemeConfig{Mode: enum.StorageModeCookie, Lang: "es"})

	tests := []struct {
		name   string
		cookie string
		want   themeState
	}{
		{"default", "", themeState{Theme: "dark", Light: false, Label: "Modo claro"}},
		{"light", "1", themeState{Theme: "light", Light: true, Label: "Modo oscuro"}},
		{"dark", "0", themeState{Theme: "dark", Light: false, Label: "Modo claro"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/theme", http.NoBody)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "theme_light", Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var got themeState
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHandler_Toggle(t *testing.T) {
	router := newTestRouter(t, internal.ThemeConfig{Mode: enum.StorageModeCookie})

	req := httptest.NewRequest(http.MethodPost, "/theme/toggle", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "theme_light", Value: "1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got themeState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, themeState{Theme: "dark", Light: false, Label: "Switch to light"}, got)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "0", cookies[0].Value)
}

func TestHandler_ToggleDisabled(t *testing.T) {
	router := newTestRouter(t, internal.ThemeConfig{Mode: enum.StorageModeCookie, HideToggle: true})

	req := httptest.NewRequest(http.MethodPost, "/theme/toggle", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "theme toggle is disabled")
	assert.Empty(t, rec.Result().Cookies())
}

func newTestRouter(t *testing.T, cfg internal.ThemeConfig) *routegroup.Bundle {
	t.Helper()
	prefs, err := internal.NewPrefs(nil, cfg)
	require.NoError(t, err)
	router := routegroup.New(http.NewServeMux())
	New(prefs).Register(router)
	return router
}
