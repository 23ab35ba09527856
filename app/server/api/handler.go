// Package api provides JSON handlers for the theme preference.
package api

import (
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/landing/app/enum"
	"github.com/umputun/landing/app/server/internal"
)

// Handler handles /api/v1 requests.
type Handler struct {
	prefs *internal.Prefs
}

// New creates a new API handler.
func New(prefs *internal.Prefs) *Handler {
	return &Handler{prefs: prefs}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
}

// themeState is the API view of the toggle.
type themeState struct {
	Theme string `json:"theme"`
	Light bool   `json:"light"`
	Label string `json:"label"`
}

func (s *themeState) SetLightMode(light bool) {
	s.Light = light
	s.Theme = enum.ThemeDark.String()
	if light {
		s.Theme = enum.ThemeLight.String()
	}
}

func (s *themeState) SetLabel(label string) { s.Label = label }

// handleGet returns the current theme.
// GET /api/v1/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	state := &themeState{}
	h.prefs.Toggle(w, r, state).Apply()
	rest.RenderJSON(w, state)
}

// handleToggle flips the theme and returns the new state.
// POST /api/v1/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	if !h.prefs.ToggleEnabled() {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusForbidden, errors.New("toggle hidden"), "theme toggle is disabled")
		return
	}
	state := &themeState{}
	h.prefs.Toggle(w, r, state).Click()
	log.Printf("[DEBUG] api theme toggle, now %s", state.Theme)
	rest.RenderJSON(w, state)
}
