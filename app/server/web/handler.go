// Package web provides HTTP handlers for the landing page.
package web

import (
	"bytes"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/landing/app/server/internal"
	"github.com/umputun/landing/app/site"
	"github.com/umputun/landing/app/theme"
)

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Lang    string
}

// Handler renders the landing page and handles the theme toggle.
type Handler struct {
	page     *site.Page
	renderer *site.Renderer
	prefs    *internal.Prefs
	baseURL  string
	lang     string
}

// New creates a new web handler.
func New(page *site.Page, prefs *internal.Prefs, cfg Config) (*Handler, error) {
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to make renderer: %w", err)
	}
	return &Handler{page: page, renderer: renderer, prefs: prefs, baseURL: cfg.BaseURL, lang: cfg.Lang}, nil
}

// Register registers web routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// handleIndex renders the page in the visitor's theme.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := h.pageData()
	h.initialize(h.prefs.Toggle(w, r, data))

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, data); err != nil {
		log.Printf("[ERROR] failed to render page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// handleThemeToggle flips the theme flag if the page carries the toggle control
// and redirects the form post back to the page.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if ctrl := h.initialize(h.prefs.Toggle(w, r, h.pageData())); ctrl != nil {
		ctrl.click()
	} else {
		log.Printf("[DEBUG] theme toggle is hidden, click ignored")
	}

	http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
}

// initialize applies the stored theme and attaches the toggle to the page control.
// Returns nil if the page has no toggle control.
func (h *Handler) initialize(t *theme.Toggle) *pageControl {
	if !h.prefs.ToggleEnabled() {
		t.Initialize(nil)
		return nil
	}
	ctrl := &pageControl{}
	t.Initialize(ctrl)
	return ctrl
}

func (h *Handler) pageData() *site.PageData {
	return &site.PageData{
		Page:       h.page,
		Lang:       h.lang,
		ShowToggle: h.prefs.ToggleEnabled(),
		ToggleURL:  h.url("/web/theme"),
		AssetsURL:  h.url("/static"),
		BaseURL:    h.baseURL,
	}
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// pageControl is the toggle button of a rendered page, a form post is its click.
type pageControl struct {
	handlers []func()
}

// OnClick attaches a click handler.
func (c *pageControl) OnClick(fn func()) {
	c.handlers = append(c.handlers, fn)
}

func (c *pageControl) click() {
	for _, fn := range c.handlers {
		fn()
	}
}
