// Package internal provides shared utilities for server subpackages.
package internal

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/landing/app/enum"
	"github.com/umputun/landing/app/store"
	"github.com/umputun/landing/app/theme"
)

// VisitorCookie holds the visitor id in db storage mode.
const VisitorCookie = "visitor"

const cookieMaxAge = 365 * 24 * 60 * 60 // 1 year

// ThemeConfig defines where the theme flag is kept and how the toggle is presented.
type ThemeConfig struct {
	Mode       enum.StorageMode
	Key        string // storage key, also the cookie name in cookie mode
	Lang       string // label language
	HideToggle bool   // page renders without the toggle control
	CookiePath string
}

// Prefs builds request-scoped theme toggles.
type Prefs struct {
	cfg     ThemeConfig
	labels  theme.Labels
	backend store.KV
}

// NewPrefs makes Prefs. Backend is required in db mode and ignored in cookie mode.
func NewPrefs(backend store.KV, cfg ThemeConfig) (*Prefs, error) {
	if cfg.Mode == enum.StorageModeDB && backend == nil {
		return nil, errors.New("db storage mode requires a preference store")
	}
	if cfg.Key == "" {
		cfg.Key = theme.DefaultKey
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = "/"
	}
	if cfg.Mode != enum.StorageModeDB {
		// the key is the cookie name, browsers never see a cookie with an invalid one
		c := &http.Cookie{Name: cfg.Key, Value: enum.ThemeLight.Flag(), Path: cfg.CookiePath}
		if err := c.Valid(); err != nil {
			return nil, fmt.Errorf("theme key %q can't be used as a cookie name: %w", cfg.Key, err)
		}
	}
	return &Prefs{cfg: cfg, labels: theme.LabelsFor(cfg.Lang), backend: backend}, nil
}

// ToggleEnabled reports whether pages carry the toggle control.
func (p *Prefs) ToggleEnabled() bool { return !p.cfg.HideToggle }

// Labels returns the configured control labels.
func (p *Prefs) Labels() theme.Labels { return p.labels }

// Key returns the storage key of the theme flag.
func (p *Prefs) Key() string { return p.cfg.Key }

// Toggle makes a toggle over the request storage, pushing state into view.
func (p *Prefs) Toggle(w http.ResponseWriter, r *http.Request, view theme.View) *theme.Toggle {
	return theme.New(p.Storage(w, r), view, theme.WithKey(p.cfg.Key), theme.WithLabels(p.labels))
}

// Storage returns the theme storage of the request. In db mode it assigns a visitor id
// cookie to first-time visitors, so it has to be called before the response body is written.
func (p *Prefs) Storage(w http.ResponseWriter, r *http.Request) theme.Storage {
	if p.cfg.Mode != enum.StorageModeDB {
		return NewCookieStorage(w, r, p.cfg.CookiePath)
	}
	return store.NewScoped(r.Context(), p.backend, p.visitorID(w, r))
}

// visitorID returns the id from the visitor cookie, issuing a new one if missing or malformed.
func (p *Prefs) visitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(VisitorCookie); err == nil {
		if id, parseErr := uuid.Parse(c.Value); parseErr == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     p.cfg.CookiePath,
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.Printf("[DEBUG] new visitor %s", id)
	return id
}

// CookieStorage keeps theme flags in browser cookies, one cookie per key.
// Values set during the request are visible to later reads of the same request.
type CookieStorage struct {
	w       http.ResponseWriter
	r       *http.Request
	path    string
	written map[string]string
}

// NewCookieStorage makes a cookie storage for a single request.
func NewCookieStorage(w http.ResponseWriter, r *http.Request, path string) *CookieStorage {
	return &CookieStorage{w: w, r: r, path: path, written: map[string]string{}}
}

// Get returns the cookie value, store.ErrNotFound if the request has no such cookie.
func (c *CookieStorage) Get(key string) (string, error) {
	if v, ok := c.written[key]; ok {
		return v, nil
	}
	cookie, err := c.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cookie %q: %w", key, err)
	}
	return cookie.Value, nil
}

// Set sends the cookie with the response.
func (c *CookieStorage) Set(key, value string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     c.path,
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.written[key] = value
	return nil
}
