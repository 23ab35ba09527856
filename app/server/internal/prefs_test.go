package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/landing/app/enum"
	"github.com/umputun/landing/app/store"
)

func TestNewPrefs(t *testing.T) {
	t.Run("db mode needs backend", func(t *testing.T) {
		_, err := NewPrefs(nil, ThemeConfig{Mode: enum.StorageModeDB})
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		p, err := NewPrefs(nil, ThemeConfig{Mode: enum.StorageModeCookie, Lang: "es"})
		require.NoError(t, err)
		assert.Equal(t, "theme_light", p.Key())
		assert.Equal(t, "/", p.cfg.CookiePath)
		assert.Equal(t, "Modo claro", p.Labels().SwitchToLight)
		assert.True(t, p.ToggleEnabled())
	})

	t.Run("theme key must be a valid cookie name in cookie mode", func(t *testing.T) {
		tests := []struct {
			key     string
			wantErr bool
		}{
			{key: "theme_light", wantErr: false},
			{key: "site.theme-light", wantErr: false},
			{key: "theme light", wantErr: true},
			{key: "theme;light", wantErr: true},
			{key: "theme=light", wantErr: true},
			{key: "тема", wantErr: true},
		}
		for _, tt := range tests {
			_, err := NewPrefs(nil, ThemeConfig{Mode: enum.StorageModeCookie, Key: tt.key})
			if tt.wantErr {
				require.Error(t, err, tt.key)
				assert.Contains(t, err.Error(), "can't be used as a cookie name")
				continue
			}
			require.NoError(t, err, tt.key)
		}
	})

	t.Run("db mode accepts any key", func(t *testing.T) {
		p, err := NewPrefs(store.NewMemory(), ThemeConfig{Mode: enum.StorageModeDB, Key: "theme light"})
		require.NoError(t, err)
		assert.Equal(t, "theme light", p.Key())
	})
}

func TestCookieStorage(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		st := NewCookieStorage(httptest.NewRecorder(), req, "/")
		_, err := st.Get("theme_light")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("reads request cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme_light", Value: "1"})
		st := NewCookieStorage(httptest.NewRecorder(), req, "/")
		v, err := st.Get("theme_light")
		require.NoError(t, err)
		assert.Equal(t, "1", v)
	})

	t.Run("set writes cookie and shadows request value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme_light", Value: "1"})
		rec := httptest.NewRecorder()
		st := NewCookieStorage(rec, req, "/landing/")

		require.NoError(t, st.Set("theme_light", "0"))
		v, err := st.Get("theme_light")
		require.NoError(t, err)
		assert.Equal(t, "0", v)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "theme_light", cookies[0].Name)
		assert.Equal(t, "0", cookies[0].Value)
		assert.Equal(t, "/landing/", cookies[0].Path)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})
}

func TestPrefs_Toggle(t *testing.T) {
	t.Run("cookie mode", func(t *testing.T) {
		p, err := NewPrefs(nil, ThemeConfig{Mode: enum.StorageModeCookie})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
		rec := httptest.NewRecorder()
		v := &view{}
		p.Toggle(rec, req, v).Click()

		assert.True(t, v.light)
		assert.Equal(t, "Switch to dark", v.label)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "1", cookies[0].Value)
	})

	t.Run("db mode assigns visitor and keeps flags per visitor", func(t *testing.T) {
		mem := store.NewMemory()
		p, err := NewPrefs(mem, ThemeConfig{Mode: enum.StorageModeDB, Key: "k"})
		require.NoError(t, err)

		// first visit, no visitor cookie
		req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
		rec := httptest.NewRecorder()
		p.Toggle(rec, req, &view{}).Click()

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, VisitorCookie, cookies[0].Name)
		visitor := cookies[0].Value
		_, err = uuid.Parse(visitor)
		require.NoError(t, err)

		val, err := mem.Get(context.Background(), visitor+"/k")
		require.NoError(t, err)
		assert.Equal(t, "1", val)

		// returning visitor sees the stored flag, no new cookie
		req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: visitor})
		rec = httptest.NewRecorder()
		v := &view{}
		p.Toggle(rec, req, v).Apply()
		assert.True(t, v.light)
		assert.Empty(t, rec.Result().Cookies())

		// another visitor is not affected
		req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: uuid.NewString()})
		v = &view{}
		p.Toggle(httptest.NewRecorder(), req, v).Apply()
		assert.False(t, v.light)
	})

	t.Run("malformed visitor id is replaced", func(t *testing.T) {
		p, err := NewPrefs(store.NewMemory(), ThemeConfig{Mode: enum.StorageModeDB})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "../../etc"})
		rec := httptest.NewRecorder()
		p.Storage(rec, req)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.NotEqual(t, "../../etc", cookies[0].Value)
	})
}

type view struct {
	light bool
	label string
}

func (v *view) SetLightMode(light bool) { v.light = light }
func (v *view) SetLabel(label string)   { v.label = label }
