package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

// Assets returns the embedded css and js, rooted at the assets directory.
func Assets() (fs.FS, error) {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to get assets sub-filesystem: %w", err)
	}
	return sub, nil
}

// PageData is everything the page template needs. It is also the theme view of a rendered page:
// the toggle writes the light mode and the control label into it before rendering.
type PageData struct {
	Page       *Page
	Lang       string
	LightMode  bool   // body gets the "light" class
	Label      string // toggle control text
	ShowToggle bool
	Static     bool   // static build, the toggle runs client-side from assets/app.js
	ToggleURL  string // form action of the server-side toggle
	AssetsURL  string // prefix of css and js
	BaseURL    string // prefix of images
	ThemeKey   string // storage key used by the client-side toggle
	LabelDark  string // client-side label when light mode is active
	LabelLight string // client-side label when dark mode is active
}

// SetLightMode sets the body class state.
func (d *PageData) SetLightMode(light bool) { d.LightMode = light }

// SetLabel sets the toggle control text.
func (d *PageData) SetLabel(label string) { d.Label = label }

// Renderer renders landing pages.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"imageURL": imageURL,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page.
func (r *Renderer) Render(w io.Writer, data *PageData) error {
	if data.Page == nil {
		return errors.New("no page content")
	}
	if err := r.tmpl.ExecuteTemplate(w, "page.html", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// imageURL prefixes relative image paths with base, absolute and remote ones are kept.
func imageURL(base, src string) string {
	if src == "" || base == "" {
		return src
	}
	if src[0] == '/' || hasScheme(src) {
		return src
	}
	return base + "/" + src
}

func hasScheme(s string) bool {
	for i := range len(s) {
		switch c := s[i]; {
		case c == ':':
			return i > 0
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '+', c == '-', c == '.':
		default:
			return false
		}
	}
	return false
}
