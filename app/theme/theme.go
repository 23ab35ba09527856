// Package theme implements the light/dark toggle. The persisted flag lives behind a Storage port
// and the visual state is pushed to a View port, so the same toggle drives a server-rendered page,
// a static build and the command line.
package theme

import (
	"errors"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/landing/app/enum"
	"github.com/umputun/landing/app/store"
)

//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage
//go:generate moq -out mocks/view.go -pkg mocks -skip-ensure -fmt goimports . View

// DefaultKey is the storage key of the theme flag.
const DefaultKey = "theme_light"

// Storage keeps the theme flag. Get returns store.ErrNotFound for a missing key.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// View receives the derived visual state.
type View interface {
	SetLightMode(light bool)
	SetLabel(label string)
}

// Control is the toggle control. OnClick attaches the handler fired on every click.
type Control interface {
	OnClick(fn func())
}

// Labels are the texts of the toggle control, each one names the action, not the current state.
type Labels struct {
	SwitchToDark  string
	SwitchToLight string
}

var labelSets = map[string]Labels{
	"en": {SwitchToDark: "Switch to dark", SwitchToLight: "Switch to light"},
	"es": {SwitchToDark: "Modo oscuro", SwitchToLight: "Modo claro"},
}

// LabelsFor returns labels for the language code, e.g. "es" or "es-AR". Unknown languages get English.
func LabelsFor(lang string) Labels {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if l, ok := labelSets[lang]; ok {
		return l
	}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		if l, ok := labelSets[base]; ok {
			return l
		}
	}
	return labelSets["en"]
}

// For returns the label shown when the page is in the given theme.
func (l Labels) For(t enum.Theme) string {
	if t.IsLight() {
		return l.SwitchToDark
	}
	return l.SwitchToLight
}

// Toggle synchronizes a View with the persisted flag and flips the flag on click.
// The visual state is never cached, every Apply derives it from storage again.
type Toggle struct {
	storage Storage
	view    View
	key     string
	labels  Labels
}

// Option func type
type Option func(t *Toggle)

// WithKey sets the storage key, empty key is ignored.
func WithKey(key string) Option {
	return func(t *Toggle) {
		if key != "" {
			t.key = key
		}
	}
}

// WithLabels sets the control labels.
func WithLabels(l Labels) Option {
	return func(t *Toggle) { t.labels = l }
}

// New makes a Toggle over storage and view, with DefaultKey and English labels unless overridden.
func New(storage Storage, view View, opts ...Option) *Toggle {
	res := &Toggle{storage: storage, view: view, key: DefaultKey, labels: LabelsFor("en")}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// State returns the theme derived from the stored flag. Missing flag or unreadable storage is dark.
func (t *Toggle) State() enum.Theme {
	flag, err := t.storage.Get(t.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("[WARN] can't read theme flag %q, fallback to dark: %v", t.key, err)
		}
		return enum.ThemeDark
	}
	return enum.ThemeFromFlag(flag)
}

// Label returns the control label for the current state.
func (t *Toggle) Label() string {
	return t.labels.For(t.State())
}

// Apply pushes the state derived from storage to the view.
func (t *Toggle) Apply() {
	state := t.State()
	t.view.SetLightMode(state.IsLight())
	t.view.SetLabel(t.labels.For(state))
}

// Click inverts the stored flag and re-applies. A failed write is logged and the view
// still reflects whatever storage holds.
func (t *Toggle) Click() {
	next := t.State().Toggle()
	if err := t.storage.Set(t.key, next.Flag()); err != nil {
		log.Printf("[WARN] can't store theme flag %q: %v", t.key, err)
	}
	log.Printf("[DEBUG] theme toggled to %s", next)
	t.Apply()
}

// Initialize applies the stored state once and attaches Click to the control.
// A nil control means the page has no toggle, nothing is attached.
func (t *Toggle) Initialize(c Control) {
	t.Apply()
	if c == nil {
		return
	}
	c.OnClick(t.Click)
}
