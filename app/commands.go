package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/landing/app/enum"
	"github.com/umputun/landing/app/server"
	"github.com/umputun/landing/app/site"
	"github.com/umputun/landing/app/store"
	"github.com/umputun/landing/app/theme"
)

// ThemeOptions are theme settings shared by all commands
type ThemeOptions struct {
	Key  string `long:"key" env:"KEY" default:"theme_light" description:"storage key of the theme flag"`
	Lang string `long:"lang" env:"LANG" default:"en" description:"language of the toggle labels (en, es)"`
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	DB      string `short:"d" long:"db" env:"LANDING_DB" default:"landing.db" description:"preferences database URL (sqlite file or postgres://...), used in db storage mode"`
	Content string `short:"c" long:"content" env:"LANDING_CONTENT" default:"product.xml" description:"landing page content file"`
	Images  string `long:"images" env:"LANDING_IMAGES" default:"generated_images" description:"generated images directory"`

	Server struct {
		Address     string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		BaseURL     string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /landing)"`
	} `group:"server" namespace:"server" env-namespace:"LANDING_SERVER"`

	Theme struct {
		ThemeOptions
		Storage    string        `long:"storage" env:"STORAGE" choice:"cookie" choice:"db" default:"cookie" description:"where the theme flag is kept"`
		HideToggle bool          `long:"hide-toggle" env:"HIDE_TOGGLE" description:"render pages without the toggle control"`
		CacheSize  int           `long:"cache-size" env:"CACHE_SIZE" default:"10000" description:"max cached preferences in db storage mode"`
		CacheTTL   time.Duration `long:"cache-ttl" env:"CACHE_TTL" default:"30s" description:"max age of a cached preference, changes made by the theme command show up after it"`
	} `group:"theme" namespace:"theme" env-namespace:"LANDING_THEME"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	mode, err := enum.ParseStorageMode(s.Theme.Storage)
	if err != nil {
		return fmt.Errorf("invalid theme storage: %w", err)
	}

	page, err := site.Load(s.Content)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	log.Printf("[INFO] starting landing server on %s, theme storage: %s", s.Server.Address, mode)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	var prefs store.KV
	var cached *store.Cached
	if mode == enum.StorageModeDB {
		dbStore, dbErr := store.New(s.DB)
		if dbErr != nil {
			return fmt.Errorf("failed to initialize store: %w", dbErr)
		}
		var cacheErr error
		cached, cacheErr = store.NewCached(dbStore, s.Theme.CacheSize, s.Theme.CacheTTL)
		if cacheErr != nil {
			_ = dbStore.Close()
			return fmt.Errorf("failed to initialize cache: %w", cacheErr)
		}
		defer cached.Close()
		prefs = cached
	}

	srv, err := server.New(page, prefs, server.Config{
		Address:     s.Server.Address,
		ReadTimeout: s.Server.ReadTimeout,
		Version:     revision,
		BaseURL:     baseURL,
		ImagesDir:   s.Images,
		StorageMode: mode,
		ThemeKey:    s.Theme.Key,
		Lang:        s.Theme.Lang,
		HideToggle:  s.Theme.HideToggle,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	if cached != nil {
		log.Printf("[INFO] preference cache stats: %+v", cached.Stats())
	}
	return nil
}

// BuildCmd implements the build subcommand
type BuildCmd struct {
	Content string `short:"c" long:"content" env:"LANDING_CONTENT" default:"product.xml" description:"landing page content file"`
	Images  string `long:"images" env:"LANDING_IMAGES" default:"generated_images" description:"generated images directory"`
	Out     string `short:"o" long:"out" env:"LANDING_OUT" default:"site" description:"output directory"`

	Theme ThemeOptions `group:"theme" namespace:"theme" env-namespace:"LANDING_THEME"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

// Execute runs the build command
func (b *BuildCmd) Execute(_ []string) error {
	setupLogs(b.Debug)
	builder, err := site.NewBuilder(site.BuildConfig{
		Content:   b.Content,
		ImagesDir: b.Images,
		OutDir:    b.Out,
		ThemeKey:  b.Theme.Key,
		Lang:      b.Theme.Lang,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize builder: %w", err)
	}
	if err := builder.Build(context.Background()); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

// ThemeCmd implements the theme subcommand
type ThemeCmd struct {
	DB      string `short:"d" long:"db" env:"LANDING_DB" default:"landing.db" description:"preferences database URL (sqlite file or postgres://...)"`
	Visitor string `long:"visitor" env:"LANDING_VISITOR" description:"visitor id, the uuid from the visitor cookie"`
	Toggle  bool   `long:"toggle" description:"flip the stored theme"`
	Reset   bool   `long:"reset" description:"remove the stored theme, the visitor gets the default one"`
	List    bool   `long:"list" description:"list stored themes, only the visitor's ones if --visitor is set"`

	Theme ThemeOptions `group:"theme" namespace:"theme" env-namespace:"LANDING_THEME"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	out io.Writer
}

// Execute runs the theme command
func (t *ThemeCmd) Execute(_ []string) error {
	setupLogs(t.Debug)
	if t.out == nil {
		t.out = os.Stdout
	}
	if t.Toggle && t.Reset {
		return errors.New("--toggle and --reset can't be used together")
	}

	// the server keys preferences by visitor uuid, anything else is never read back
	var visitor string
	if t.Visitor != "" || !t.List {
		id, err := uuid.Parse(t.Visitor)
		if err != nil {
			return fmt.Errorf("invalid visitor id %q: %w", t.Visitor, err)
		}
		visitor = id.String()
	}

	st, err := store.New(t.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()
	if t.List {
		return t.list(ctx, st, visitor)
	}

	key := t.Theme.Key
	if key == "" {
		key = theme.DefaultKey
	}
	scoped := store.NewScoped(ctx, st, visitor)

	if t.Reset {
		err = st.Delete(ctx, scoped.Key(key))
		switch {
		case errors.Is(err, store.ErrNotFound):
			log.Printf("[INFO] no theme stored for %s", visitor)
		case err != nil:
			return fmt.Errorf("failed to reset theme: %w", err)
		default:
			log.Printf("[INFO] theme of %s reset", visitor)
		}
	}

	view := &consoleView{}
	tg := theme.New(scoped, view, theme.WithKey(key), theme.WithLabels(theme.LabelsFor(t.Theme.Lang)))

	if !t.Toggle {
		tg.Initialize(nil)
	} else {
		ctrl := &onceControl{}
		tg.Initialize(ctrl)
		ctrl.fire()
		log.Printf("[INFO] theme of %s toggled, running servers pick it up after their cache ttl", visitor)
	}
	return view.print(t.out)
}

// list prints stored preferences as "<key> <theme> <updated>", newest first.
func (t *ThemeCmd) list(ctx context.Context, st *store.Store, visitor string) error {
	prefs, err := st.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}
	for _, p := range prefs {
		if visitor != "" && !strings.HasPrefix(p.Key, visitor+"/") {
			continue
		}
		line := fmt.Sprintf("%s %s %s\n", p.Key, enum.ThemeFromFlag(p.Value), p.UpdatedAt.UTC().Format(time.RFC3339))
		if _, err := io.WriteString(t.out, line); err != nil {
			return fmt.Errorf("failed to print themes: %w", err)
		}
	}
	return nil
}

// consoleView keeps the last applied state for printing.
type consoleView struct {
	light bool
	label string
}

func (c *consoleView) SetLightMode(light bool) { c.light = light }
func (c *consoleView) SetLabel(label string)   { c.label = label }

func (c *consoleView) print(w io.Writer) error {
	th := enum.ThemeDark
	if c.light {
		th = enum.ThemeLight
	}
	if _, err := fmt.Fprintf(w, "theme: %s\nlabel: %s\n", th, c.label); err != nil {
		return fmt.Errorf("failed to print theme: %w", err)
	}
	return nil
}

// onceControl is a command line "click", fired once per run.
type onceControl struct {
	fn func()
}

func (o *onceControl) OnClick(fn func()) { o.fn = fn }

func (o *onceControl) fire() {
	if o.fn != nil {
		o.fn()
	}
}

// validateBaseURL normalizes the base URL, it must start with "/" and has no trailing slash.
func validateBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", errors.New("must start with /")
	}
	if strings.ContainsAny(baseURL, " ?#") {
		return "", fmt.Errorf("unexpected characters in %q", baseURL)
	}
	return baseURL, nil
}
