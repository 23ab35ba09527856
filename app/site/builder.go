package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/landing/app/store"
	"github.com/umputun/landing/app/theme"
)

// BuildConfig defines static build parameters.
type BuildConfig struct {
	Content   string // product xml file
	ImagesDir string // generated images, copied to <out>/images, optional
	OutDir    string
	ThemeKey  string
	Lang      string
}

// Builder generates a static landing site with a client-side theme toggle.
type Builder struct {
	cfg      BuildConfig
	renderer *Renderer
}

// NewBuilder makes a Builder, fails if templates can't be parsed.
func NewBuilder(cfg BuildConfig) (*Builder, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	if cfg.ThemeKey == "" {
		cfg.ThemeKey = theme.DefaultKey
	}
	return &Builder{cfg: cfg, renderer: r}, nil
}

// Build writes index.html, assets and images to the output directory.
func (b *Builder) Build(ctx context.Context) error {
	page, err := Load(b.cfg.Content)
	if err != nil {
		return err
	}

	for _, dir := range []string{b.cfg.OutDir, filepath.Join(b.cfg.OutDir, "assets"), filepath.Join(b.cfg.OutDir, "images")} {
		if err = os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to make %s: %w", dir, err)
		}
	}

	copied, err := b.copyImages(ctx)
	if err != nil {
		return err
	}

	labels := theme.LabelsFor(b.cfg.Lang)
	data := &PageData{
		Page:       page,
		Lang:       b.cfg.Lang,
		ShowToggle: true,
		Static:     true,
		AssetsURL:  "assets",
		ThemeKey:   b.cfg.ThemeKey,
		LabelDark:  labels.SwitchToDark,
		LabelLight: labels.SwitchToLight,
	}
	// nothing is stored at build time, the page ships in the default state and app.js applies the visitor's flag
	theme.New(store.NewScoped(ctx, store.NewMemory(), ""), data, theme.WithKey(b.cfg.ThemeKey), theme.WithLabels(labels)).Apply()

	var buf bytes.Buffer
	if err = b.renderer.Render(&buf, data); err != nil {
		return err
	}
	if err = os.WriteFile(filepath.Join(b.cfg.OutDir, "index.html"), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write index.html: %w", err)
	}

	if err = b.writeAssets(); err != nil {
		return err
	}

	log.Printf("[INFO] site generated in %s, %d images copied", filepath.Join(b.cfg.OutDir, "index.html"), copied)
	return nil
}

// writeAssets copies embedded css and js into <out>/assets.
func (b *Builder) writeAssets() error {
	assets, err := Assets()
	if err != nil {
		return err
	}
	for _, name := range []string{"style.css", "app.js"} {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(b.cfg.OutDir, "assets", name), data, 0o600); err != nil {
			return fmt.Errorf("failed to write asset %s: %w", name, err)
		}
	}
	return nil
}

// copyImages copies *.png from the images directory. Missing directory is not an error.
func (b *Builder) copyImages(ctx context.Context) (int, error) {
	if b.cfg.ImagesDir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(b.cfg.ImagesDir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[DEBUG] images directory %s not found, skipped", b.cfg.ImagesDir)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read images directory: %w", err)
	}

	count := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return count, fmt.Errorf("build canceled: %w", err)
		}
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		src, dst := filepath.Join(b.cfg.ImagesDir, e.Name()), filepath.Join(b.cfg.OutDir, "images", e.Name())
		if err := copyFile(src, dst); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // src is built from a configured directory listing
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst) //nolint:gosec // dst is inside the output directory
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}
	return nil
}
