// Package assets publishes the shared stylesheet and script into the build
// output's static directory. The stylesheet is content-addressed: its file
// name embeds an MD5 hash of its content, so a change in content changes
// the name every rendered page references. The publisher therefore also
// raises a build-scoped changed flag that forces re-render of every known
// page when the content differs from the previous build.
package assets

import (
	"crypto/md5" // #nosec G501 -- cache-busting fingerprint, not a security boundary
	_ "embed"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/designkit/internal/build"
)

//go:embed static/design-style.min.css
var styleCSS []byte

//go:embed static/design-tabs.js
var tabsJS []byte

const (
	// DefaultStaticDirName is the subdirectory of the output tree that
	// holds the published assets.
	DefaultStaticDirName = "_designkit_static"

	// ScriptName is the fixed script file name. The script is invariant
	// across builds and is not content-hashed.
	ScriptName = "design-tabs.js"
)

// Publisher emits the static assets exactly once per build. The zero value
// is not usable; call New.
type Publisher struct {
	// StaticDirName overrides the asset subdirectory name.
	StaticDirName string

	// Stylesheet and Script override the embedded payloads, for tests.
	Stylesheet []byte
	Script     []byte
}

// New returns a Publisher for the embedded assets.
func New() *Publisher {
	return &Publisher{
		StaticDirName: DefaultStaticDirName,
		Stylesheet:    styleCSS,
		Script:        tabsJS,
	}
}

// StylesheetName returns the hash-embedding file name for the current
// stylesheet content.
func (p *Publisher) StylesheetName() string {
	sum := md5.Sum(p.Stylesheet) // #nosec G401
	return fmt.Sprintf("design-style.%s.min.css", hex.EncodeToString(sum[:]))
}

// Publish ensures exactly one current copy of the assets exists under
// outDir and records the published names on the build context. When the
// stylesheet content differs from what a previous build published into the
// same directory, every stale stylesheet file is removed first and the
// context's changed flag is raised.
//
// Filesystem failures are returned as errors; the caller aborts the build
// rather than continue with a possibly inconsistent asset cache.
func (p *Publisher) Publish(bctx *build.Context, outDir string) error {
	staticDir := filepath.Join(outDir, p.StaticDirName)
	preexisted := false
	if _, err := os.Stat(staticDir); err == nil {
		preexisted = true
	}
	if err := os.MkdirAll(staticDir, 0o750); err != nil {
		return fmt.Errorf("create static dir: %w", err)
	}

	cssName := p.StylesheetName()
	bctx.SetAssets(staticDir, cssName, ScriptName)

	jsPath := filepath.Join(staticDir, ScriptName)
	if _, err := os.Stat(jsPath); os.IsNotExist(err) {
		// #nosec G306 -- public static asset
		if err := os.WriteFile(jsPath, p.Script, 0o644); err != nil {
			return fmt.Errorf("write script: %w", err)
		}
	}

	cssPath := filepath.Join(staticDir, cssName)
	if _, err := os.Stat(cssPath); err == nil {
		// The current content is already published.
		return nil
	}

	if preexisted {
		bctx.MarkStylesheetChanged()
		slog.Debug("Stylesheet content changed, forcing re-render", "stylesheet", cssName)
	}

	stale, err := filepath.Glob(filepath.Join(staticDir, "*.css"))
	if err != nil {
		return fmt.Errorf("list stale stylesheets: %w", err)
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove stale stylesheet: %w", err)
		}
	}

	// #nosec G306 -- public static asset
	if err := os.WriteFile(cssPath, p.Stylesheet, 0o644); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	slog.Debug("Published static assets", "dir", staticDir, "stylesheet", cssName, "script", ScriptName)
	return nil
}

// Outdated consumes the build context's changed flag. When set it returns
// every known document identifier so the host re-renders all pages with
// the new stylesheet reference; otherwise it returns nil.
func (p *Publisher) Outdated(bctx *build.Context) []string {
	if !bctx.ConsumeStylesheetChanged() {
		return nil
	}
	return bctx.Documents()
}
