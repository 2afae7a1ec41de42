package main

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/designkit"
	"git.home.luguber.info/inful/designkit/internal/assets"
	"git.home.luguber.info/inful/designkit/internal/build"
	"git.home.luguber.info/inful/designkit/internal/config"
)

// document is one discovered Markdown source.
type document struct {
	ID   string // relative path without extension, slash-separated
	Path string
}

type siteBuilder struct {
	cfg       *config.Config
	md        goldmark.Markdown
	publisher *assets.Publisher
}

func newSiteBuilder(cfg *config.Config) *siteBuilder {
	opts := []designkit.Option{
		designkit.WithReporter(designkit.NewLogReporter(nil)),
	}
	if cfg.HideRootTitle {
		opts = append(opts, designkit.WithHiddenRootTitle(cfg.RootDoc))
	}
	return &siteBuilder{
		cfg:       cfg,
		md:        goldmark.New(goldmark.WithExtensions(designkit.New(opts...))),
		publisher: assets.New(),
	}
}

func runBuild(cfg *config.Config, watch bool) error {
	b := newSiteBuilder(cfg)
	if err := b.buildOnce(); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return b.watchLoop()
}

// buildOnce runs one full build lifecycle: publish assets, render pages
// that are out of date, then force re-render of every page the publisher
// reports stale because the stylesheet reference changed.
func (b *siteBuilder) buildOnce() error {
	started := time.Now()
	bctx := build.NewContext()

	if err := b.publisher.Publish(bctx, b.cfg.Output); err != nil {
		return err
	}

	docs, err := b.discover()
	if err != nil {
		return err
	}
	byID := make(map[string]document, len(docs))
	for _, d := range docs {
		bctx.AddDocument(d.ID)
		byID[d.ID] = d
	}

	rendered := 0
	for _, d := range docs {
		did, err := b.renderDoc(bctx, d, false)
		if err != nil {
			return err
		}
		if did {
			rendered++
		}
	}

	// Environment updated: a changed stylesheet invalidates every page,
	// because each embeds the content-hashed stylesheet name.
	for _, id := range b.publisher.Outdated(bctx) {
		if _, err := b.renderDoc(bctx, byID[id], true); err != nil {
			return err
		}
	}

	slog.Info("Build complete",
		"documents", len(docs),
		"rendered", rendered,
		"duration", time.Since(started))
	return nil
}

func (b *siteBuilder) discover() ([]document, error) {
	var docs []document
	err := filepath.WalkDir(b.cfg.Input, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != b.cfg.Input && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		rel, err := filepath.Rel(b.cfg.Input, path)
		if err != nil {
			return err
		}
		id := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
		docs = append(docs, document{ID: id, Path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover sources: %w", err)
	}
	return docs, nil
}

// renderDoc renders one document unless its output is already newer than
// the source. It reports whether rendering happened.
func (b *siteBuilder) renderDoc(bctx *build.Context, d document, force bool) (bool, error) {
	outPath := filepath.Join(b.cfg.Output, filepath.FromSlash(d.ID)+".html")
	src, err := os.Stat(d.Path)
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}
	if !force {
		if out, err := os.Stat(outPath); err == nil && !out.ModTime().Before(src.ModTime()) {
			return false, nil
		}
	}

	source, err := os.ReadFile(d.Path) // #nosec G304 -- discovered under the input dir
	if err != nil {
		return false, fmt.Errorf("read source %s: %w", d.Path, err)
	}

	pc := parser.NewContext()
	designkit.WithDocumentName(pc, d.ID)
	root := b.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	var body bytes.Buffer
	if err := b.md.Renderer().Render(&body, source, root); err != nil {
		return false, fmt.Errorf("render %s: %w", d.ID, err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return false, fmt.Errorf("create output dir: %w", err)
	}
	// #nosec G306 -- rendered page is a public artifact
	if err := os.WriteFile(outPath, b.page(d.ID, body.Bytes(), bctx), 0o644); err != nil {
		return false, fmt.Errorf("write page %s: %w", d.ID, err)
	}
	slog.Debug("Rendered document", "doc", d.ID, "forced", force)
	return true, nil
}

// page wraps a rendered body in the HTML shell referencing the published
// assets relative to the document's depth.
func (b *siteBuilder) page(id string, body []byte, bctx *build.Context) []byte {
	prefix := strings.Repeat("../", strings.Count(id, "/"))
	title := b.cfg.Title
	if title == "" {
		title = id
	}
	staticBase := prefix + filepath.Base(bctx.StaticDir())

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&buf, "<link rel=\"stylesheet\" href=\"%s/%s\">\n", staticBase, bctx.Stylesheet())
	buf.WriteString("</head>\n<body>\n")
	buf.Write(body)
	fmt.Fprintf(&buf, "<script src=\"%s/%s\"></script>\n", staticBase, bctx.Script())
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

// watchLoop rebuilds on source changes until interrupted.
func (b *siteBuilder) watchLoop() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	err = filepath.WalkDir(b.cfg.Input, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch sources: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Watching for changes", "input", b.cfg.Input)
	var debounce *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutting down")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".md") {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		case <-rebuild:
			if err := b.buildOnce(); err != nil {
				slog.Error("Rebuild failed", "error", err)
			}
		}
	}
}
