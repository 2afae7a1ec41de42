// Package designkit is a Goldmark extension adding rich UI-like components
// (tab sets, dropdowns, cards, grids, plain divs) authored via colon-fenced
// block directives, together with a content-addressed publisher for the
// stylesheet and script the rendered markup relies on.
//
//	md := goldmark.New(goldmark.WithExtensions(designkit.New()))
//
// Directives compile to typed component nodes; a post-parse lowering pass
// rewrites tab sets into the flat radio-input structure HTML needs. For
// non-HTML-style output the lowering can be disabled and components render
// as plain nested containers.
package designkit

import (
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/designkit/internal/directive"
	"git.home.luguber.info/inful/designkit/internal/render"
	"git.home.luguber.info/inful/designkit/internal/report"
	"git.home.luguber.info/inful/designkit/internal/transform"
)

// Reporter is the diagnostics sink for authoring errors and structural
// warnings, keyed by source location.
type Reporter = report.Reporter

// NewLogReporter returns a Reporter backed by an slog logger (the default
// logger when nil).
func NewLogReporter(logger *slog.Logger) Reporter {
	return report.NewLogReporter(logger)
}

// WithDocumentName records the document identifier on a parser context so
// diagnostics carry it and document-scoped transforms can match on it.
var WithDocumentName = directive.WithDocumentName

// Extension wires the directive parser, builder pass, transforms and HTML
// renderer into a Goldmark pipeline.
type Extension struct {
	reporter      report.Reporter
	lowerTabs     bool
	hideRootTitle string
	newID         func() string
}

// Option configures the extension.
type Option func(*Extension)

// WithReporter sets the diagnostics sink. Default: slog-backed reporter.
func WithReporter(r Reporter) Option {
	return func(e *Extension) { e.reporter = r }
}

// WithoutTabLowering keeps tab sets in their generic nested structure, for
// output formats with a default container appearance instead of the HTML
// radio-input markup.
func WithoutTabLowering() Option {
	return func(e *Extension) { e.lowerTabs = false }
}

// WithHiddenRootTitle hides the first title of the named root document.
func WithHiddenRootTitle(rootDoc string) Option {
	return func(e *Extension) { e.hideRootTitle = rootDoc }
}

// WithIDGenerator overrides tab identifier generation, for deterministic
// output in tests.
func WithIDGenerator(newID func() string) Option {
	return func(e *Extension) { e.newID = newID }
}

// New returns the designkit extension.
func New(opts ...Option) *Extension {
	e := &Extension{lowerTabs: true}
	for _, opt := range opts {
		opt(e)
	}
	if e.reporter == nil {
		e.reporter = report.NewLogReporter(nil)
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	transformers := []util.PrioritizedValue{
		util.Prioritized(directive.NewBuildPass(directive.Builders(), e.reporter), transform.PriorityBuilders),
	}
	if e.lowerTabs {
		transformers = append(transformers, util.Prioritized(
			&transform.TabLowering{Reporter: e.reporter, NewID: e.newID},
			transform.PriorityTabLower))
	}
	if e.hideRootTitle != "" {
		transformers = append(transformers, util.Prioritized(
			&transform.RootTitleHider{RootDoc: e.hideRootTitle},
			transform.PriorityRootTitle))
	}

	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(directive.NewBlockParser(), 799)),
		parser.WithASTTransformers(transformers...),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(render.NewComponentHTMLRenderer(), 500)),
	)
}
