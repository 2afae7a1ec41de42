// Package build holds the per-build bookkeeping shared between the asset
// publisher and the page-rendering loop. A Context is created at build
// start and discarded at build end; nothing here is persisted or shared
// across builds.
package build

import "sort"

// Context is the explicit per-build state object. It records the documents
// known to the build, the published asset names pages should reference, and
// the stylesheet-changed flag driving whole-build re-render.
//
// The flag lifecycle is deliberately narrow: false at creation, set at most
// once (when the publisher replaces a stale stylesheet), consumed exactly
// once by the invalidation step.
type Context struct {
	docs map[string]struct{}

	stylesheetChanged bool

	stylesheet string
	script     string
	staticDir  string
}

// NewContext returns a fresh build context with the changed flag reset.
func NewContext() *Context {
	return &Context{docs: make(map[string]struct{})}
}

// AddDocument registers a document identifier with the build.
func (c *Context) AddDocument(id string) {
	c.docs[id] = struct{}{}
}

// Documents returns all registered document identifiers, sorted for
// deterministic iteration.
func (c *Context) Documents() []string {
	out := make([]string, 0, len(c.docs))
	for id := range c.docs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// MarkStylesheetChanged records that the published stylesheet content
// differs from the previous build. Setting it twice is harmless but does
// not happen in practice: the publisher runs once per build.
func (c *Context) MarkStylesheetChanged() {
	c.stylesheetChanged = true
}

// ConsumeStylesheetChanged returns the changed flag and clears it, so the
// invalidation step reads it exactly once.
func (c *Context) ConsumeStylesheetChanged() bool {
	v := c.stylesheetChanged
	c.stylesheetChanged = false
	return v
}

// SetAssets records the published asset names and directory so page
// rendering can reference them.
func (c *Context) SetAssets(staticDir, stylesheet, script string) {
	c.staticDir = staticDir
	c.stylesheet = stylesheet
	c.script = script
}

// StaticDir returns the absolute static asset directory for this build.
func (c *Context) StaticDir() string { return c.staticDir }

// Stylesheet returns the published, hash-named stylesheet file name.
func (c *Context) Stylesheet() string { return c.stylesheet }

// Script returns the published script file name.
func (c *Context) Script() string { return c.script }
