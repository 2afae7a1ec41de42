// Package transform implements the post-parse passes that rewrite generic
// component subtrees into their output-specific shape. Passes register on
// the Goldmark parser as prioritized AST transformers; the builder pass
// runs at priority 100, tab lowering at 200 and root-title hiding at 699.
package transform

import (
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/designkit/internal/component"
	"git.home.luguber.info/inful/designkit/internal/directive"
	"git.home.luguber.info/inful/designkit/internal/report"
)

// Priorities of the transform passes, in registration order.
const (
	PriorityBuilders  = 100
	PriorityTabLower  = 200
	PriorityRootTitle = 699
)

// NewID returns a fresh identifier unique within the build.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// TabLowering flattens each tab-set subtree into (input, label, content)
// triples for HTML rendering. It is only registered when the HTML format is
// active; other formats keep the generic nested structure.
//
// The pass is idempotent: a tab set whose children are already lowered is
// left untouched.
type TabLowering struct {
	Reporter report.Reporter

	// NewID overrides identifier generation, for deterministic tests.
	NewID func() string
}

// Transform implements parser.ASTTransformer.
func (t *TabLowering) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	docName := directive.DocumentName(pc)

	var sets []*component.TabSet
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if s, ok := n.(*component.TabSet); ok {
				sets = append(sets, s)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, set := range sets {
		t.lower(set, docName)
	}
}

// Lower rewrites a single tab set in place. Exported for direct use by
// hosts that run the pass outside Goldmark's transformer chain.
func (t *TabLowering) Lower(set *component.TabSet) {
	t.lower(set, "")
}

func (t *TabLowering) lower(set *component.TabSet, docName string) {
	if _, done := set.FirstChild().(*component.TabInput); done {
		return
	}

	children := collectChildren(set)

	// First pass: resolve the requested selection. First marked item wins;
	// every extra marked item gets its own warning at that item's location.
	// With no request the first item is selected.
	selected := -1
	itemIdx := 0
	for _, c := range children {
		item, ok := c.(*component.TabItem)
		if !ok {
			continue
		}
		if item.Selected {
			if selected < 0 {
				selected = itemIdx
			} else {
				t.warnf(docName, item.Line,
					"multiple selected 'tab-item' directives in one 'tab-set', ignoring selection on item %d", itemIdx+1)
			}
		}
		itemIdx++
	}
	if selected < 0 {
		selected = 0
	}

	groupID := t.newID()
	lowered := make([]ast.Node, 0, len(children)*3)
	itemIdx = 0
	checkedSeen := false
	for _, c := range children {
		item, ok := c.(*component.TabItem)
		if !ok {
			// Malformed child: keep it as-is so output stays complete.
			lowered = append(lowered, c)
			continue
		}
		label, content := item.Label(), item.Content()
		if label == nil || content == nil {
			lowered = append(lowered, c)
			itemIdx++
			continue
		}

		id := t.newID()
		checked := itemIdx == selected
		checkedSeen = checkedSeen || checked
		lowered = append(lowered, component.NewTabInput(id, groupID, checked))
		label.ForID = id
		lowered = append(lowered, label, content)
		itemIdx++
	}

	// If the selection landed on an item that emitted no input, check the
	// first well-formed item so exactly one input per set stays checked.
	if !checkedSeen {
		for _, n := range lowered {
			if in, ok := n.(*component.TabInput); ok {
				in.Checked = true
				break
			}
		}
	}

	set.RemoveChildren(set)
	for _, n := range lowered {
		set.AppendChild(set, n)
	}
}

func (t *TabLowering) newID() string {
	if t.NewID != nil {
		return t.NewID()
	}
	return NewID()
}

func (t *TabLowering) warnf(doc string, line int, format string, args ...any) {
	if t.Reporter == nil {
		return
	}
	t.Reporter.Warningf(report.Location{Doc: doc, Line: line}, format, args...)
}

func collectChildren(n ast.Node) []ast.Node {
	out := make([]ast.Node, 0, n.ChildCount())
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}
