package directive

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/designkit/internal/component"
	"git.home.luguber.info/inful/designkit/internal/report"
)

var documentNameKey = parser.NewContextKey()

// WithDocumentName records the identifier of the document being parsed so
// diagnostics and document-scoped transforms can refer to it.
func WithDocumentName(pc parser.Context, name string) {
	pc.Set(documentNameKey, name)
}

// DocumentName returns the identifier recorded with WithDocumentName, or
// the empty string.
func DocumentName(pc parser.Context) string {
	if v := pc.Get(documentNameKey); v != nil {
		return v.(string)
	}
	return ""
}

// buildPass dispatches raw Directive nodes to their builders after inline
// parsing. Directives are processed innermost first so a parent builder
// sees already-built component children (the tab-set shape check depends on
// this). A failed build removes the directive from the tree; an unknown
// directive name degrades to a plain container with a warning.
type buildPass struct {
	builders map[string]Builder
	reporter report.Reporter
}

// NewBuildPass returns the builder dispatch transformer.
func NewBuildPass(builders map[string]Builder, reporter report.Reporter) parser.ASTTransformer {
	return &buildPass{builders: builders, reporter: reporter}
}

// Transform implements parser.ASTTransformer.
func (t *buildPass) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	ctx := &BuildContext{
		Source:   reader.Source(),
		Doc:      DocumentName(pc),
		Reporter: t.reporter,
	}

	// Collect in post-order so inner directives are built before the
	// directives that contain them. Mutating during the walk would skip
	// siblings of replaced nodes.
	var directives []*Directive
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if d, ok := n.(*Directive); ok {
				directives = append(directives, d)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, d := range directives {
		parent := d.Parent()
		if parent == nil {
			// Already detached by a failed ancestor build.
			continue
		}
		loc := ctx.Location(d)
		builder, ok := t.builders[d.Name]
		if !ok {
			t.reporter.Warningf(loc, "unknown directive %q", d.Name)
			d.DetachArgument()
			div := component.NewDiv()
			div.SetLine(loc.Line)
			moveChildren(d, div)
			parent.ReplaceChild(parent, d, div)
			continue
		}
		built, err := builder(d, ctx)
		if err != nil {
			t.reporter.Errorf(loc, "%q directive: %v", d.Name, err)
			parent.RemoveChild(parent, d)
			continue
		}
		if c, ok := built.(interface{ SetLine(int) }); ok {
			c.SetLine(loc.Line)
		}
		parent.ReplaceChild(parent, d, built)
	}
}
