package directive

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// parseRaw parses source with only the directive block parser active, so
// the raw Directive nodes survive for inspection.
func parseRaw(t *testing.T, source string) ast.Node {
	t.Helper()
	md := goldmark.New()
	md.Parser().AddOptions(parser.WithBlockParsers(util.Prioritized(NewBlockParser(), 799)))
	return md.Parser().Parse(text.NewReader([]byte(source)))
}

func findDirectives(root ast.Node) []*Directive {
	var out []*Directive
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if d, ok := n.(*Directive); ok {
				out = append(out, d)
			}
		}
		return ast.WalkContinue, nil
	})
	return out
}

func TestParse_NestedDirectivesWithOptions(t *testing.T) {
	root := parseRaw(t, `::::{tab-set}
:class: outer

:::{tab-item} Label text
:selected:
:sync: key1

body content
:::
::::
`)
	ds := findDirectives(root)
	require.Len(t, ds, 2)

	outer, inner := ds[0], ds[1]
	require.Equal(t, "tab-set", outer.Name)
	require.Equal(t, map[string]string{"class": "outer"}, outer.Options)
	require.Equal(t, 1, outer.ChildCount())
	require.Same(t, outer, inner.Parent())

	require.Equal(t, "tab-item", inner.Name)
	require.Equal(t, "Label text", inner.RawArgument)
	require.NotNil(t, inner.Argument)
	require.True(t, inner.HasFlag("selected"))
	sync, ok := inner.Option("sync")
	require.True(t, ok)
	require.Equal(t, "key1", sync)

	// Argument block plus one paragraph of body content.
	require.Equal(t, 2, inner.ChildCount())
	require.Same(t, inner.Argument, ast.Node(inner.FirstChild()))
	require.Equal(t, ast.KindParagraph, inner.LastChild().Kind())
}

func TestParse_ArgumentInlineText(t *testing.T) {
	source := ":::{tab-item} Some *label*\n\nbody\n:::\n"
	root := parseRaw(t, source)
	ds := findDirectives(root)
	require.Len(t, ds, 1)
	require.Equal(t, "Some *label*", ds[0].RawArgument)

	// The argument block was inline-parsed: emphasis became a node.
	var sawEmphasis bool
	_ = ast.Walk(ds[0].Argument, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindEmphasis {
			sawEmphasis = true
		}
		return ast.WalkContinue, nil
	})
	require.True(t, sawEmphasis)
}

func TestParse_OptionLinesNotContent(t *testing.T) {
	root := parseRaw(t, ":::{div}\n:name: anchor\n\nvisible\n:::\n")
	ds := findDirectives(root)
	require.Len(t, ds, 1)
	name, ok := ds[0].Option("name")
	require.True(t, ok)
	require.Equal(t, "anchor", name)

	// Only the paragraph remains as content.
	require.Equal(t, 1, ds[0].ChildCount())
	require.Equal(t, ast.KindParagraph, ds[0].FirstChild().Kind())
}

func TestParse_ShortFenceIsNotADirective(t *testing.T) {
	root := parseRaw(t, "::{div}\n\ntext\n")
	require.Empty(t, findDirectives(root))
}

func TestParse_UnterminatedFenceClosesAtEOF(t *testing.T) {
	root := parseRaw(t, ":::{div}\n\ndangling\n")
	ds := findDirectives(root)
	require.Len(t, ds, 1)
	require.Equal(t, 1, ds[0].ChildCount())
}

func TestParse_OptionPhaseEndsAtFirstContentLine(t *testing.T) {
	root := parseRaw(t, ":::{div}\n\npara one\n\n:not-an-option: later\n:::\n")
	ds := findDirectives(root)
	require.Len(t, ds, 1)
	require.Empty(t, ds[0].Options)
	// The option-looking line renders as ordinary content.
	require.Equal(t, 2, ds[0].ChildCount())
}
