package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/designkit/internal/directive"
)

func hideTitles(t *testing.T, source string, docName, rootDoc string) []*ast.Heading {
	t.Helper()
	src := []byte(source)
	pc := parser.NewContext()
	directive.WithDocumentName(pc, docName)
	doc := goldmark.New().Parser().Parse(text.NewReader(src), parser.WithContext(pc))

	hider := &RootTitleHider{RootDoc: rootDoc}
	hider.Transform(doc.(*ast.Document), text.NewReader(src), pc)

	var headings []*ast.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if h, ok := n.(*ast.Heading); ok {
				headings = append(headings, h)
			}
		}
		return ast.WalkContinue, nil
	})
	return headings
}

func headingClass(h *ast.Heading) string {
	v, ok := h.AttributeString("class")
	if !ok {
		return ""
	}
	switch c := v.(type) {
	case []byte:
		return string(c)
	case string:
		return c
	}
	return ""
}

func TestRootTitleHider_FirstHeadingOnly(t *testing.T) {
	headings := hideTitles(t, "# First\n\n## Second\n\n# Third\n", "index", "index")
	require.Len(t, headings, 3)
	require.Equal(t, "sd-d-none", headingClass(headings[0]))
	require.Empty(t, headingClass(headings[1]))
	require.Empty(t, headingClass(headings[2]))
}

func TestRootTitleHider_OtherDocumentsUntouched(t *testing.T) {
	headings := hideTitles(t, "# First\n", "guide/setup", "index")
	require.Len(t, headings, 1)
	require.Empty(t, headingClass(headings[0]))
}

func TestAddClass_MergesExisting(t *testing.T) {
	h := ast.NewHeading(1)
	h.SetAttributeString("class", []byte("title"))
	addClass(h, "sd-d-none")
	require.Equal(t, "title sd-d-none", headingClass(h))
}
