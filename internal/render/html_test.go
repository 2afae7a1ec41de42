package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/designkit/internal/component"
)

func testRenderer() renderer.Renderer {
	return renderer.NewRenderer(renderer.WithNodeRenderers(
		util.Prioritized(html.NewRenderer(), 1000),
		util.Prioritized(NewComponentHTMLRenderer(), 500),
	))
}

func renderNode(t *testing.T, source []byte, n ast.Node) string {
	t.Helper()
	doc := ast.NewDocument()
	doc.AppendChild(doc, n)
	var buf bytes.Buffer
	require.NoError(t, testRenderer().Render(&buf, source, doc))
	return buf.String()
}

func TestRenderTabInput_Exact(t *testing.T) {
	out := renderNode(t, nil, component.NewTabInput("tab1", "grp1", true))
	require.Equal(t, "<input type=\"radio\" name=\"grp1\" id=\"tab1\" checked>\n", out)

	out = renderNode(t, nil, component.NewTabInput("tab2", "grp1", false))
	require.Equal(t, "<input type=\"radio\" name=\"grp1\" id=\"tab2\">\n", out)
}

func TestRenderTabLabel_Lowered(t *testing.T) {
	source := []byte("LabelText")
	label := component.NewTabLabel()
	label.ForID = "tab1"
	label.SyncID = "s1"
	label.AppendChild(label, ast.NewTextSegment(text.NewSegment(0, len(source))))

	out := renderNode(t, source, label)
	require.Equal(t,
		`<label for="tab1" data-sync-id="s1" class="sd-tab-label">LabelText</label>`,
		out)
}

func TestRenderTabLabel_UnloweredFallsBackToContainer(t *testing.T) {
	label := component.NewTabLabel("extra")
	out := renderNode(t, nil, label)
	require.Equal(t, "<div class=\"sd-tab-label extra\">\n</div>\n", out)
}

func TestRenderTabLabel_EscapesSyncID(t *testing.T) {
	label := component.NewTabLabel()
	label.ForID = "tab1"
	label.SyncID = `a"b`
	out := renderNode(t, nil, label)
	require.Contains(t, out, `data-sync-id="a&quot;b"`)
}

func TestRenderDiv_NoClassesOmitsAttribute(t *testing.T) {
	out := renderNode(t, nil, component.NewDiv())
	require.Equal(t, "<div>\n</div>\n", out)
}
