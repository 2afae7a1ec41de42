package directive

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/designkit/internal/component"
	"git.home.luguber.info/inful/designkit/internal/report"
)

func testCtx() (*BuildContext, *report.Recorder) {
	rec := &report.Recorder{}
	return &BuildContext{Doc: "test", Reporter: rec}, rec
}

func withContent(d *Directive) *Directive {
	d.AppendChild(d, ast.NewParagraph())
	return d
}

func withArgument(d *Directive, raw string) *Directive {
	tb := ast.NewTextBlock()
	d.RawArgument = raw
	d.Argument = tb
	d.AppendChild(d, tb)
	return d
}

func TestBuildDiv_Classes(t *testing.T) {
	ctx, _ := testCtx()
	d := withContent(withArgument(NewDirective("div", 3), "shadow rounded"))
	n, err := BuildDiv(d, ctx)
	require.NoError(t, err)
	div := n.(*component.Div)
	require.Equal(t, []string{"shadow", "rounded"}, div.Classes)
	require.Equal(t, 1, div.ChildCount())
}

func TestBuildDiv_MalformedClass(t *testing.T) {
	ctx, _ := testCtx()
	d := withContent(withArgument(NewDirective("div", 3), "2-bad"))
	_, err := BuildDiv(d, ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2-bad")
}

func TestBuildDiv_ContentRequired(t *testing.T) {
	ctx, _ := testCtx()
	_, err := BuildDiv(NewDirective("div", 3), ctx)
	require.ErrorIs(t, err, errContentRequired)
}

func TestBuildTabItem_Structure(t *testing.T) {
	ctx, _ := testCtx()
	d := withContent(withArgument(NewDirective("tab-item", 3), "My label"))
	d.Options["selected"] = ""
	d.Options["sync"] = "key1"
	d.Options["class"] = "extra"
	d.Options["class-label"] = "label-extra"
	d.Options["class-content"] = "content-extra"

	n, err := BuildTabItem(d, ctx)
	require.NoError(t, err)
	item := n.(*component.TabItem)
	require.True(t, item.Selected)
	require.Equal(t, []string{"sd-tab-item", "extra"}, item.Classes)
	require.Equal(t, 2, item.ChildCount())

	label := item.Label()
	require.NotNil(t, label)
	require.Equal(t, "key1", label.SyncID)
	require.Equal(t, []string{"sd-tab-label", "label-extra"}, label.Classes)

	content := item.Content()
	require.NotNil(t, content)
	require.Equal(t, []string{"sd-tab-content", "content-extra"}, content.Classes)
	require.Equal(t, 1, content.ChildCount())
}

func TestBuildTabItem_LabelRequired(t *testing.T) {
	ctx, _ := testCtx()
	_, err := BuildTabItem(withContent(NewDirective("tab-item", 3)), ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "label argument required")
}

func TestBuildTabSet_ShapeCheckWarnsOnce(t *testing.T) {
	ctx, rec := testCtx()
	d := NewDirective("tab-set", 4)
	d.AppendChild(d, component.NewTabItem())
	d.AppendChild(d, ast.NewParagraph())
	d.AppendChild(d, ast.NewParagraph())

	n, err := BuildTabSet(d, ctx)
	require.NoError(t, err)
	require.Len(t, rec.Warnings, 1)
	// All children kept despite the warning.
	require.Equal(t, 3, n.ChildCount())
}

func TestBuildTabSet_ShapeWarningLocatedAtChild(t *testing.T) {
	ctx, rec := testCtx()
	d := NewDirective("tab-set", 4)
	d.AppendChild(d, component.NewTabItem())
	offender := component.NewDiv()
	offender.SetLine(7)
	d.AppendChild(d, offender)

	_, err := BuildTabSet(d, ctx)
	require.NoError(t, err)
	require.Len(t, rec.Warnings, 1)
	require.Equal(t, 7, rec.Warnings[0].Location.Line)
}

func TestBuildTabSet_ContentRequired(t *testing.T) {
	ctx, _ := testCtx()
	_, err := BuildTabSet(NewDirective("tab-set", 4), ctx)
	require.ErrorIs(t, err, errContentRequired)
}

func TestBuildGrid_Columns(t *testing.T) {
	ctx, _ := testCtx()
	d := withContent(withArgument(NewDirective("grid", 3), "1 2 3"))
	n, err := BuildGrid(d, ctx)
	require.NoError(t, err)
	grid := n.(*component.Grid)
	require.Equal(t, []string{"sd-grid", "sd-cols-xs-1", "sd-cols-sm-2", "sd-cols-md-3"}, grid.Classes)
}

func TestBuildGrid_InvalidColumns(t *testing.T) {
	ctx, _ := testCtx()
	d := withContent(withArgument(NewDirective("grid", 3), "13"))
	_, err := BuildGrid(d, ctx)
	require.Error(t, err)
}

func TestParseClassList(t *testing.T) {
	tests := []struct {
		value   string
		want    []string
		wantErr bool
	}{
		{value: "", want: nil},
		{value: "one", want: []string{"one"}},
		{value: "one two", want: []string{"one", "two"}},
		{value: "one,two", want: []string{"one", "two"}},
		{value: "with-dash under_score", want: []string{"with-dash", "under_score"}},
		{value: "1leading", wantErr: true},
		{value: "sp@ce", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseClassList(tt.value)
		if tt.wantErr {
			require.Error(t, err, "value %q", tt.value)
			continue
		}
		require.NoError(t, err, "value %q", tt.value)
		require.Equal(t, tt.want, got, "value %q", tt.value)
	}
}

func TestParseOptionLine(t *testing.T) {
	key, value, ok := parseOptionLine([]byte(":sync: key-1\n"))
	require.True(t, ok)
	require.Equal(t, "sync", key)
	require.Equal(t, "key-1", value)

	key, _, ok = parseOptionLine([]byte(":selected:\n"))
	require.True(t, ok)
	require.Equal(t, "selected", key)

	_, _, ok = parseOptionLine([]byte("::::\n"))
	require.False(t, ok)

	_, _, ok = parseOptionLine([]byte("not an option\n"))
	require.False(t, ok)

	_, _, ok = parseOptionLine([]byte(": spaced: no\n"))
	require.False(t, ok)
}
