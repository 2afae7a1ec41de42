// Package render provides the HTML node renderer for design components,
// covering both the generic nested structure and the lowered tab markers.
package render

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/designkit/internal/component"
)

// ComponentHTMLRenderer renders every component node kind to HTML.
//
// Lowered tab sets follow a fixed markup contract relied on by the
// published stylesheet and script: per item an
// `<input type="radio" name="GROUP" id="ID" [checked]>`, a
// `<label for="ID" [data-sync-id="SYNC"]>` and a content div, all inputs of
// one set sharing the group name.
type ComponentHTMLRenderer struct{}

// NewComponentHTMLRenderer returns the HTML renderer for component nodes.
func NewComponentHTMLRenderer() renderer.NodeRenderer {
	return &ComponentHTMLRenderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *ComponentHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(component.KindTabSet, r.renderContainer)
	reg.Register(component.KindTabItem, r.renderContainer)
	reg.Register(component.KindTabContent, r.renderContainer)
	reg.Register(component.KindTabLabel, r.renderTabLabel)
	reg.Register(component.KindTabInput, r.renderTabInput)
	reg.Register(component.KindDiv, r.renderContainer)
	reg.Register(component.KindDropdown, r.renderDropdown)
	reg.Register(component.KindSummary, r.renderSummary)
	reg.Register(component.KindCard, r.renderContainer)
	reg.Register(component.KindCardTitle, r.renderContainer)
	reg.Register(component.KindGrid, r.renderContainer)
}

type classed interface {
	ast.Node
	ClassAttr() string
}

// renderContainer is the default appearance: a plain div carrying the
// node's classes.
func (r *ComponentHTMLRenderer) renderContainer(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</div>\n")
		return ast.WalkContinue, nil
	}
	c := n.(classed)
	_, _ = w.WriteString("<div")
	writeClass(w, c.ClassAttr())
	_, _ = w.WriteString(">\n")
	return ast.WalkContinue, nil
}

func (r *ComponentHTMLRenderer) renderTabInput(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	in := n.(*component.TabInput)
	_, _ = w.WriteString(`<input type="radio" name="`)
	_, _ = w.WriteString(in.GroupID)
	_, _ = w.WriteString(`" id="`)
	_, _ = w.WriteString(in.ID)
	_, _ = w.WriteString(`"`)
	if in.Checked {
		_, _ = w.WriteString(" checked")
	}
	_, _ = w.WriteString(">\n")
	return ast.WalkSkipChildren, nil
}

// renderTabLabel renders a lowered label (ForID set) as an HTML label bound
// to its input; an unlowered label renders as a generic container.
func (r *ComponentHTMLRenderer) renderTabLabel(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	label := n.(*component.TabLabel)
	if label.ForID == "" {
		return r.renderContainer(w, source, n, entering)
	}
	if !entering {
		_, _ = w.WriteString("</label>")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(`<label for="`)
	_, _ = w.WriteString(label.ForID)
	_, _ = w.WriteString(`"`)
	if label.SyncID != "" {
		_, _ = w.WriteString(` data-sync-id="`)
		_, _ = w.Write(util.EscapeHTML([]byte(label.SyncID)))
		_, _ = w.WriteString(`"`)
	}
	if label.Name != "" {
		_, _ = w.WriteString(` id="`)
		_, _ = w.Write(util.EscapeHTML([]byte(label.Name)))
		_, _ = w.WriteString(`"`)
	}
	writeClass(w, label.ClassAttr())
	_, _ = w.WriteString(">")
	return ast.WalkContinue, nil
}

func (r *ComponentHTMLRenderer) renderDropdown(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</details>\n")
		return ast.WalkContinue, nil
	}
	dd := n.(*component.Dropdown)
	_, _ = w.WriteString("<details")
	writeClass(w, dd.ClassAttr())
	if dd.Open {
		_, _ = w.WriteString(" open")
	}
	_, _ = w.WriteString(">\n")
	return ast.WalkContinue, nil
}

func (r *ComponentHTMLRenderer) renderSummary(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	s := n.(*component.Summary)
	if entering {
		_, _ = w.WriteString("<summary")
		writeClass(w, s.ClassAttr())
		_, _ = w.WriteString(">")
	} else {
		_, _ = w.WriteString("</summary>\n")
	}
	return ast.WalkContinue, nil
}

func writeClass(w util.BufWriter, attr string) {
	if attr == "" {
		return
	}
	_, _ = w.WriteString(` class="`)
	_, _ = w.Write(util.EscapeHTML([]byte(attr)))
	_, _ = w.WriteString(`"`)
}
