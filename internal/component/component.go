// Package component defines the typed AST nodes produced by design
// directives. Each component kind is its own Goldmark node type so that
// transforms and renderers can switch on concrete types instead of a
// stringly-typed tag, while all kinds share a common base carrying the
// ordered CSS class list.
package component

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// Base is embedded by every design component node. Classes is an ordered
// list of CSS class tokens; duplicates are allowed and order is preserved
// into the rendered output.
type Base struct {
	ast.BaseBlock
	Classes []string

	// Line is the 1-based source line of the directive opener the node was
	// built from, zero for nodes created directly.
	Line int
}

// AddClasses appends class tokens, preserving order.
func (b *Base) AddClasses(classes ...string) {
	b.Classes = append(b.Classes, classes...)
}

// SetLine records the source line of the originating directive.
func (b *Base) SetLine(line int) {
	b.Line = line
}

func (b *Base) base() *Base { return b }

// LineOf returns the source line recorded on a component node, or zero for
// any other node.
func LineOf(n ast.Node) int {
	if c, ok := n.(interface{ base() *Base }); ok {
		return c.base().Line
	}
	return 0
}

// ClassAttr returns the space-joined class attribute value.
func (b *Base) ClassAttr() string {
	return strings.Join(b.Classes, " ")
}

func (b *Base) dump(n ast.Node, source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Classes": b.ClassAttr(),
	}, nil)
}

// KindTabSet is the node kind for TabSet.
var KindTabSet = ast.NewNodeKind("TabSet")

// TabSet is a container for a set of tab items. Prior to lowering its
// children are expected to be TabItem nodes; other children are tolerated
// (they trigger a shape warning at build time and render as-is).
type TabSet struct {
	Base
}

// NewTabSet returns a TabSet with the given extra classes.
func NewTabSet(classes ...string) *TabSet {
	n := &TabSet{}
	n.Classes = append([]string{"sd-tab-set"}, classes...)
	return n
}

// Kind implements ast.Node.
func (n *TabSet) Kind() ast.NodeKind { return KindTabSet }

// Dump implements ast.Node.
func (n *TabSet) Dump(source []byte, level int) { n.dump(n, source, level) }

// KindTabItem is the node kind for TabItem.
var KindTabItem = ast.NewNodeKind("TabItem")

// TabItem holds exactly two children in fixed order: a TabLabel and a
// TabContent. Selected records the authoring-time default-selection request.
type TabItem struct {
	Base
	Selected bool
}

// NewTabItem returns a TabItem with the given extra classes.
func NewTabItem(classes ...string) *TabItem {
	n := &TabItem{}
	n.Classes = append([]string{"sd-tab-item"}, classes...)
	return n
}

// Kind implements ast.Node.
func (n *TabItem) Kind() ast.NodeKind { return KindTabItem }

// Dump implements ast.Node.
func (n *TabItem) Dump(source []byte, level int) { n.dump(n, source, level) }

// Label returns the item's label child, or nil if the item is malformed.
func (n *TabItem) Label() *TabLabel {
	l, _ := n.FirstChild().(*TabLabel)
	return l
}

// Content returns the item's content child, or nil if the item is malformed.
func (n *TabItem) Content() *TabContent {
	c, _ := n.LastChild().(*TabContent)
	return c
}

// KindTabLabel is the node kind for TabLabel.
var KindTabLabel = ast.NewNodeKind("TabLabel")

// TabLabel holds the inline-parsed tab title. SyncID, when non-empty, is an
// opaque identifier shared by labels across tab sets for client-side
// selection mirroring. ForID is empty at authoring time; the tab lowering
// transform fills it in, at which point the label renders as an HTML
// <label for="..."> element instead of a generic container.
type TabLabel struct {
	Base
	SyncID string
	ForID  string
	Name   string
}

// NewTabLabel returns a TabLabel with the given extra classes.
func NewTabLabel(classes ...string) *TabLabel {
	n := &TabLabel{}
	n.Classes = append([]string{"sd-tab-label"}, classes...)
	return n
}

// Kind implements ast.Node.
func (n *TabLabel) Kind() ast.NodeKind { return KindTabLabel }

// Dump implements ast.Node.
func (n *TabLabel) Dump(source []byte, level int) { n.dump(n, source, level) }

// KindTabContent is the node kind for TabContent.
var KindTabContent = ast.NewNodeKind("TabContent")

// TabContent wraps the nested block content of a tab item.
type TabContent struct {
	Base
}

// NewTabContent returns a TabContent with the given extra classes.
func NewTabContent(classes ...string) *TabContent {
	n := &TabContent{}
	n.Classes = append([]string{"sd-tab-content"}, classes...)
	return n
}

// Kind implements ast.Node.
func (n *TabContent) Kind() ast.NodeKind { return KindTabContent }

// Dump implements ast.Node.
func (n *TabContent) Dump(source []byte, level int) { n.dump(n, source, level) }

// KindTabInput is the node kind for TabInput.
var KindTabInput = ast.NewNodeKind("TabInput")

// TabInput is the radio-style selector marker produced by the tab lowering
// transform. It is never authored directly. All inputs of one tab set share
// GroupID; exactly one of them is Checked.
type TabInput struct {
	ast.BaseBlock
	ID      string
	GroupID string
	Checked bool
}

// NewTabInput returns a lowered selector input marker.
func NewTabInput(id, groupID string, checked bool) *TabInput {
	return &TabInput{ID: id, GroupID: groupID, Checked: checked}
}

// Kind implements ast.Node.
func (n *TabInput) Kind() ast.NodeKind { return KindTabInput }

// Dump implements ast.Node.
func (n *TabInput) Dump(source []byte, level int) {
	checked := "false"
	if n.Checked {
		checked = "true"
	}
	ast.DumpHelper(n, source, level, map[string]string{
		"ID":      n.ID,
		"GroupID": n.GroupID,
		"Checked": checked,
	}, nil)
}

// KindDiv is the node kind for Div.
var KindDiv = ast.NewNodeKind("Div")

// Div is a plain container that renders without any implicit framework
// classes, carrying only the classes the author supplied.
type Div struct {
	Base
	Name string
}

// NewDiv returns a Div with the given classes.
func NewDiv(classes ...string) *Div {
	n := &Div{}
	n.Classes = append(n.Classes, classes...)
	return n
}

// Kind implements ast.Node.
func (n *Div) Kind() ast.NodeKind { return KindDiv }

// Dump implements ast.Node.
func (n *Div) Dump(source []byte, level int) { n.dump(n, source, level) }

// KindDropdown is the node kind for Dropdown.
var KindDropdown = ast.NewNodeKind("Dropdown")

// Dropdown renders as a disclosure element. Its first child is a Summary
// holding the title, followed by the body content. Open marks the dropdown
// as initially expanded.
type Dropdown struct {
	Base
	Open bool
}

// NewDropdown returns a Dropdown with the given extra classes.
func NewDropdown(classes ...string) *Dropdown {
	n := &Dropdown{}
	n.Classes = append([]string{"sd-dropdown"}, classes...)
	return n
}

// Kind implements ast.Node.
func (n *Dropdown) Kind() ast.NodeKind { return KindDropdown }

// Dump implements ast.Node.
func (n *Dropdown) Dump(source []byte, level int) { n.dump(n, source, level) }

// KindSummary is the node kind for Summary.
var KindSummary = ast.NewNodeKind("Summary")

// Summary holds the inline-parsed title of a Dropdown.
type Summary struct {
	Base
}

// NewSummary returns a Summary with the given extra classes.
func NewSummary(classes ...string) *Summary {
	n := &Summary{}
	n.Classes = append([]string{"sd-summary-title"}, classes...)
	return n
}

// Kind implements ast.Node.
func (n *Summary) Kind() ast.NodeKind { return KindSummary }

// Dump implements ast.Node.
func (n *Summary) Dump(source []byte, level int) { n.dump(n, source, level) }

// KindCard is the node kind for Card.
var KindCard = ast.NewNodeKind("Card")

// Card is a framed content container with an optional CardTitle first child.
type Card struct {
	Base
}

// NewCard returns a Card with the given extra classes.
func NewCard(classes ...string) *Card {
	n := &Card{}
	n.Classes = append([]string{"sd-card"}, classes...)
	return n
}

// Kind implements ast.Node.
func (n *Card) Kind() ast.NodeKind { return KindCard }

// Dump implements ast.Node.
func (n *Card) Dump(source []byte, level int) { n.dump(n, source, level) }

// KindCardTitle is the node kind for CardTitle.
var KindCardTitle = ast.NewNodeKind("CardTitle")

// CardTitle holds the inline-parsed title of a Card.
type CardTitle struct {
	Base
}

// NewCardTitle returns a CardTitle with the given extra classes.
func NewCardTitle(classes ...string) *CardTitle {
	n := &CardTitle{}
	n.Classes = append([]string{"sd-card-title"}, classes...)
	return n
}

// Kind implements ast.Node.
func (n *CardTitle) Kind() ast.NodeKind { return KindCardTitle }

// Dump implements ast.Node.
func (n *CardTitle) Dump(source []byte, level int) { n.dump(n, source, level) }

// KindGrid is the node kind for Grid.
var KindGrid = ast.NewNodeKind("Grid")

// Grid lays out its children in responsive columns.
type Grid struct {
	Base
}

// NewGrid returns a Grid with the given extra classes.
func NewGrid(classes ...string) *Grid {
	n := &Grid{}
	n.Classes = append([]string{"sd-grid"}, classes...)
	return n
}

// Kind implements ast.Node.
func (n *Grid) Kind() ast.NodeKind { return KindGrid }

// Dump implements ast.Node.
func (n *Grid) Dump(source []byte, level int) { n.dump(n, source, level) }
