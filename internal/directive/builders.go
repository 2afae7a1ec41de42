package directive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/designkit/internal/component"
	"git.home.luguber.info/inful/designkit/internal/report"
)

// BuildContext carries what builders need beyond the directive itself.
type BuildContext struct {
	Source   []byte
	Doc      string
	Reporter report.Reporter
}

// Location returns the source location of a directive for diagnostics.
func (c *BuildContext) Location(d *Directive) report.Location {
	return report.Location{Doc: c.Doc, Line: report.LineAt(c.Source, d.OpenerOffset)}
}

// childLocation locates a node nested in a directive body. Built components
// carry the line of their originating directive; plain blocks are located
// by their first source segment.
func (c *BuildContext) childLocation(n ast.Node, fallback report.Location) report.Location {
	if line := component.LineOf(n); line > 0 {
		return report.Location{Doc: c.Doc, Line: line}
	}
	if lines := n.Lines(); lines.Len() > 0 {
		return report.Location{Doc: c.Doc, Line: report.LineAt(c.Source, lines.At(0).Start)}
	}
	return fallback
}

// Builder compiles a raw directive into a component subtree. A returned
// error is an authoring error: it is reported at the directive's location
// and the directive's output is omitted.
type Builder func(d *Directive, ctx *BuildContext) (ast.Node, error)

var errContentRequired = errors.New("content required")

// Builders returns the default builder registry: every directive name this
// module understands mapped to its builder.
func Builders() map[string]Builder {
	return map[string]Builder{
		"tab-set":  BuildTabSet,
		"tab-item": BuildTabItem,
		"div":      BuildDiv,
		"dropdown": BuildDropdown,
		"card":     BuildCard,
		"grid":     BuildGrid,
	}
}

// BuildTabSet compiles a tab-set directive. Children are checked to be
// tab-item components; the first offender triggers a single warning and the
// check stops, but all children are kept and render as given.
func BuildTabSet(d *Directive, ctx *BuildContext) (ast.Node, error) {
	if d.DetachArgument() != nil {
		return nil, fmt.Errorf("unexpected argument %q", d.RawArgument)
	}
	classes, err := optionClasses(d, "class")
	if err != nil {
		return nil, err
	}
	if d.FirstChild() == nil {
		return nil, errContentRequired
	}

	set := component.NewTabSet(classes...)
	moveChildren(d, set)

	for c := set.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*component.TabItem); !ok {
			ctx.Reporter.Warningf(ctx.childLocation(c, ctx.Location(d)),
				"all children of a 'tab-set' should be 'tab-item'")
			break
		}
	}
	return set, nil
}

// BuildTabItem compiles a tab-item directive into an item holding a label
// and a content child.
func BuildTabItem(d *Directive, ctx *BuildContext) (ast.Node, error) {
	arg := d.DetachArgument()
	if arg == nil {
		return nil, errors.New("label argument required")
	}
	if d.FirstChild() == nil {
		return nil, errContentRequired
	}
	itemClasses, err := optionClasses(d, "class")
	if err != nil {
		return nil, err
	}
	labelClasses, err := optionClasses(d, "class-label")
	if err != nil {
		return nil, err
	}
	contentClasses, err := optionClasses(d, "class-content")
	if err != nil {
		return nil, err
	}

	item := component.NewTabItem(itemClasses...)
	item.Selected = d.HasFlag("selected")

	label := component.NewTabLabel(labelClasses...)
	label.SyncID, _ = d.Option("sync")
	label.Name, _ = d.Option("name")
	moveChildren(arg, label)

	content := component.NewTabContent(contentClasses...)
	moveChildren(d, content)

	item.AppendChild(item, label)
	item.AppendChild(item, content)
	return item, nil
}

// BuildDiv compiles a div directive. The optional argument is a freeform
// class list.
func BuildDiv(d *Directive, ctx *BuildContext) (ast.Node, error) {
	d.DetachArgument()
	classes, err := ParseClassList(d.RawArgument)
	if err != nil {
		return nil, fmt.Errorf("invalid class attribute value %q: %w", d.RawArgument, err)
	}
	if d.FirstChild() == nil {
		return nil, errContentRequired
	}
	div := component.NewDiv(classes...)
	div.Name, _ = d.Option("name")
	moveChildren(d, div)
	return div, nil
}

// BuildDropdown compiles a dropdown directive into a disclosure container
// with a summary title.
func BuildDropdown(d *Directive, ctx *BuildContext) (ast.Node, error) {
	arg := d.DetachArgument()
	classes, err := optionClasses(d, "class")
	if err != nil {
		return nil, err
	}
	if d.FirstChild() == nil {
		return nil, errContentRequired
	}
	dd := component.NewDropdown(classes...)
	dd.Open = d.HasFlag("open")

	summary := component.NewSummary()
	if arg != nil {
		moveChildren(arg, summary)
	}
	content := component.NewDiv("sd-dropdown-content")
	moveChildren(d, content)

	dd.AppendChild(dd, summary)
	dd.AppendChild(dd, content)
	return dd, nil
}

// BuildCard compiles a card directive with an optional title argument.
func BuildCard(d *Directive, ctx *BuildContext) (ast.Node, error) {
	arg := d.DetachArgument()
	classes, err := optionClasses(d, "class")
	if err != nil {
		return nil, err
	}
	if d.FirstChild() == nil {
		return nil, errContentRequired
	}
	card := component.NewCard(classes...)
	if arg != nil {
		title := component.NewCardTitle()
		moveChildren(arg, title)
		card.AppendChild(card, title)
	}
	moveChildren(d, card)
	return card, nil
}

// gridBreakpoints are the responsive suffixes matched positionally against
// the grid directive's column counts.
var gridBreakpoints = []string{"xs", "sm", "md", "lg"}

// BuildGrid compiles a grid directive. The optional argument is one to four
// column counts (1..12), applied to successive breakpoints.
func BuildGrid(d *Directive, ctx *BuildContext) (ast.Node, error) {
	d.DetachArgument()
	classes, err := optionClasses(d, "class")
	if err != nil {
		return nil, err
	}
	if d.FirstChild() == nil {
		return nil, errContentRequired
	}

	cols := strings.Fields(d.RawArgument)
	if len(cols) > len(gridBreakpoints) {
		return nil, fmt.Errorf("at most %d column counts allowed", len(gridBreakpoints))
	}
	grid := component.NewGrid(classes...)
	for i, c := range cols {
		n, err := strconv.Atoi(c)
		if err != nil || n < 1 || n > 12 {
			return nil, fmt.Errorf("invalid column count %q", c)
		}
		grid.AddClasses(fmt.Sprintf("sd-cols-%s-%d", gridBreakpoints[i], n))
	}
	moveChildren(d, grid)
	return grid, nil
}

func optionClasses(d *Directive, option string) ([]string, error) {
	value, ok := d.Option(option)
	if !ok {
		return nil, nil
	}
	classes, err := ParseClassList(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %q option: %w", option, err)
	}
	return classes, nil
}

// moveChildren reparents every child of from onto to, preserving order.
func moveChildren(from, to ast.Node) {
	for c := from.FirstChild(); c != nil; {
		next := c.NextSibling()
		to.AppendChild(to, c)
		c = next
	}
}
