// Package directive implements the colon-fenced directive syntax and the
// builders that compile parsed directives into design component nodes.
//
// Parsing is two-phase. A block parser recognizes
//
//	::::{name} argument
//	:option: value
//
//	nested block content
//	::::
//
// and produces a raw Directive container node. After inline parsing, a
// builder pass dispatches each Directive to a registered Builder by name
// and splices the built component subtree in its place.
package directive

import (
	"github.com/yuin/goldmark/ast"
)

// KindDirective is the node kind for the raw Directive container.
var KindDirective = ast.NewNodeKind("Directive")

// Directive is the raw parse result of a colon fence, before builders run.
// Children are the nested block content; when the directive carries an
// argument, Argument points at a text block (also an initial child, so the
// argument receives normal inline parsing) holding the argument text.
type Directive struct {
	ast.BaseBlock

	// Name is the directive name inside the braces.
	Name string

	// RawArgument is the argument text exactly as written on the opener.
	RawArgument string

	// Argument is the inline-parsed argument block, nil when absent.
	Argument *ast.TextBlock

	// Options holds the ":key: value" lines; flag options map to "".
	Options map[string]string

	// OpenerOffset is the byte offset of the opening fence in the source,
	// used to locate diagnostics.
	OpenerOffset int

	fenceLength int
	optionsDone bool
}

// NewDirective returns a raw directive node.
func NewDirective(name string, fenceLength int) *Directive {
	return &Directive{
		Name:        name,
		Options:     map[string]string{},
		fenceLength: fenceLength,
	}
}

// Kind implements ast.Node.
func (d *Directive) Kind() ast.NodeKind { return KindDirective }

// Dump implements ast.Node.
func (d *Directive) Dump(source []byte, level int) {
	ast.DumpHelper(d, source, level, map[string]string{
		"Name":        d.Name,
		"RawArgument": d.RawArgument,
	}, nil)
}

// Option returns the value of an option and whether it was present.
func (d *Directive) Option(name string) (string, bool) {
	v, ok := d.Options[name]
	return v, ok
}

// HasFlag reports whether a flag-style option was present.
func (d *Directive) HasFlag(name string) bool {
	_, ok := d.Options[name]
	return ok
}

// DetachArgument removes the argument block from the children, leaving only
// the nested content, and returns it. Builders call this before consuming
// content children.
func (d *Directive) DetachArgument() *ast.TextBlock {
	arg := d.Argument
	if arg != nil && arg.Parent() == d {
		d.RemoveChild(d, arg)
	}
	return arg
}
