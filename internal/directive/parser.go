package directive

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const minFenceLength = 3

// blockParser recognizes colon-fenced directives. It is a container parser:
// nested content is parsed as ordinary block markup into the Directive
// node. Option lines directly after the opener are consumed here and never
// reach the content.
type blockParser struct{}

// NewBlockParser returns the directive fence parser.
func NewBlockParser() parser.BlockParser {
	return &blockParser{}
}

// Trigger implements parser.BlockParser.
func (p *blockParser) Trigger() []byte {
	return []byte{':'}
}

// Open implements parser.BlockParser.
func (p *blockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) || line[pos] != ':' {
		return nil, parser.NoChildren
	}

	i := pos
	for i < len(line) && line[i] == ':' {
		i++
	}
	fenceLength := i - pos
	if fenceLength < minFenceLength {
		return nil, parser.NoChildren
	}
	if i >= len(line) || line[i] != '{' {
		return nil, parser.NoChildren
	}

	nameStart := i + 1
	j := nameStart
	for j < len(line) && line[j] != '}' {
		j++
	}
	if j >= len(line) {
		return nil, parser.NoChildren
	}
	name := string(line[nameStart:j])
	if !isDirectiveName(name) {
		return nil, parser.NoChildren
	}

	node := NewDirective(name, fenceLength)
	node.OpenerOffset = segment.Start + pos

	// Everything after the closing brace is the argument.
	argStart := j + 1
	for argStart < len(line) && (line[argStart] == ' ' || line[argStart] == '\t') {
		argStart++
	}
	argStop := len(line)
	for argStop > argStart && isLineSpace(line[argStop-1]) {
		argStop--
	}
	if argStop > argStart {
		node.RawArgument = string(line[argStart:argStop])
		argSeg := text.NewSegment(segment.Start+argStart, segment.Start+argStop)
		tb := ast.NewTextBlock()
		tb.Lines().Append(argSeg)
		node.AppendChild(node, tb)
		node.Argument = tb
	}

	advanceLine(reader, line, segment)
	return node, parser.HasChildren
}

// Continue implements parser.BlockParser.
func (p *blockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	d := node.(*Directive)
	line, segment := reader.PeekLine()

	w, pos := util.IndentWidth(line, reader.LineOffset())
	if w < 4 {
		i := pos
		for i < len(line) && line[i] == ':' {
			i++
		}
		if i-pos >= d.fenceLength && util.IsBlank(line[i:]) {
			advanceLine(reader, line, segment)
			return parser.Close
		}
	}

	if !d.optionsDone {
		if util.IsBlank(line) {
			d.optionsDone = true
			return parser.Continue | parser.HasChildren
		}
		if key, value, ok := parseOptionLine(line[pos:]); ok && w < 4 && pos < len(line) {
			d.Options[key] = value
			advanceLine(reader, line, segment)
			return parser.Continue | parser.HasChildren
		}
		d.optionsDone = true
	}

	return parser.Continue | parser.HasChildren
}

// Close implements parser.BlockParser.
func (p *blockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
}

// CanInterruptParagraph implements parser.BlockParser.
func (p *blockParser) CanInterruptParagraph() bool { return true }

// CanAcceptIndentedLine implements parser.BlockParser.
func (p *blockParser) CanAcceptIndentedLine() bool { return false }

// advanceLine consumes the current line up to (not including) its newline,
// so the line never reaches child block parsers.
func advanceLine(reader text.Reader, line []byte, segment text.Segment) {
	newline := 1
	if len(line) > 0 && line[len(line)-1] != '\n' {
		newline = 0
	}
	reader.Advance(segment.Stop - segment.Start - newline - segment.Padding)
}

// parseOptionLine parses ":key:" or ":key: value". A bare flag maps to "".
func parseOptionLine(line []byte) (string, string, bool) {
	if len(line) < 3 || line[0] != ':' {
		return "", "", false
	}
	i := 1
	for i < len(line) && line[i] != ':' {
		c := line[i]
		if !isNameByte(c) {
			return "", "", false
		}
		i++
	}
	if i == 1 || i >= len(line) {
		return "", "", false
	}
	key := string(line[1:i])
	rest := line[i+1:]
	start := 0
	for start < len(rest) && isLineSpace(rest[start]) {
		start++
	}
	stop := len(rest)
	for stop > start && isLineSpace(rest[stop-1]) {
		stop--
	}
	return key, string(rest[start:stop]), true
}

func isDirectiveName(name string) bool {
	if name == "" {
		return false
	}
	if !isAlpha(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isLineSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
