package transform

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/designkit/internal/directive"
)

// hiddenClass visually hides the root document's leading title; the class
// is defined in the published stylesheet.
const hiddenClass = "sd-d-none"

// RootTitleHider tags the first heading of the configured root document
// with a hiding class. All other documents are left untouched.
type RootTitleHider struct {
	RootDoc string
}

// Transform implements parser.ASTTransformer.
func (t *RootTitleHider) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	if t.RootDoc == "" || directive.DocumentName(pc) != t.RootDoc {
		return
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			addClass(h, hiddenClass)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
}

func addClass(n ast.Node, class string) {
	if existing, ok := n.AttributeString("class"); ok {
		switch v := existing.(type) {
		case []byte:
			merged := append(append([]byte{}, v...), ' ')
			n.SetAttributeString("class", append(merged, class...))
			return
		case string:
			n.SetAttributeString("class", []byte(v+" "+class))
			return
		}
	}
	n.SetAttributeString("class", []byte(class))
}
