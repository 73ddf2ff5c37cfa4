package xmltree

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/opendocset/xmltree/node"
)

// FromHTMLNode deep-imports a tree produced by golang.org/x/net/html
// into the node model. Host text nodes carry over their content; host
// elements become general nodes named after the tag, with attributes
// copied in order; the remaining host kinds (document, comment, doctype)
// become general nodes named after their DOM node name. The import is
// always full and deep, with parent and sibling links established as
// children are attached.
func FromHTMLNode(src *html.Node) (node.Node, error) {
	if src == nil {
		return nil, node.ErrNilNode
	}
	dst, err := convertHTMLNode(src)
	if err != nil {
		return nil, err
	}
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		child, err := FromHTMLNode(c)
		if err != nil {
			return nil, err
		}
		if err := dst.AddChild(child); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func convertHTMLNode(src *html.Node) (node.Node, error) {
	switch src.Type {
	case html.TextNode:
		return node.NewText([]byte(src.Data)), nil
	case html.ElementNode:
		e := node.NewElement(src.Data)
		for _, attr := range src.Attr {
			e.SetAttribute(attr.Key, attr.Val)
		}
		return e, nil
	case html.DocumentNode:
		return node.NewElement("#document"), nil
	case html.CommentNode:
		return node.NewElement("#comment"), nil
	case html.DoctypeNode:
		return node.NewElement(src.Data), nil
	}
	return nil, fmt.Errorf("host node type %d cannot be imported", src.Type)
}
