package xmltree

import (
	"bytes"
	"io"

	"github.com/opendocset/xmltree/node"
)

// Dumper serializes trees to XML markup. Dumping is read-only, so it is
// safe to run concurrently on trees that are not being mutated.
type Dumper struct{}

func (d *Dumper) writeString(out io.Writer, content string) error {
	_, err := io.WriteString(out, content)
	return err
}

// DumpNode writes the markup for n and its descendants to out. Text node
// content is escaped with EncodeValue. Attribute values are emitted
// as-is: callers supply them pre-escaped.
func (d *Dumper) DumpNode(out io.Writer, n node.Node) error {
	if n == nil {
		return node.ErrNilNode
	}
	isText, err := node.IsText(n)
	if err != nil {
		return err
	}
	if isText {
		content, err := n.Content(nil)
		if err != nil {
			return err
		}
		return d.writeString(out, EncodeValue(string(content)))
	}

	name := n.LocalName()
	if err := d.writeString(out, "<"+name); err != nil {
		return err
	}
	if e, ok := n.(*node.Element); ok {
		for _, attr := range e.Attributes(nil) {
			if err := d.writeString(out, " "+attr.Name+`="`+attr.Value+`"`); err != nil {
				return err
			}
		}
	}

	if n.ChildCount() == 0 {
		return d.writeString(out, "/>")
	}

	if err := d.writeString(out, ">"); err != nil {
		return err
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if err := d.DumpNode(out, child); err != nil {
			return err
		}
	}
	return d.writeString(out, "</"+name+">")
}

// Serialize renders n to a string.
func Serialize(n node.Node) (string, error) {
	var buf bytes.Buffer
	var d Dumper
	if err := d.DumpNode(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
