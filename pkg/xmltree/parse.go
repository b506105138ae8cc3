package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// ErrNoRoot is returned when the input holds no element
var ErrNoRoot = errors.New("document has no root element")

// Parse reads an XML document into a node tree. Every node records the
// namespace declarations visible at that element.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := decoder.InputPos()
			return nil, fmt.Errorf("failed to parse XML at line %d: %w", line, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			var parent *Node
			var parentScope *Scope
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
				parentScope = parent.scope
			}

			line, _ := decoder.InputPos()
			node := &Node{
				Space:  t.Name.Space,
				Local:  t.Name.Local,
				Parent: parent,
				Line:   line,
			}

			scope := NewScope(parentScope)
			for _, attr := range t.Attr {
				switch {
				case attr.Name.Space == "xmlns":
					scope.Declare(attr.Name.Local, attr.Value)
				case attr.Name.Space == "" && attr.Name.Local == "xmlns":
					scope.Declare("", attr.Value)
				default:
					node.Attrs = append(node.Attrs, Attr{
						Space: attr.Name.Space,
						Local: attr.Name.Local,
						Value: attr.Value,
					})
				}
			}
			// share the enclosing scope when nothing new is declared
			if scope.declares() || parentScope == nil {
				node.scope = scope
			} else {
				node.scope = parentScope
			}

			if parent != nil {
				parent.childAt = append(parent.childAt, len(parent.text))
				parent.Children = append(parent.Children, node)
			} else if root == nil {
				root = node
			}
			stack = append(stack, node)

		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.text = append(cur.text, t...)
			}

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// ParseBytes parses an in-memory document
func ParseBytes(data []byte) (*Node, error) {
	return Parse(bytes.NewReader(data))
}
