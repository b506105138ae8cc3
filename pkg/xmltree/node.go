package xmltree

import "strings"

// Attr is a non-namespace-declaration attribute of an element
type Attr struct {
	Space string
	Local string
	Value string
}

// Node is an element of a parsed document. Space holds the resolved namespace
// URI of the element name.
type Node struct {
	Space    string
	Local    string
	Attrs    []Attr
	Children []*Node
	Parent   *Node
	Line     int

	scope *Scope
	text  []byte
	// offset into text at which each child starts
	childAt []int
}

// Scope returns the namespace scope in effect on this element
func (n *Node) Scope() *Scope {
	if n == nil {
		return nil
	}
	return n.scope
}

// Is reports whether the node has the given namespace URI and local name
func (n *Node) Is(space, local string) bool {
	return n != nil && n.Space == space && n.Local == local
}

// Attr returns the value of an unqualified attribute
func (n *Node) Attr(local string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Space == "" && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the value of an unqualified attribute or ""
func (n *Node) AttrValue(local string) string {
	v, _ := n.Attr(local)
	return v
}

// Text returns the character data directly inside the element
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return string(n.text)
}

// InnerText returns the character data of the element and all of its
// descendants in document order, so that <p>a <b>b</b> c</p> yields "a b c"
func (n *Node) InnerText() string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	n.writeInnerText(&sb)
	return sb.String()
}

func (n *Node) writeInnerText(sb *strings.Builder) {
	prev := 0
	for i, c := range n.Children {
		at := prev
		if i < len(n.childAt) {
			at = n.childAt[i]
		}
		sb.Write(n.text[prev:at])
		c.writeInnerText(sb)
		prev = at
	}
	sb.Write(n.text[prev:])
}

// ChildrenNamed returns the direct children matching space and local, in
// document order
func (n *Node) ChildrenNamed(space, local string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Is(space, local) {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first direct child matching space and local
func (n *Node) FirstChild(space, local string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Is(space, local) {
			return c
		}
	}
	return nil
}

// Ancestor returns the nearest enclosing element matching space and local
func (n *Node) Ancestor(space, local string) *Node {
	if n == nil {
		return nil
	}
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur.Is(space, local) {
			return cur
		}
	}
	return nil
}

// Walk visits the node and its descendants depth first in document order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
