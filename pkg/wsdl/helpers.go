package wsdl

import (
	"strings"

	"github.com/pyneda/soapgen/pkg/xmltree"
)

// TargetNamespace returns the targetNamespace of the nearest enclosing
// wsdl:definitions or xs:schema element, the node itself included
func TargetNamespace(n *xmltree.Node) string {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Is(WSDLNamespace, "definitions") || cur.Is(XSDNamespace, "schema") {
			return cur.AttrValue("targetNamespace")
		}
	}
	return ""
}

// Documentation returns the trimmed text of a wsdl:documentation child, or
// nil when the element has none. Text inside nested markup is kept.
func Documentation(n *xmltree.Node) *string {
	doc := n.FirstChild(WSDLNamespace, "documentation")
	if doc == nil {
		return nil
	}
	text := NormalizeWhitespace(doc.InnerText())
	return &text
}

// Annotation returns the text of xs:annotation/xs:documentation children
// joined by a blank line, or "" when there are none
func Annotation(n *xmltree.Node) string {
	ann := n.FirstChild(XSDNamespace, "annotation")
	if ann == nil {
		return ""
	}
	var parts []string
	for _, d := range ann.ChildrenNamed(XSDNamespace, "documentation") {
		if text := NormalizeWhitespace(d.InnerText()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// NormalizeWhitespace trims each line and drops leading and trailing blank
// lines, keeping the line structure of multi-line documentation
func NormalizeWhitespace(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// IsRemote reports whether source should be fetched over HTTP
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
