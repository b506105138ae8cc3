package wsdl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pyneda/soapgen/pkg/descriptor"
	"github.com/pyneda/soapgen/pkg/xmltree"
)

// maxBaseDepth bounds the walk through chains of derived simple types
const maxBaseDepth = 16

// EnumSource is an xs:enumeration restriction found in a schema, ready to be
// normalized into a descriptor
type EnumSource struct {
	Namespace string
	Name      string
	Base      descriptor.QualifiedReference
	Cases     []descriptor.RawEnumCase
	Doc       *string
	Node      *xmltree.Node
	// Err is set when a facet value cannot be represented, e.g. an
	// unsignedLong value above the int64 range
	Err error
}

// Build normalizes the source with b
func (s EnumSource) Build(b descriptor.EnumBuilder) (descriptor.EnumDescriptor, error) {
	if s.Err != nil {
		return descriptor.EnumDescriptor{}, fmt.Errorf("simpleType %s: %w", s.Name, s.Err)
	}
	d, err := b.Build(s.Namespace, s.Name, s.Cases, s.Doc)
	if err != nil {
		return descriptor.EnumDescriptor{}, fmt.Errorf("simpleType %s: %w", s.Name, err)
	}
	return d, nil
}

// ExtractEnums returns every top-level simple type restricted by enumeration
// facets, plus anonymous ones declared inline on a global element, which take
// the element's name. Facet values of integer-based types become int64. When
// a namespace and name pair is declared more than once only the first
// declaration is returned.
func (c *Collection) ExtractEnums() ([]EnumSource, error) {
	var out []EnumSource
	seen := make(map[descriptor.QualifiedReference]bool)
	for _, schema := range c.schemas {
		tns := schema.AttrValue("targetNamespace")
		for _, child := range schema.Children {
			var st *xmltree.Node
			doc := ""
			switch {
			case child.Is(XSDNamespace, "simpleType"):
				st = child
				doc = Annotation(child)
			case child.Is(XSDNamespace, "element"):
				st = child.FirstChild(XSDNamespace, "simpleType")
				doc = Annotation(st)
				if doc == "" {
					doc = Annotation(child)
				}
			}
			name := child.AttrValue("name")
			if st == nil || name == "" {
				continue
			}

			src, ok, err := c.enumSource(tns, name, st)
			if err != nil {
				return nil, fmt.Errorf("simpleType %s: %w", name, err)
			}
			if !ok {
				continue
			}
			key := descriptor.QualifiedReference{LocalName: name, NamespaceURI: tns}
			if seen[key] {
				continue
			}
			seen[key] = true
			src.Doc = descriptor.StringPtr(doc)
			out = append(out, src)
		}
	}
	return out, nil
}

func (c *Collection) enumSource(tns, name string, st *xmltree.Node) (EnumSource, bool, error) {
	restriction := st.FirstChild(XSDNamespace, "restriction")
	if restriction == nil {
		return EnumSource{}, false, nil
	}
	facets := restriction.ChildrenNamed(XSDNamespace, "enumeration")
	if len(facets) == 0 {
		return EnumSource{}, false, nil
	}

	var base descriptor.QualifiedReference
	if baseAttr, ok := restriction.Attr("base"); ok {
		ref, err := xmltree.SplitAt(baseAttr, restriction)
		if err != nil {
			return EnumSource{}, false, err
		}
		base = ref
	}
	integer := c.integerBased(base, 0)

	var valueErr error
	cases := make([]descriptor.RawEnumCase, 0, len(facets))
	for _, facet := range facets {
		rc := descriptor.RawEnumCase{Doc: Annotation(facet)}
		if value, ok := facet.Attr("value"); ok {
			rc.Value = value
			if integer {
				// integer types collapse whitespace
				n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
				switch {
				case err == nil:
					rc.Value = n
				case errors.Is(err, strconv.ErrRange) && valueErr == nil:
					valueErr = fmt.Errorf("enumeration value %q is out of the int64 range", value)
				}
			}
		}
		cases = append(cases, rc)
	}

	return EnumSource{
		Namespace: tns,
		Name:      name,
		Base:      base,
		Cases:     cases,
		Node:      st,
		Err:       valueErr,
	}, true, nil
}

// integerBased follows restriction bases through declared simple types until
// it reaches an XSD built-in
func (c *Collection) integerBased(ref descriptor.QualifiedReference, depth int) bool {
	if ref.NamespaceURI == XSDNamespace {
		return IsXSDIntegerType(ref.LocalName)
	}
	if depth >= maxBaseDepth {
		return false
	}
	st, ok := c.Type(ref)
	if !ok || st.Local != "simpleType" {
		return false
	}
	restriction := st.FirstChild(XSDNamespace, "restriction")
	baseAttr, ok := restriction.Attr("base")
	if !ok {
		return false
	}
	next, err := xmltree.SplitAt(baseAttr, restriction)
	if err != nil {
		return false
	}
	return c.integerBased(next, depth+1)
}
