package wsdl

import (
	"errors"
	"fmt"

	"github.com/pyneda/soapgen/pkg/descriptor"
	"github.com/pyneda/soapgen/pkg/xmltree"
)

// ErrNoDefinitions is returned when a collection is built from no documents
var ErrNoDefinitions = errors.New("no wsdl definitions or xml schema documents")

// Document is one parsed input
type Document struct {
	Source string
	Root   *xmltree.Node
}

// Duplicate is a definition name declared more than once. Kind is
// "message", "type" or "element".
type Duplicate struct {
	Kind string
	Ref  descriptor.QualifiedReference
}

func (d Duplicate) String() string {
	return d.Kind + " " + d.Ref.String()
}

// Collection indexes the definitions of every document passed to it. Lookups
// follow document order, so the first declaration of a name wins.
type Collection struct {
	documents  []Document
	messages   map[descriptor.QualifiedReference][]*xmltree.Node
	types      map[descriptor.QualifiedReference]*xmltree.Node
	elements   map[descriptor.QualifiedReference]*xmltree.Node
	portTypes  []*xmltree.Node
	schemas    []*xmltree.Node
	duplicates []Duplicate
	reported   map[Duplicate]bool
}

// NewCollection indexes documents rooted at wsdl:definitions or xs:schema
func NewCollection(docs ...Document) (*Collection, error) {
	if len(docs) == 0 {
		return nil, ErrNoDefinitions
	}

	c := &Collection{
		messages: make(map[descriptor.QualifiedReference][]*xmltree.Node),
		types:    make(map[descriptor.QualifiedReference]*xmltree.Node),
		elements: make(map[descriptor.QualifiedReference]*xmltree.Node),
		reported: make(map[Duplicate]bool),
	}

	for _, doc := range docs {
		root := doc.Root
		switch {
		case root == nil:
			return nil, fmt.Errorf("%s: %w", doc.Source, xmltree.ErrNoRoot)
		case root.Is(WSDLNamespace, "definitions"):
			c.indexDefinitions(root)
		case root.Is(XSDNamespace, "schema"):
			c.indexSchema(root)
		default:
			return nil, fmt.Errorf("%s: unsupported root element {%s}%s", doc.Source, root.Space, root.Local)
		}
		c.documents = append(c.documents, doc)
	}

	return c, nil
}

func (c *Collection) indexDefinitions(def *xmltree.Node) {
	tns := def.AttrValue("targetNamespace")

	for _, types := range def.ChildrenNamed(WSDLNamespace, "types") {
		for _, schema := range types.ChildrenNamed(XSDNamespace, "schema") {
			c.indexSchema(schema)
		}
	}

	for _, msg := range def.ChildrenNamed(WSDLNamespace, "message") {
		name, ok := msg.Attr("name")
		if !ok {
			continue
		}
		key := descriptor.QualifiedReference{LocalName: name, NamespaceURI: tns}
		if len(c.messages[key]) > 0 {
			c.duplicate("message", key)
		}
		c.messages[key] = append(c.messages[key], msg)
	}

	c.portTypes = append(c.portTypes, def.ChildrenNamed(WSDLNamespace, "portType")...)
}

func (c *Collection) indexSchema(schema *xmltree.Node) {
	tns := schema.AttrValue("targetNamespace")
	c.schemas = append(c.schemas, schema)

	for _, child := range schema.Children {
		if child.Space != XSDNamespace {
			continue
		}
		name, ok := child.Attr("name")
		if !ok {
			continue
		}
		key := descriptor.QualifiedReference{LocalName: name, NamespaceURI: tns}
		switch child.Local {
		case "simpleType", "complexType":
			if _, exists := c.types[key]; exists {
				c.duplicate("type", key)
				continue
			}
			c.types[key] = child
		case "element":
			if _, exists := c.elements[key]; exists {
				c.duplicate("element", key)
				continue
			}
			c.elements[key] = child
		}
	}
}

func (c *Collection) duplicate(kind string, ref descriptor.QualifiedReference) {
	d := Duplicate{Kind: kind, Ref: ref}
	if !c.reported[d] {
		c.reported[d] = true
		c.duplicates = append(c.duplicates, d)
	}
}

// Documents returns the indexed documents in load order
func (c *Collection) Documents() []Document {
	out := make([]Document, len(c.documents))
	copy(out, c.documents)
	return out
}

// PortTypes returns every wsdl:portType in document order
func (c *Collection) PortTypes() []*xmltree.Node {
	out := make([]*xmltree.Node, len(c.portTypes))
	copy(out, c.portTypes)
	return out
}

// Schemas returns every xs:schema, embedded or standalone, in document order
func (c *Collection) Schemas() []*xmltree.Node {
	out := make([]*xmltree.Node, len(c.schemas))
	copy(out, c.schemas)
	return out
}

// Message returns the first wsdl:message declared under ref
func (c *Collection) Message(ref descriptor.QualifiedReference) (*xmltree.Node, bool) {
	matches := c.messages[ref]
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// Type returns the named simple or complex type declared under ref
func (c *Collection) Type(ref descriptor.QualifiedReference) (*xmltree.Node, bool) {
	n, ok := c.types[ref]
	return n, ok
}

// Element returns the global element declared under ref
func (c *Collection) Element(ref descriptor.QualifiedReference) (*xmltree.Node, bool) {
	n, ok := c.elements[ref]
	return n, ok
}

// Duplicates lists message, type and element names declared more than once,
// in first-seen order. Lookups use the first declaration.
func (c *Collection) Duplicates() []Duplicate {
	out := make([]Duplicate, len(c.duplicates))
	copy(out, c.duplicates)
	return out
}
