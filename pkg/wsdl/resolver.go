package wsdl

import (
	"fmt"

	"github.com/pyneda/soapgen/pkg/descriptor"
	"github.com/pyneda/soapgen/pkg/xmltree"
)

// MessagePart is one wsdl:part of a resolved message. At most one of TypeRef
// and ElementRef is set.
type MessagePart struct {
	Name       string
	TypeRef    *descriptor.QualifiedReference
	ElementRef *descriptor.QualifiedReference
}

// Param converts the part into a descriptor parameter
func (p MessagePart) Param() descriptor.ParamDescriptor {
	return descriptor.ParamDescriptor{
		Name:       p.Name,
		TypeRef:    p.TypeRef,
		ElementRef: p.ElementRef,
	}
}

// Resolver turns references found in a collection into descriptors
type Resolver struct {
	collection *Collection

	// VerifyPartTypes requires part types and elements to name a built-in or
	// a declaration present in the collection
	VerifyPartTypes bool
}

// NewResolver creates a resolver with part type verification enabled
func NewResolver(c *Collection) *Resolver {
	return &Resolver{collection: c, VerifyPartTypes: true}
}

// Collection returns the collection the resolver searches
func (r *Resolver) Collection() *Collection {
	return r.collection
}

// ResolveMessageParts finds the message named by messageRef, interpreted in
// scope, and returns its parts in document order
func (r *Resolver) ResolveMessageParts(messageRef string, scope *xmltree.Scope) ([]MessagePart, error) {
	ref, err := xmltree.Split(messageRef, scope)
	if err != nil {
		return nil, err
	}

	msg, ok := r.collection.Message(ref)
	if !ok {
		return nil, &descriptor.ReferenceResolutionError{
			Reference:    messageRef,
			Kind:         descriptor.RefMessage,
			NamespaceURI: ref.NamespaceURI,
			Reason:       "message not found",
		}
	}

	nodes := msg.ChildrenNamed(WSDLNamespace, "part")
	parts := make([]MessagePart, 0, len(nodes))
	for _, node := range nodes {
		part, err := r.resolvePart(node)
		if err != nil {
			return nil, fmt.Errorf("message %s part %s: %w", ref.LocalName, node.AttrValue("name"), err)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (r *Resolver) resolvePart(node *xmltree.Node) (MessagePart, error) {
	part := MessagePart{Name: node.AttrValue("name")}

	typeAttr, hasType := node.Attr("type")
	elementAttr, hasElement := node.Attr("element")
	if hasType && hasElement {
		return MessagePart{}, &descriptor.ReferenceResolutionError{
			Reference: typeAttr,
			Kind:      descriptor.RefType,
			Reason:    "part declares both type and element",
		}
	}

	if hasType {
		ref, err := xmltree.SplitAt(typeAttr, node)
		if err != nil {
			return MessagePart{}, err
		}
		if r.VerifyPartTypes && !r.typeDeclared(ref) {
			return MessagePart{}, &descriptor.ReferenceResolutionError{
				Reference:    typeAttr,
				Kind:         descriptor.RefType,
				NamespaceURI: ref.NamespaceURI,
				Reason:       "type not declared",
			}
		}
		part.TypeRef = &ref
	}

	if hasElement {
		ref, err := xmltree.SplitAt(elementAttr, node)
		if err != nil {
			return MessagePart{}, err
		}
		if r.VerifyPartTypes {
			if _, ok := r.collection.Element(ref); !ok {
				return MessagePart{}, &descriptor.ReferenceResolutionError{
					Reference:    elementAttr,
					Kind:         descriptor.RefElement,
					NamespaceURI: ref.NamespaceURI,
					Reason:       "element not declared",
				}
			}
		}
		part.ElementRef = &ref
	}

	return part, nil
}

func (r *Resolver) typeDeclared(ref descriptor.QualifiedReference) bool {
	switch ref.NamespaceURI {
	case XSDNamespace:
		return IsXSDBuiltinType(ref.LocalName)
	case SOAPEncodingNamespace:
		// soapenc types such as Array are not declared in service documents
		return true
	}
	_, ok := r.collection.Type(ref)
	return ok
}
