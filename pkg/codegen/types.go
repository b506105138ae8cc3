package codegen

import (
	"github.com/pyneda/soapgen/pkg/descriptor"
	"github.com/pyneda/soapgen/pkg/wsdl"
)

// RefKind classifies what a parameter reference points at
type RefKind int

const (
	// RefUntyped is a part without a usable type: no reference or a SOAP encoding type
	RefUntyped RefKind = iota
	// RefBuiltin is an XSD built-in type
	RefBuiltin
	// RefEnum is an enumeration present in the same unit
	RefEnum
	// RefOpaque is a schema type or element whose structure is not generated
	RefOpaque
)

// ResolvedType is the outcome of looking up a parameter's reference
type ResolvedType struct {
	Kind   RefKind
	Ref    descriptor.QualifiedReference
	Scalar wsdl.ScalarKind
}

// TypeIndex classifies parameter references against the enums of a unit
type TypeIndex struct {
	enums map[descriptor.QualifiedReference]bool
}

// NewTypeIndex indexes the enums of unit by namespace and name
func NewTypeIndex(unit Unit) *TypeIndex {
	ix := &TypeIndex{enums: make(map[descriptor.QualifiedReference]bool, len(unit.Enums))}
	for _, e := range unit.Enums {
		ix.enums[EnumRef(e)] = true
	}
	return ix
}

// EnumRef is the reference parameters use to point at an enum
func EnumRef(e descriptor.EnumDescriptor) descriptor.QualifiedReference {
	return descriptor.QualifiedReference{LocalName: e.Name, NamespaceURI: e.Namespace}
}

// Resolve classifies the reference carried by p
func (ix *TypeIndex) Resolve(p descriptor.ParamDescriptor) ResolvedType {
	ref, ok := p.Ref()
	if !ok {
		return ResolvedType{Kind: RefUntyped}
	}
	if ix.enums[ref] {
		return ResolvedType{Kind: RefEnum, Ref: ref}
	}
	if kind, ok := wsdl.BuiltinKindOf(ref); ok {
		return ResolvedType{Kind: RefBuiltin, Ref: ref, Scalar: kind}
	}
	if ref.NamespaceURI == wsdl.SOAPEncodingNamespace {
		return ResolvedType{Kind: RefUntyped, Ref: ref}
	}
	return ResolvedType{Kind: RefOpaque, Ref: ref}
}

// OpaqueRefs lists the references that are neither built-ins nor enums of
// the unit, in first-use order
func (ix *TypeIndex) OpaqueRefs(unit Unit) []descriptor.QualifiedReference {
	seen := make(map[descriptor.QualifiedReference]bool)
	var out []descriptor.QualifiedReference
	visit := func(params []descriptor.ParamDescriptor) {
		for _, p := range params {
			rt := ix.Resolve(p)
			if rt.Kind != RefOpaque || seen[rt.Ref] {
				continue
			}
			seen[rt.Ref] = true
			out = append(out, rt.Ref)
		}
	}
	for _, iface := range unit.Interfaces {
		for _, op := range iface.Operations {
			visit(op.Params)
			visit(op.Returns)
		}
	}
	return out
}

// HasOperations reports whether any interface of unit declares an operation
func HasOperations(unit Unit) bool {
	for _, iface := range unit.Interfaces {
		if len(iface.Operations) > 0 {
			return true
		}
	}
	return false
}
