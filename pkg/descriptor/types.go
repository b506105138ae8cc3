package descriptor

import "fmt"

// QualifiedReference identifies a definition by local name and namespace URI
type QualifiedReference struct {
	LocalName    string `json:"local_name" yaml:"local_name"`
	NamespaceURI string `json:"namespace_uri,omitempty" yaml:"namespace_uri,omitempty"`
}

// String renders the reference in Clark notation ({namespace}local)
func (q QualifiedReference) String() string {
	if q.NamespaceURI == "" {
		return q.LocalName
	}
	return "{" + q.NamespaceURI + "}" + q.LocalName
}

// IsZero reports whether the reference is unset
func (q QualifiedReference) IsZero() bool {
	return q.LocalName == "" && q.NamespaceURI == ""
}

// ParamDescriptor is one parameter or return value of an operation.
// At most one of TypeRef and ElementRef is set.
type ParamDescriptor struct {
	Name       string              `json:"name" yaml:"name"`
	TypeRef    *QualifiedReference `json:"type_ref,omitempty" yaml:"type_ref,omitempty"`
	ElementRef *QualifiedReference `json:"element_ref,omitempty" yaml:"element_ref,omitempty"`
}

// Ref returns whichever reference is set, preferring the type reference
func (p ParamDescriptor) Ref() (QualifiedReference, bool) {
	if p.TypeRef != nil {
		return *p.TypeRef, true
	}
	if p.ElementRef != nil {
		return *p.ElementRef, true
	}
	return QualifiedReference{}, false
}

// OperationDescriptor describes one operation of an interface
type OperationDescriptor struct {
	Name    string            `json:"name" yaml:"name"`
	Doc     *string           `json:"doc,omitempty" yaml:"doc,omitempty"`
	Params  []ParamDescriptor `json:"params" yaml:"params"`
	Returns []ParamDescriptor `json:"returns" yaml:"returns"`
}

// InterfaceDescriptor is the class-level unit handed to emitters
type InterfaceDescriptor struct {
	Name         string                `json:"name" yaml:"name"`
	NamespaceURI string                `json:"namespace_uri" yaml:"namespace_uri"`
	Operations   []OperationDescriptor `json:"operations" yaml:"operations"`
}

// InterfaceNamespace builds the synthesized namespace of an interface so that
// definitions sharing a local name across artifact kinds stay distinct.
func InterfaceNamespace(artifactKind, targetNamespace string) string {
	return artifactKind + "#" + targetNamespace
}

// NewInterface copies operations so the descriptor does not alias caller memory
func NewInterface(name, namespaceURI string, operations []OperationDescriptor) InterfaceDescriptor {
	ops := make([]OperationDescriptor, len(operations))
	copy(ops, operations)
	return InterfaceDescriptor{
		Name:         name,
		NamespaceURI: namespaceURI,
		Operations:   ops,
	}
}

func (d InterfaceDescriptor) String() string {
	return d.Name
}

func (d InterfaceDescriptor) Pretty() string {
	return fmt.Sprintf("Interface: %s | Namespace: %s | Operations: %d", d.Name, d.NamespaceURI, len(d.Operations))
}

func (d InterfaceDescriptor) TableHeaders() []string {
	return []string{"Kind", "Name", "Namespace", "Members"}
}

func (d InterfaceDescriptor) TableRow() []string {
	return []string{"interface", d.Name, d.NamespaceURI, fmt.Sprintf("%d", len(d.Operations))}
}

// BackingKind is the single value kind shared by every case of an enum
type BackingKind string

const (
	BackingString  BackingKind = "string"
	BackingInteger BackingKind = "integer"
	BackingUnit    BackingKind = "unit"
)

// RawEnumCase is an enumeration facet as supplied by a schema extractor.
// Value is a string, a Go integer, or nil when the facet carries no value.
type RawEnumCase struct {
	Value any    `json:"value" yaml:"value"`
	Doc   string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// RawValue returns the textual form of the value used to derive case names
func (r RawEnumCase) RawValue() string {
	if r.Value == nil {
		return ""
	}
	if s, ok := r.Value.(string); ok {
		return s
	}
	return fmt.Sprint(r.Value)
}

// EnumCase is a normalized enumeration case. Value is a string, an int64, or
// nil for unit cases.
type EnumCase struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
	Doc   string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// EnumDescriptor is a normalized, emit-ready enumeration
type EnumDescriptor struct {
	Namespace string      `json:"namespace" yaml:"namespace"`
	Name      string      `json:"name" yaml:"name"`
	Backing   BackingKind `json:"backing" yaml:"backing"`
	Cases     []EnumCase  `json:"cases" yaml:"cases"`
	Doc       *string     `json:"doc,omitempty" yaml:"doc,omitempty"`
}

func (d EnumDescriptor) String() string {
	return d.Name
}

func (d EnumDescriptor) Pretty() string {
	return fmt.Sprintf("Enum: %s | Namespace: %s | Backing: %s | Cases: %d", d.Name, d.Namespace, d.Backing, len(d.Cases))
}

func (d EnumDescriptor) TableHeaders() []string {
	return []string{"Kind", "Name", "Namespace", "Members"}
}

func (d EnumDescriptor) TableRow() []string {
	return []string{"enum(" + string(d.Backing) + ")", d.Name, d.Namespace, fmt.Sprintf("%d", len(d.Cases))}
}

// StringPtr returns nil for an empty string, otherwise a pointer to a copy
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Unit is the set of descriptors emitted together into one output file
type Unit struct {
	Name       string                `json:"name" yaml:"name"`
	Interfaces []InterfaceDescriptor `json:"interfaces" yaml:"interfaces"`
	Enums      []EnumDescriptor      `json:"enums" yaml:"enums"`
}

// IsEmpty reports whether the unit has nothing to emit
func (u Unit) IsEmpty() bool {
	return len(u.Interfaces) == 0 && len(u.Enums) == 0
}
