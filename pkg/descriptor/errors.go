package descriptor

import (
	"fmt"
	"strings"
)

// ReferenceKind names what a failed reference pointed at
type ReferenceKind string

const (
	RefPrefix  ReferenceKind = "prefix"
	RefMessage ReferenceKind = "message"
	RefType    ReferenceKind = "type"
	RefElement ReferenceKind = "element"
)

// ReferenceResolutionError is returned when a reference has an unbound prefix
// or names no declared definition in the target namespace.
type ReferenceResolutionError struct {
	Reference    string        `json:"reference"`
	Kind         ReferenceKind `json:"kind"`
	NamespaceURI string        `json:"namespace_uri,omitempty"`
	Reason       string        `json:"reason"`
}

func (e *ReferenceResolutionError) Error() string {
	if e.NamespaceURI != "" {
		return fmt.Sprintf("cannot resolve %s reference %q in namespace %q: %s", e.Kind, e.Reference, e.NamespaceURI, e.Reason)
	}
	return fmt.Sprintf("cannot resolve %s reference %q: %s", e.Kind, e.Reference, e.Reason)
}

// InvalidEnumValueError is returned when a case value is neither a string,
// an integer nor absent.
type InvalidEnumValueError struct {
	Enum  string `json:"enum"`
	Index int    `json:"index"`
	Value any    `json:"value"`
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("enum %s: case %d has unsupported value %#v (%T)", e.Enum, e.Index, e.Value, e.Value)
}

// ValueClassification records how one raw case value was classified
type ValueClassification struct {
	Index    int         `json:"index"`
	RawValue string      `json:"raw_value"`
	Kind     BackingKind `json:"kind"`
}

// MixedEnumBackingError is returned when the cases of a single enum do not
// share one backing kind. Classifications holds every case, in order.
type MixedEnumBackingError struct {
	Enum            string                `json:"enum"`
	Classifications []ValueClassification `json:"classifications"`
}

func (e *MixedEnumBackingError) Error() string {
	parts := make([]string, 0, len(e.Classifications))
	for _, c := range e.Classifications {
		parts = append(parts, fmt.Sprintf("#%d %q=%s", c.Index, c.RawValue, c.Kind))
	}
	return fmt.Sprintf("enum %s mixes backing kinds: %s", e.Enum, strings.Join(parts, ", "))
}

// Kinds returns the distinct kinds present, in first-seen order
func (e *MixedEnumBackingError) Kinds() []BackingKind {
	seen := make(map[BackingKind]bool)
	var kinds []BackingKind
	for _, c := range e.Classifications {
		if !seen[c.Kind] {
			seen[c.Kind] = true
			kinds = append(kinds, c.Kind)
		}
	}
	return kinds
}

// CaseNameCollisionError is returned when distinct raw values sanitize to the
// same case name and collisions are rejected.
type CaseNameCollisionError struct {
	Enum      string   `json:"enum"`
	CaseName  string   `json:"case_name"`
	RawValues []string `json:"raw_values"`
}

func (e *CaseNameCollisionError) Error() string {
	return fmt.Sprintf("enum %s: values %q all map to case name %s", e.Enum, e.RawValues, e.CaseName)
}
