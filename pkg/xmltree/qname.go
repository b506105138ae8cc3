package xmltree

import (
	"strings"

	"github.com/pyneda/soapgen/pkg/descriptor"
)

// Split resolves a reference such as "tns:GetQuote" against the namespace
// bindings visible in scope. Unprefixed references take the nearest default
// namespace. Clark notation ("{uri}local") is accepted as already resolved.
func Split(reference string, scope *Scope) (descriptor.QualifiedReference, error) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return descriptor.QualifiedReference{}, &descriptor.ReferenceResolutionError{
			Reference: reference,
			Kind:      descriptor.RefPrefix,
			Reason:    "empty reference",
		}
	}

	if strings.HasPrefix(ref, "{") {
		if idx := strings.Index(ref, "}"); idx > 0 && idx < len(ref)-1 {
			return descriptor.QualifiedReference{
				LocalName:    ref[idx+1:],
				NamespaceURI: ref[1:idx],
			}, nil
		}
		return descriptor.QualifiedReference{}, &descriptor.ReferenceResolutionError{
			Reference: reference,
			Kind:      descriptor.RefPrefix,
			Reason:    "malformed expanded name",
		}
	}

	prefix, local, hasPrefix := strings.Cut(ref, ":")
	if !hasPrefix {
		ns, _ := scope.Lookup("")
		return descriptor.QualifiedReference{LocalName: ref, NamespaceURI: ns}, nil
	}

	if prefix == "" || local == "" || strings.Contains(local, ":") {
		return descriptor.QualifiedReference{}, &descriptor.ReferenceResolutionError{
			Reference: reference,
			Kind:      descriptor.RefPrefix,
			Reason:    "malformed qualified name",
		}
	}

	ns, ok := scope.Lookup(prefix)
	if !ok {
		return descriptor.QualifiedReference{}, &descriptor.ReferenceResolutionError{
			Reference: reference,
			Kind:      descriptor.RefPrefix,
			Reason:    "prefix " + prefix + " is not bound in any enclosing scope",
		}
	}

	return descriptor.QualifiedReference{LocalName: local, NamespaceURI: ns}, nil
}

// SplitAt resolves a reference against the scope of node
func SplitAt(reference string, node *Node) (descriptor.QualifiedReference, error) {
	return Split(reference, node.Scope())
}
