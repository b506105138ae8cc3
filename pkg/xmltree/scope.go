package xmltree

import "sort"

// XMLNamespace is permanently bound to the "xml" prefix
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// Scope holds the namespace declarations made on one element and links to the
// scope of its enclosing element. Lookups walk outward, so inner declarations
// shadow outer ones.
type Scope struct {
	parent     *Scope
	prefixes   map[string]string
	defaultNS  string
	defaultSet bool
}

// NewScope creates an empty scope nested in parent (which may be nil)
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent}
}

// Declare binds prefix to uri in this scope. The empty prefix sets the default
// namespace; declaring it as "" undeclares any inherited default.
func (s *Scope) Declare(prefix, uri string) {
	if prefix == "" {
		s.defaultNS = uri
		s.defaultSet = true
		return
	}
	if s.prefixes == nil {
		s.prefixes = make(map[string]string, 1)
	}
	s.prefixes[prefix] = uri
}

// Parent returns the enclosing scope, or nil at the document root
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}

// Lookup resolves a prefix. The empty prefix always resolves, to the nearest
// default namespace or to "" when none is declared.
func (s *Scope) Lookup(prefix string) (string, bool) {
	if prefix == "xml" {
		return XMLNamespace, true
	}
	if prefix == "" {
		for cur := s; cur != nil; cur = cur.parent {
			if cur.defaultSet {
				return cur.defaultNS, true
			}
		}
		return "", true
	}
	for cur := s; cur != nil; cur = cur.parent {
		if ns, ok := cur.prefixes[prefix]; ok {
			return ns, true
		}
	}
	return "", false
}

// Bindings flattens every prefix visible from this scope. The default
// namespace, if any, is keyed by "".
func (s *Scope) Bindings() map[string]string {
	result := make(map[string]string)
	var chain []*Scope
	for cur := s; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	// outermost first so inner declarations overwrite
	for i := len(chain) - 1; i >= 0; i-- {
		cur := chain[i]
		if cur.defaultSet {
			result[""] = cur.defaultNS
		}
		for p, ns := range cur.prefixes {
			result[p] = ns
		}
	}
	return result
}

// Prefixes returns the visible prefixes sorted, excluding the default namespace
func (s *Scope) Prefixes() []string {
	var prefixes []string
	for p := range s.Bindings() {
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	sort.Strings(prefixes)
	return prefixes
}

func (s *Scope) declares() bool {
	return s.defaultSet || len(s.prefixes) > 0
}
