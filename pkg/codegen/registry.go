package codegen

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownTarget is returned for a language no generator is registered for
var ErrUnknownTarget = errors.New("unknown generation target")

// Factory builds a generator for the given package or module name
type Factory func(packageName string) Generator

// Registry maps target language names to generator factories
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Factory)}
}

// Register adds a factory under language, replacing any previous one
func (r *Registry) Register(language string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[strings.ToLower(language)] = factory
}

// Get returns a generator for language
func (r *Registry) Get(language, packageName string) (Generator, error) {
	r.mu.RLock()
	factory, ok := r.generators[strings.ToLower(language)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownTarget, language, strings.Join(r.Languages(), ", "))
	}
	return factory(packageName), nil
}

// Languages returns the registered language names, sorted
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.generators))
	for lang := range r.generators {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}
