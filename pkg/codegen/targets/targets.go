// Package targets registers the built-in generators
package targets

import (
	"github.com/pyneda/soapgen/pkg/codegen"
	"github.com/pyneda/soapgen/pkg/codegen/golang"
	"github.com/pyneda/soapgen/pkg/codegen/typescript"
)

// Default is the registry with every built-in generator
var Default = New()

// New returns a fresh registry holding the built-in generators
func New() *codegen.Registry {
	r := codegen.NewRegistry()
	r.Register("go", func(packageName string) codegen.Generator {
		return golang.NewGenerator(packageName)
	})
	r.Register("typescript", func(packageName string) codegen.Generator {
		return typescript.NewGenerator(packageName)
	})
	r.Register("ts", func(packageName string) codegen.Generator {
		return typescript.NewGenerator(packageName)
	})
	return r
}
