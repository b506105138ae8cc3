package typescript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pyneda/soapgen/pkg/codegen"
	"github.com/pyneda/soapgen/pkg/codegen/writer"
	"github.com/pyneda/soapgen/pkg/descriptor"
	"github.com/pyneda/soapgen/pkg/wsdl"
)

// Generator generates TypeScript interfaces and enums
type Generator struct {
	moduleName string
}

// NewGenerator creates a TypeScript generator. A non-empty moduleName wraps
// the output in an exported namespace.
func NewGenerator(moduleName string) *Generator {
	return &Generator{moduleName: moduleName}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "typescript"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".ts"
}

// Generate renders the unit as a TypeScript module
func (g *Generator) Generate(unit codegen.Unit) ([]byte, error) {
	if g.moduleName != "" && !isIdentifier(g.moduleName) {
		return nil, fmt.Errorf("invalid typescript namespace %q", g.moduleName)
	}

	e := newEmitter(unit)
	w := writer.NewWriter("  ")
	w.WriteLine("// " + codegen.Header)
	w.BlankLine()

	if g.moduleName != "" {
		w.WriteLinef("export namespace %s {", g.moduleName)
		w.Indent()
	}

	e.emit(w)

	if g.moduleName != "" {
		w.Dedent()
		w.WriteLine("}")
	}

	return w.Bytes(), nil
}

type emitter struct {
	unit  codegen.Unit
	index *codegen.TypeIndex
	names *writer.Unique

	enumNames   []string
	enumTypes   map[descriptor.QualifiedReference]string
	ifaceNames  []string
	opaqueRefs  []descriptor.QualifiedReference
	opaqueNames map[descriptor.QualifiedReference]string
}

func newEmitter(unit codegen.Unit) *emitter {
	e := &emitter{
		unit:        unit,
		index:       codegen.NewTypeIndex(unit),
		names:       writer.NewUnique(),
		enumTypes:   make(map[descriptor.QualifiedReference]string),
		opaqueNames: make(map[descriptor.QualifiedReference]string),
	}
	for _, enum := range unit.Enums {
		name := e.names.Name(writer.ExportedName(enum.Name))
		e.enumNames = append(e.enumNames, name)
		// parameters referring to a repeated definition use the first one
		if _, ok := e.enumTypes[codegen.EnumRef(enum)]; !ok {
			e.enumTypes[codegen.EnumRef(enum)] = name
		}
	}
	for _, iface := range unit.Interfaces {
		e.ifaceNames = append(e.ifaceNames, e.names.Name(writer.ExportedName(iface.Name)))
	}
	e.opaqueRefs = e.index.OpaqueRefs(unit)
	for _, ref := range e.opaqueRefs {
		e.opaqueNames[ref] = e.names.Name(writer.ExportedName(ref.LocalName))
	}
	return e
}

func (e *emitter) emit(w *writer.Writer) {
	first := true
	separate := func() {
		if !first {
			w.BlankLine()
		}
		first = false
	}

	for i, enum := range e.unit.Enums {
		separate()
		e.writeEnum(w, enum, e.enumNames[i])
	}

	for _, ref := range e.opaqueRefs {
		separate()
		w.WriteJSDoc("Stands in for the schema definition " + ref.String())
		w.WriteLinef("export type %s = unknown;", e.opaqueNames[ref])
	}

	for i, iface := range e.unit.Interfaces {
		separate()
		e.writeInterface(w, iface, e.ifaceNames[i])
	}
}

func (e *emitter) writeEnum(w *writer.Writer, enum descriptor.EnumDescriptor, name string) {
	if enum.Doc != nil {
		w.WriteJSDoc(*enum.Doc)
	}

	w.WriteBlock(fmt.Sprintf("export enum %s {", name), "}", func() {
		members := writer.NewUnique()
		for _, c := range enum.Cases {
			w.WriteJSDoc(c.Doc)
			member := members.Name(c.Name)
			switch v := c.Value.(type) {
			case string:
				w.WriteLinef("%s = %s,", member, strconv.Quote(v))
			case int64:
				w.WriteLinef("%s = %d,", member, v)
			default:
				w.WriteLinef("%s,", member)
			}
		}
	})
}

func (e *emitter) writeInterface(w *writer.Writer, iface descriptor.InterfaceDescriptor, name string) {
	w.WriteJSDoc(fmt.Sprintf("Generated from %s in %s", iface.Name, iface.NamespaceURI))
	w.WriteBlock(fmt.Sprintf("export interface %s {", name), "}", func() {
		methods := writer.NewUnique()
		for _, op := range iface.Operations {
			if op.Doc != nil {
				w.WriteJSDoc(*op.Doc)
			}
			w.WriteLine(e.signature(methods.Name(writer.LowerName(op.Name)), op))
		}
	})
}

func (e *emitter) signature(method string, op descriptor.OperationDescriptor) string {
	vars := writer.NewUnique()
	params := make([]string, 0, len(op.Params))
	for _, p := range op.Params {
		params = append(params, vars.Name(paramName(p.Name))+": "+e.tsType(p))
	}

	var result string
	switch len(op.Returns) {
	case 0:
		result = "void"
	case 1:
		result = e.tsType(op.Returns[0])
	default:
		fields := writer.NewUnique()
		parts := make([]string, 0, len(op.Returns))
		for _, r := range op.Returns {
			parts = append(parts, fields.Name(paramName(r.Name))+": "+e.tsType(r))
		}
		result = "{ " + strings.Join(parts, "; ") + " }"
	}

	return fmt.Sprintf("%s(%s): Promise<%s>;", method, strings.Join(params, ", "), result)
}

func (e *emitter) tsType(p descriptor.ParamDescriptor) string {
	rt := e.index.Resolve(p)
	switch rt.Kind {
	case codegen.RefEnum:
		return e.enumTypes[rt.Ref]
	case codegen.RefOpaque:
		return e.opaqueNames[rt.Ref]
	case codegen.RefBuiltin:
		return builtinType(rt.Scalar)
	default:
		return "unknown"
	}
}

func builtinType(kind wsdl.ScalarKind) string {
	switch kind {
	case wsdl.ScalarInteger, wsdl.ScalarDecimal:
		return "number"
	case wsdl.ScalarBoolean:
		return "boolean"
	case wsdl.ScalarDateTime:
		return "Date"
	case wsdl.ScalarAny:
		return "unknown"
	default:
		return "string"
	}
}

var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "let": true, "static": true, "yield": true, "await": true,
}

func paramName(name string) string {
	ident := writer.LowerName(name)
	if reserved[ident] {
		return ident + "_"
	}
	return ident
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != "" && !reserved[s]
}
