package golang

import (
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/pyneda/soapgen/pkg/codegen"
	"github.com/pyneda/soapgen/pkg/codegen/writer"
	"github.com/pyneda/soapgen/pkg/descriptor"
	"github.com/pyneda/soapgen/pkg/wsdl"
)

const defaultPackage = "soap"

// Generator generates Go interfaces and typed enums
type Generator struct {
	packageName string
}

// NewGenerator creates a new Go code generator
func NewGenerator(packageName string) *Generator {
	return &Generator{packageName: packageName}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".go"
}

// Generate renders the unit as a gofmt-formatted Go file
func (g *Generator) Generate(unit codegen.Unit) ([]byte, error) {
	pkg := g.packageName
	if pkg == "" {
		pkg = defaultPackage
	}
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid go package name %q", pkg)
	}

	e := newEmitter(unit)
	body := e.emit()

	w := writer.NewWriter("\t")
	w.WriteLine("// " + codegen.Header)
	w.BlankLine()
	w.WriteLinef("package %s", pkg)
	w.BlankLine()

	if len(e.imports) > 0 {
		imports := make([]string, 0, len(e.imports))
		for imp := range e.imports {
			imports = append(imports, imp)
		}
		sort.Strings(imports)
		w.WriteBlock("import (", ")", func() {
			for _, imp := range imports {
				w.WriteLine(strconv.Quote(imp))
			}
		})
		w.BlankLine()
	}
	w.Write(body)

	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated go source: %w", err)
	}
	return src, nil
}

type emitter struct {
	unit    codegen.Unit
	index   *codegen.TypeIndex
	names   *writer.Unique
	imports map[string]bool

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
		imports:     make(map[string]bool),
		enumTypes:   make(map[descriptor.QualifiedReference]string),
		opaqueNames: make(map[descriptor.QualifiedReference]string),
	}

	// type names are reserved before constants so that types keep their names
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

	if codegen.HasOperations(unit) {
		e.imports["context"] = true
	}
	return e
}

func (e *emitter) emit() string {
	w := writer.NewWriter("\t")

	for i, enum := range e.unit.Enums {
		e.writeEnum(w, enum, e.enumNames[i])
		w.BlankLine()
	}

	for _, ref := range e.opaqueRefs {
		name := e.opaqueNames[ref]
		w.WriteLinef("// %s stands in for the schema definition %s", name, ref)
		w.WriteLinef("type %s = any", name)
		w.BlankLine()
	}

	for i, iface := range e.unit.Interfaces {
		e.writeInterface(w, iface, e.ifaceNames[i])
		w.BlankLine()
	}

	return w.String()
}

func (e *emitter) writeEnum(w *writer.Writer, enum descriptor.EnumDescriptor, name string) {
	if enum.Doc != nil && strings.TrimSpace(*enum.Doc) != "" {
		w.WriteDocComment(*enum.Doc)
	} else {
		w.WriteLinef("// %s enumerates the values of %s", name, codegen.EnumRef(enum))
	}

	base := "string"
	switch enum.Backing {
	case descriptor.BackingInteger:
		base = "int64"
	case descriptor.BackingUnit:
		base = "int"
	}
	w.WriteLinef("type %s %s", name, base)

	if len(enum.Cases) == 0 {
		w.BlankLine()
		w.WriteLinef("// Valid reports whether v is a declared %s", name)
		w.WriteBlock(fmt.Sprintf("func (v %s) Valid() bool {", name), "}", func() {
			w.WriteLine("return false")
		})
		return
	}

	constNames := make([]string, len(enum.Cases))
	w.BlankLine()
	w.WriteBlock("const (", ")", func() {
		for i, c := range enum.Cases {
			constNames[i] = e.names.Name(name + writer.ConstName(c.Name))
			w.WriteDocComment(c.Doc)
			switch {
			case enum.Backing == descriptor.BackingUnit && i == 0:
				w.WriteLinef("%s %s = iota", constNames[i], name)
			case enum.Backing == descriptor.BackingUnit:
				w.WriteLine(constNames[i])
			default:
				w.WriteLinef("%s %s = %s", constNames[i], name, literal(c.Value))
			}
		}
	})

	w.BlankLine()
	w.WriteLinef("// Valid reports whether v is a declared %s", name)
	w.WriteBlock(fmt.Sprintf("func (v %s) Valid() bool {", name), "}", func() {
		w.WriteLine("switch v {")
		w.WriteLinef("case %s:", strings.Join(constNames, ", "))
		w.Indent()
		w.WriteLine("return true")
		w.Dedent()
		w.WriteLine("}")
		w.WriteLine("return false")
	})
}

func (e *emitter) writeInterface(w *writer.Writer, iface descriptor.InterfaceDescriptor, name string) {
	w.WriteLinef("// %s is generated from %s in %s", name, iface.Name, iface.NamespaceURI)
	w.WriteBlock(fmt.Sprintf("type %s interface {", name), "}", func() {
		methods := writer.NewUnique()
		for i, op := range iface.Operations {
			if op.Doc != nil {
				w.WriteDocComment(*op.Doc)
			}
			w.WriteLine(e.signature(methods.Name(writer.ExportedName(op.Name)), op))
			if i < len(iface.Operations)-1 {
				w.BlankLine()
			}
		}
	})
}

func (e *emitter) signature(method string, op descriptor.OperationDescriptor) string {
	vars := writer.NewUnique("ctx", "err")

	params := []string{"ctx context.Context"}
	for _, p := range op.Params {
		params = append(params, vars.Name(paramName(p.Name))+" "+e.goType(p))
	}

	var results string
	switch len(op.Returns) {
	case 0:
		results = "error"
	case 1:
		results = "(" + e.goType(op.Returns[0]) + ", error)"
	default:
		named := make([]string, 0, len(op.Returns)+1)
		for _, r := range op.Returns {
			named = append(named, vars.Name(paramName(r.Name))+" "+e.goType(r))
		}
		named = append(named, "err error")
		results = "(" + strings.Join(named, ", ") + ")"
	}

	return fmt.Sprintf("%s(%s) %s", method, strings.Join(params, ", "), results)
}

func (e *emitter) goType(p descriptor.ParamDescriptor) string {
	rt := e.index.Resolve(p)
	switch rt.Kind {
	case codegen.RefEnum:
		return e.enumTypes[rt.Ref]
	case codegen.RefOpaque:
		return e.opaqueNames[rt.Ref]
	case codegen.RefBuiltin:
		t := builtinType(rt.Ref.LocalName, rt.Scalar)
		if strings.HasPrefix(t, "time.") {
			e.imports["time"] = true
		}
		return t
	default:
		return "any"
	}
}

var goBuiltins = map[string]string{
	"long":               "int64",
	"int":                "int32",
	"short":              "int16",
	"byte":               "int8",
	"unsignedLong":       "uint64",
	"unsignedInt":        "uint32",
	"unsignedShort":      "uint16",
	"unsignedByte":       "uint8",
	"nonNegativeInteger": "uint64",
	"positiveInteger":    "uint64",
	"float":              "float32",
}

func builtinType(local string, kind wsdl.ScalarKind) string {
	if t, ok := goBuiltins[local]; ok {
		return t
	}
	switch kind {
	case wsdl.ScalarInteger:
		return "int64"
	case wsdl.ScalarDecimal:
		return "float64"
	case wsdl.ScalarBoolean:
		return "bool"
	case wsdl.ScalarDateTime:
		return "time.Time"
	case wsdl.ScalarBinary:
		return "[]byte"
	case wsdl.ScalarAny:
		return "any"
	default:
		return "string"
	}
}

func paramName(name string) string {
	ident := writer.LowerName(name)
	if token.IsKeyword(ident) {
		return ident + "_"
	}
	return ident
}

func literal(v any) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return strconv.Quote(fmt.Sprint(t))
	}
}
