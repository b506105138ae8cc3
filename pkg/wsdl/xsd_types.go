package wsdl

import "github.com/pyneda/soapgen/pkg/descriptor"

// Document vocabularies recognized by the loader
const (
	WSDLNamespace         = "http://schemas.xmlsoap.org/wsdl/"
	XSDNamespace          = "http://www.w3.org/2001/XMLSchema"
	SOAP11Namespace       = "http://schemas.xmlsoap.org/wsdl/soap/"
	SOAP12Namespace       = "http://schemas.xmlsoap.org/wsdl/soap12/"
	SOAPEncodingNamespace = "http://schemas.xmlsoap.org/soap/encoding/"
)

// ScalarKind groups XSD built-in types by the kind of value they carry
type ScalarKind string

const (
	ScalarString   ScalarKind = "string"
	ScalarInteger  ScalarKind = "integer"
	ScalarDecimal  ScalarKind = "decimal"
	ScalarBoolean  ScalarKind = "boolean"
	ScalarDateTime ScalarKind = "datetime"
	ScalarBinary   ScalarKind = "binary"
	ScalarAny      ScalarKind = "any"
)

var xsdBuiltins = map[string]ScalarKind{
	"string":           ScalarString,
	"normalizedString": ScalarString,
	"token":            ScalarString,
	"language":         ScalarString,
	"NMTOKEN":          ScalarString,
	"NMTOKENS":         ScalarString,
	"Name":             ScalarString,
	"NCName":           ScalarString,
	"ID":               ScalarString,
	"IDREF":            ScalarString,
	"IDREFS":           ScalarString,
	"ENTITY":           ScalarString,
	"ENTITIES":         ScalarString,
	"anyURI":           ScalarString,
	"QName":            ScalarString,
	"NOTATION":         ScalarString,
	"duration":         ScalarString,
	"gYearMonth":       ScalarString,
	"gYear":            ScalarString,
	"gMonthDay":        ScalarString,
	"gDay":             ScalarString,
	"gMonth":           ScalarString,

	"integer":            ScalarInteger,
	"nonPositiveInteger": ScalarInteger,
	"negativeInteger":    ScalarInteger,
	"nonNegativeInteger": ScalarInteger,
	"positiveInteger":    ScalarInteger,
	"long":               ScalarInteger,
	"int":                ScalarInteger,
	"short":              ScalarInteger,
	"byte":               ScalarInteger,
	"unsignedLong":       ScalarInteger,
	"unsignedInt":        ScalarInteger,
	"unsignedShort":      ScalarInteger,
	"unsignedByte":       ScalarInteger,

	"decimal": ScalarDecimal,
	"float":   ScalarDecimal,
	"double":  ScalarDecimal,

	"boolean": ScalarBoolean,

	"dateTime": ScalarDateTime,
	"date":     ScalarDateTime,
	"time":     ScalarDateTime,

	"hexBinary":    ScalarBinary,
	"base64Binary": ScalarBinary,

	"anyType":       ScalarAny,
	"anySimpleType": ScalarAny,
}

// BuiltinKind returns the scalar kind of an XSD built-in type local name
func BuiltinKind(local string) (ScalarKind, bool) {
	k, ok := xsdBuiltins[local]
	return k, ok
}

// IsXSDBuiltinType checks if a type name is a built-in XSD type
func IsXSDBuiltinType(local string) bool {
	_, ok := xsdBuiltins[local]
	return ok
}

// IsXSDIntegerType reports whether the built-in is one of the integer types
func IsXSDIntegerType(local string) bool {
	return xsdBuiltins[local] == ScalarInteger
}

// BuiltinKindOf classifies a resolved reference. Only references into the
// XML Schema namespace are built-ins.
func BuiltinKindOf(ref descriptor.QualifiedReference) (ScalarKind, bool) {
	if ref.NamespaceURI != XSDNamespace {
		return "", false
	}
	return BuiltinKind(ref.LocalName)
}
