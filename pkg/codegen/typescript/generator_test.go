package typescript

import (
	"testing"

	"github.com/pyneda/soapgen/pkg/codegen"
	"github.com/pyneda/soapgen/pkg/descriptor"
	"github.com/pyneda/soapgen/pkg/wsdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xsd(local string) *descriptor.QualifiedReference {
	return &descriptor.QualifiedReference{LocalName: local, NamespaceURI: wsdl.XSDNamespace}
}

func local(name string) *descriptor.QualifiedReference {
	return &descriptor.QualifiedReference{LocalName: name, NamespaceURI: "urn:q"}
}

func quotesUnit() codegen.Unit {
	return codegen.Unit{
		Enums: []descriptor.EnumDescriptor{
			{
				Namespace: "urn:q", Name: "Mode", Backing: descriptor.BackingString, Doc: descriptor.StringPtr("Quote mode"),
				Cases: []descriptor.EnumCase{
					{Name: "NORMAL_MODE", Value: "normal-mode", Doc: "Default"},
					{Name: "EXTENDED", Value: "extended"},
				},
			},
			{
				Namespace: "urn:q", Name: "Level", Backing: descriptor.BackingInteger,
				Cases: []descriptor.EnumCase{{Name: "_1", Value: int64(1)}, {Name: "_2", Value: int64(2)}},
			},
			{
				Namespace: "urn:q", Name: "Flag", Backing: descriptor.BackingUnit,
				Cases: []descriptor.EnumCase{{Name: "A"}, {Name: "B"}},
			},
		},
		Interfaces: []descriptor.InterfaceDescriptor{{
			Name:         "QuotePort",
			NamespaceURI: "portType#urn:q",
			Operations: []descriptor.OperationDescriptor{
				{
					Name: "GetQuote",
					Doc:  descriptor.StringPtr("Returns a quote."),
					Params: []descriptor.ParamDescriptor{
						{Name: "a", TypeRef: xsd("string")},
						{Name: "b", TypeRef: local("Mode")},
						{Name: "when", TypeRef: xsd("dateTime")},
					},
					Returns: []descriptor.ParamDescriptor{{Name: "c", ElementRef: local("Quote")}},
				},
				{Name: "Ping"},
				{
					Name:    "Split",
					Params:  []descriptor.ParamDescriptor{{Name: "delete", TypeRef: xsd("int")}},
					Returns: []descriptor.ParamDescriptor{{Name: "x", TypeRef: xsd("boolean")}, {Name: "y", TypeRef: local("Level")}},
				},
			},
		}},
	}
}

const expectedQuotes = `// Code generated by soapgen. DO NOT EDIT.

/** Quote mode */
export enum Mode {
  /** Default */
  NORMAL_MODE = "normal-mode",
  EXTENDED = "extended",
}

export enum Level {
  _1 = 1,
  _2 = 2,
}

export enum Flag {
  A,
  B,
}

/** Stands in for the schema definition {urn:q}Quote */
export type Quote = unknown;

/** Generated from QuotePort in portType#urn:q */
export interface QuotePort {
  /** Returns a quote. */
  getQuote(a: string, b: Mode, when: Date): Promise<Quote>;
  ping(): Promise<void>;
  split(delete_: number): Promise<{ x: boolean; y: Level }>;
}
`

func TestGenerate(t *testing.T) {
	code, err := NewGenerator("").Generate(quotesUnit())
	require.NoError(t, err)
	assert.Equal(t, expectedQuotes, string(code))
}

func TestGenerateNamespace(t *testing.T) {
	unit := codegen.Unit{Enums: []descriptor.EnumDescriptor{{
		Namespace: "urn:q", Name: "Side", Backing: descriptor.BackingString,
		Cases: []descriptor.EnumCase{{Name: "BUY", Value: "buy"}},
	}}}

	code, err := NewGenerator("Trading").Generate(unit)
	require.NoError(t, err)
	assert.Equal(t, "// Code generated by soapgen. DO NOT EDIT.\n\nexport namespace Trading {\n  export enum Side {\n    BUY = \"buy\",\n  }\n}\n", string(code))
}

func TestGenerateInvalidNamespace(t *testing.T) {
	_, err := NewGenerator("not valid").Generate(codegen.Unit{})
	assert.Error(t, err)
	_, err = NewGenerator("class").Generate(codegen.Unit{})
	assert.Error(t, err)
}

func TestGeneratorMetadata(t *testing.T) {
	g := NewGenerator("")
	assert.Equal(t, "typescript", g.Language())
	assert.Equal(t, ".ts", g.FileExtension())
}

func TestGenerateRepeatedEnumDefinition(t *testing.T) {
	side := descriptor.EnumDescriptor{
		Namespace: "urn:q", Name: "Side", Backing: descriptor.BackingString,
		Cases: []descriptor.EnumCase{{Name: "BUY", Value: "buy"}},
	}
	code, err := NewGenerator("").Generate(codegen.Unit{Enums: []descriptor.EnumDescriptor{side, side}})
	require.NoError(t, err)
	assert.Contains(t, string(code), "export enum Side {")
	assert.Contains(t, string(code), "export enum Side2 {")
}
