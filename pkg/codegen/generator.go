package codegen

import "github.com/pyneda/soapgen/pkg/descriptor"

// Header opens every generated file
const Header = "Code generated by soapgen. DO NOT EDIT."

// Unit is the input of one Generate call
type Unit = descriptor.Unit

// Generator is implemented by every target language emitter
type Generator interface {
	// Generate renders the unit's enums and interfaces as source text
	Generate(unit Unit) ([]byte, error)

	// Language returns the name of the target language (e.g., "go", "typescript")
	Language() string

	// FileExtension returns the file extension for generated files (e.g., ".go", ".ts")
	FileExtension() string
}
