package generate

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pyneda/soapgen/pkg/descriptor"
)

// Options control one generation run
type Options struct {
	Target          string `json:"target" validate:"required"`
	Package         string `json:"package"`
	Output          string `json:"output" validate:"required"`
	FileName        string `json:"file_name"`
	Workers         int    `json:"workers" validate:"min=1"`
	ContinueOnError bool   `json:"continue_on_error"`
	VerifyTypes     bool   `json:"verify_types"`
	Collisions      string `json:"collisions" validate:"oneof=error suffix"`
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Target:      "go",
		Package:     "soap",
		Output:      ".",
		Workers:     runtime.NumCPU(),
		VerifyTypes: true,
		Collisions:  string(descriptor.CollisionReject),
	}
}

var validate = validator.New()

// Validate checks the struct tags of the options
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		rule := fieldErr.Tag()
		if p := fieldErr.Param(); p != "" {
			rule += "=" + p
		}
		messages = append(messages, fmt.Sprintf("invalid value for %s (%s)", fieldErr.Field(), rule))
	}
	return fmt.Errorf("invalid options: %s", strings.Join(messages, ", "))
}

// EnumBuilder returns the enum builder configured by the options
func (o Options) EnumBuilder() (descriptor.EnumBuilder, error) {
	policy, err := descriptor.ParseCollisionPolicy(o.Collisions)
	if err != nil {
		return descriptor.EnumBuilder{}, err
	}
	return descriptor.EnumBuilder{Collisions: policy}, nil
}
