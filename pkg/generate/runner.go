// Package generate turns a document collection into generated source files
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyneda/soapgen/lib"
	"github.com/pyneda/soapgen/pkg/codegen"
	"github.com/pyneda/soapgen/pkg/descriptor"
	"github.com/pyneda/soapgen/pkg/wsdl"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// ErrOutOfDate is returned in check mode when generated output differs from
// the files on disk
var ErrOutOfDate = errors.New("generated files are out of date")

// Failure records a definition that could not be turned into a descriptor
type Failure struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Err  error  `json:"-"`
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Kind, f.Name, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// File is a rendered output file
type File struct {
	Path    string
	Content []byte
}

// Drift describes a file whose content on disk differs from what would be
// generated
type Drift struct {
	Path    string
	Missing bool
	Diff    string
}

// Result holds everything a run produced
type Result struct {
	Name       string
	Interfaces []descriptor.InterfaceDescriptor
	Enums      []descriptor.EnumDescriptor
	Failures   []Failure
	Files      []File
	Drift      []Drift
}

// Unit returns the descriptors of the result as one emit unit
func (r *Result) Unit() descriptor.Unit {
	return descriptor.Unit{Name: r.Name, Interfaces: r.Interfaces, Enums: r.Enums}
}

// Runner builds, renders and writes generated code
type Runner struct {
	opts      Options
	generator codegen.Generator
	enums     descriptor.EnumBuilder
	logger    zerolog.Logger
}

// NewRunner validates opts and resolves the target generator from registry
func NewRunner(opts Options, registry *codegen.Registry) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	enums, err := opts.EnumBuilder()
	if err != nil {
		return nil, err
	}
	generator, err := registry.Get(opts.Target, opts.Package)
	if err != nil {
		return nil, err
	}
	return &Runner{
		opts:      opts,
		generator: generator,
		enums:     enums,
		logger:    log.With().Str("component", "generate").Str("target", opts.Target).Logger(),
	}, nil
}

// Options returns the options of the runner
func (r *Runner) Options() Options {
	return r.opts
}

// Build turns every portType and enumeration of c into descriptors. Work is
// spread over the configured number of workers; the result keeps document
// order. Unless ContinueOnError is set, the first failure aborts the build.
func (r *Runner) Build(ctx context.Context, c *wsdl.Collection) (*Result, error) {
	for _, dup := range c.Duplicates() {
		r.logger.Warn().Str("kind", dup.Kind).Str("name", dup.Ref.String()).Msg("Duplicate definition, using the first one")
	}

	resolver := wsdl.NewResolver(c)
	resolver.VerifyPartTypes = r.opts.VerifyTypes

	sources, err := c.ExtractEnums()
	if err != nil {
		return nil, err
	}
	portTypes := c.PortTypes()

	interfaces := make([]descriptor.InterfaceDescriptor, len(portTypes))
	enums := make([]descriptor.EnumDescriptor, len(sources))
	failures := make([]*Failure, len(portTypes)+len(sources))

	p := pool.New().WithContext(ctx).WithMaxGoroutines(r.opts.Workers)
	if !r.opts.ContinueOnError {
		p = p.WithCancelOnError().WithFirstError()
	}

	fail := func(slot int, kind, name string, err error) error {
		failures[slot] = &Failure{Kind: kind, Name: name, Err: err}
		if r.opts.ContinueOnError {
			r.logger.Warn().Err(err).Str("kind", kind).Str("name", name).Msg("Skipping definition")
			return nil
		}
		return err
	}

	for i, pt := range portTypes {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := resolver.BuildInterface(pt)
			if err != nil {
				return fail(i, "portType", pt.AttrValue("name"), err)
			}
			interfaces[i] = d
			r.logger.Debug().Str("interface", d.Name).Int("operations", len(d.Operations)).Msg("Built interface")
			return nil
		})
	}
	for i, src := range sources {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := src.Build(r.enums)
			if err != nil {
				return fail(len(portTypes)+i, "simpleType", src.Name, err)
			}
			enums[i] = d
			r.logger.Debug().Str("enum", d.Name).Str("backing", string(d.Backing)).Msg("Built enum")
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Name: definitionsName(c)}
	for i, d := range interfaces {
		if failures[i] == nil {
			res.Interfaces = append(res.Interfaces, d)
		}
	}
	for i, d := range enums {
		if failures[len(portTypes)+i] == nil {
			res.Enums = append(res.Enums, d)
		}
	}
	for _, f := range failures {
		if f != nil {
			res.Failures = append(res.Failures, *f)
		}
	}

	r.logger.Info().
		Int("interfaces", len(res.Interfaces)).
		Int("enums", len(res.Enums)).
		Int("failures", len(res.Failures)).
		Msg("Built descriptors")
	return res, nil
}

// Render emits the result with the target generator and stores the output
// file in res.Files
func (r *Runner) Render(res *Result) error {
	code, err := r.generator.Generate(res.Unit())
	if err != nil {
		return fmt.Errorf("render %s: %w", r.generator.Language(), err)
	}
	res.Files = []File{{Path: r.outputPath(res.Name), Content: code}}
	return nil
}

func (r *Runner) outputPath(name string) string {
	ext := r.generator.FileExtension()
	fileName := r.opts.FileName
	switch {
	case fileName == "":
		fileName = lib.FileName(name, r.opts.Package, ext)
	case filepath.Ext(fileName) == "":
		fileName += ext
	}
	return filepath.Join(r.opts.Output, fileName)
}

// Write writes res.Files to disk. With check set nothing is written; files
// that differ are recorded in res.Drift and ErrOutOfDate is returned.
func (r *Runner) Write(res *Result, check bool) error {
	res.Drift = nil
	for _, f := range res.Files {
		if check {
			if d, ok := compare(f); ok {
				r.logger.Warn().Str("path", f.Path).Bool("missing", d.Missing).Msg("Generated file is out of date")
				res.Drift = append(res.Drift, d)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(f.Path, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		r.logger.Info().Str("path", f.Path).Int("bytes", len(f.Content)).Msg("Wrote generated file")
	}
	if len(res.Drift) > 0 {
		return ErrOutOfDate
	}
	return nil
}

// Run builds, renders and writes (or checks) the output for c
func (r *Runner) Run(ctx context.Context, c *wsdl.Collection, check bool) (*Result, error) {
	res, err := r.Build(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := r.Render(res); err != nil {
		return res, err
	}
	return res, r.Write(res, check)
}

func compare(f File) (Drift, bool) {
	current, err := os.ReadFile(f.Path)
	if err != nil {
		return Drift{Path: f.Path, Missing: true, Diff: lib.ColorDiff("", string(f.Content))}, true
	}
	if string(current) == string(f.Content) {
		return Drift{}, false
	}
	return Drift{Path: f.Path, Diff: lib.ColorDiff(string(current), string(f.Content))}, true
}

// definitionsName is the name of the first named wsdl:definitions
func definitionsName(c *wsdl.Collection) string {
	for _, doc := range c.Documents() {
		if doc.Root.Is(wsdl.WSDLNamespace, "definitions") {
			if name := doc.Root.AttrValue("name"); name != "" {
				return name
			}
		}
	}
	return ""
}
