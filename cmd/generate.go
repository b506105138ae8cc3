package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pyneda/soapgen/pkg/codegen/targets"
	"github.com/pyneda/soapgen/pkg/config"
	"github.com/pyneda/soapgen/pkg/generate"
	"github.com/pyneda/soapgen/pkg/watch"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	generateCheck bool
	generateWatch bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Generate code from WSDL documents and schemas",
	Long: `Generate interfaces for every portType and enums for every enumerated simple type
found in the given documents. All output goes to a single file in the output directory.

With --check nothing is written: the command fails and prints a diff when the generated
output differs from the file on disk. With --watch local files are regenerated whenever
they change.

Examples:
  soapgen generate service.wsdl --target go --package quotes -o ./quotes
  soapgen generate service.wsdl types.xsd --target typescript --check
  soapgen generate --url https://example.com/service?wsdl -H Authorization="Bearer x"`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addSourceFlags(generateCmd)

	generateCmd.Flags().StringP("target", "t", "go", "Output language (go, typescript)")
	generateCmd.Flags().StringP("package", "p", "soap", "Go package or TypeScript namespace name")
	generateCmd.Flags().StringP("output", "o", ".", "Output directory")
	generateCmd.Flags().String("file-name", "", "Output file name (default derived from the definitions name)")
	generateCmd.Flags().Int("workers", 0, "Number of definitions built in parallel (default number of CPUs)")
	generateCmd.Flags().Bool("continue-on-error", false, "Skip definitions that fail instead of aborting")
	generateCmd.Flags().Bool("verify-types", true, "Require part types and elements to be declared")
	generateCmd.Flags().String("collisions", "error", "Enum case name collision policy (error, suffix)")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "Fail if generated files are out of date instead of writing them")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate when local files change")

	for key, flag := range map[string]string{
		"generate.target":            "target",
		"generate.package":           "package",
		"generate.output":            "output",
		"generate.file_name":         "file-name",
		"generate.workers":           "workers",
		"generate.continue_on_error": "continue-on-error",
		"generate.verify_types":      "verify-types",
		"enum.collisions":            "collisions",
	} {
		cobra.CheckErr(viper.BindPFlag(key, generateCmd.Flags().Lookup(flag)))
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := log.With().Str("component", "generate-cmd").Logger()

	opts, err := config.Options()
	if err != nil {
		return err
	}
	runner, err := generate.NewRunner(opts, targets.Default)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = generateOnce(ctx, runner, args, cmd.OutOrStdout())
	if !generateWatch {
		return err
	}
	if err != nil {
		logger.Error().Err(err).Msg("Generation failed")
	}

	if len(args) == 0 {
		return errors.New("--watch needs at least one local file")
	}
	if len(sourceURLs) > 0 {
		logger.Warn().Strs("urls", sourceURLs).Msg("URLs are not watched, they are fetched again on every change")
	}

	w, err := watch.New(args, config.WatchDebounce(), func(ctx context.Context, changed []string) {
		logger.Info().Strs("files", changed).Msg("Regenerating")
		if err := generateOnce(ctx, runner, args, cmd.OutOrStdout()); err != nil {
			logger.Error().Err(err).Msg("Generation failed")
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info().Strs("files", args).Msg("Watching for changes")
	return w.Run(ctx)
}

func generateOnce(ctx context.Context, runner *generate.Runner, files []string, out io.Writer) error {
	c, err := loadCollection(ctx, files)
	if err != nil {
		return err
	}

	res, err := runner.Run(ctx, c, generateCheck)
	if res != nil {
		for _, f := range res.Failures {
			log.Error().Err(f.Err).Str("kind", f.Kind).Str("name", f.Name).Msg("Definition skipped")
		}
		for _, d := range res.Drift {
			fmt.Fprintf(out, "%s:\n%s\n", d.Path, d.Diff)
		}
	}
	if err != nil {
		return err
	}
	if len(res.Failures) > 0 {
		return fmt.Errorf("%d definitions could not be generated", len(res.Failures))
	}
	return nil
}
