package cmd

import (
	"fmt"

	"github.com/pyneda/soapgen/lib"
	"github.com/pyneda/soapgen/pkg/codegen/targets"
	"github.com/pyneda/soapgen/pkg/config"
	"github.com/pyneda/soapgen/pkg/generate"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	inspectFormat string
	inspectKind   string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [files...]",
	Short: "Print the descriptors resolved from WSDL documents",
	Long: `Resolve the given documents and print the interfaces and enums that would be generated,
without generating any code. Definitions that fail to resolve are reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := lib.ParseFormatType(inspectFormat)
		if err != nil {
			return err
		}

		opts, err := config.Options()
		if err != nil {
			return err
		}
		opts.ContinueOnError = true
		runner, err := generate.NewRunner(opts, targets.Default)
		if err != nil {
			return err
		}

		c, err := loadCollection(cmd.Context(), args)
		if err != nil {
			return err
		}
		res, err := runner.Build(cmd.Context(), c)
		if err != nil {
			return err
		}
		for _, f := range res.Failures {
			log.Warn().Err(f.Err).Str("kind", f.Kind).Str("name", f.Name).Msg("Definition skipped")
		}

		out, err := renderInspect(res, format, inspectKind)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addSourceFlags(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "table", "Output format (text, pretty, json, yaml, table)")
	inspectCmd.Flags().StringVarP(&inspectKind, "kind", "k", "all", "Descriptors to print (all, interfaces, enums)")
}

func renderInspect(res *generate.Result, format lib.FormatType, kind string) (string, error) {
	var rows []lib.Formattable
	switch kind {
	case "all", "interfaces", "enums":
	default:
		return "", fmt.Errorf("unknown kind: %s", kind)
	}
	if kind != "enums" {
		for _, d := range res.Interfaces {
			rows = append(rows, d)
		}
	}
	if kind != "interfaces" {
		for _, d := range res.Enums {
			rows = append(rows, d)
		}
	}
	return lib.FormatOutput(rows, format)
}
