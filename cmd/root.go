package cmd

import (
	"io"

	"github.com/pyneda/soapgen/lib"
	"github.com/pyneda/soapgen/pkg/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var debugLogging bool
var prettyLogs bool

var logCloser io.Closer

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "soapgen",
	Short: "Generate typed service interfaces and enums from WSDL documents",
	Long: `soapgen reads WSDL 1.1 documents and XML schemas, resolves the messages,
parts and enumerations they declare, and generates source code from them.

Every document has to be passed explicitly, imports are not followed.

Examples:
  soapgen generate service.wsdl types.xsd --target go --package quotes
  soapgen generate --url https://example.com/service?wsdl --target typescript
  soapgen inspect service.wsdl --format table`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	cobra.CheckErr(err)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or /etc/soapgen/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Use debug level logging")
	rootCmd.PersistentFlags().BoolVar(&prettyLogs, "pretty", true, "Use pretty logging instead JSON")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		pretty := prettyLogs
		if !cmd.Flags().Changed("pretty") {
			pretty = viper.GetString("logging.console.format") != "json"
		}

		if viper.GetBool("logging.file.enabled") {
			closer, err := lib.ZeroConsoleAndFileLog(viper.GetString("logging.file.path"), pretty)
			if err != nil {
				return err
			}
			logCloser = closer
		} else {
			lib.ZeroConsoleLog(pretty)
		}

		if debugLogging {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
			return nil
		}
		return lib.SetLogLevel(viper.GetString("logging.console.level"))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	cobra.CheckErr(config.LoadConfig())
}
