package config

import (
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/pyneda/soapgen/pkg/generate"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. SOAPGEN_GENERATE_TARGET
const EnvPrefix = "SOAPGEN"

// LoadConfig reads config.yaml from /etc/soapgen/ or the working directory,
// unless a file was already set with viper.SetConfigFile
func LoadConfig() error {
	SetDefaultConfig()

	if viper.ConfigFileUsed() == "" {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("/etc/soapgen/")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Debug().Msg("Config file not found, using defaults")
			return nil
		}
		return err
	}
	log.Debug().Str("file", viper.ConfigFileUsed()).Msg("Using config file")
	return nil
}

func SetDefaultConfig() {
	viper.SetDefault("logging.console.level", "info")
	viper.SetDefault("logging.console.format", "pretty")
	viper.SetDefault("logging.file.enabled", false)
	viper.SetDefault("logging.file.path", "soapgen.log")

	viper.SetDefault("generate.target", "go")
	viper.SetDefault("generate.package", "soap")
	viper.SetDefault("generate.output", ".")
	viper.SetDefault("generate.file_name", "")
	viper.SetDefault("generate.workers", runtime.NumCPU())
	viper.SetDefault("generate.continue_on_error", false)
	viper.SetDefault("generate.verify_types", true)

	viper.SetDefault("enum.collisions", "error")
	viper.SetDefault("watch.debounce", "300ms")
}

// Options reads the generate and enum settings into generation options
func Options() (generate.Options, error) {
	opts := generate.Options{
		Target:          viper.GetString("generate.target"),
		Package:         viper.GetString("generate.package"),
		Output:          viper.GetString("generate.output"),
		FileName:        viper.GetString("generate.file_name"),
		Workers:         viper.GetInt("generate.workers"),
		ContinueOnError: viper.GetBool("generate.continue_on_error"),
		VerifyTypes:     viper.GetBool("generate.verify_types"),
		Collisions:      viper.GetString("enum.collisions"),
	}
	return opts, opts.Validate()
}

// WatchDebounce returns the configured quiet period for watch mode
func WatchDebounce() time.Duration {
	return viper.GetDuration("watch.debounce")
}
