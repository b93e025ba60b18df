// Package cmd implements the pugltool command line interface.
package cmd

import (
	"os"

	pugl "github.com/openchord/go-pugl"
	"github.com/openchord/go-pugl/internal/config"
	"github.com/openchord/go-pugl/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	cfgFile  string
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "pugltool",
		Short: "pugltool - window and event debugger for the pugl binding",
		Long: `pugltool opens native windows through the pugl binding and inspects
what comes back: the event stream, the drawing path and the loaded
native library. It is the manual test bench for the binding.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				config.SetConfigPath(cfgFile)
			}
			if err := config.Init(); err != nil {
				return err
			}

			cfg := config.Get()
			switch {
			case logLevel != "":
				logger.SetLevel(logLevel)
			case cfg.Logging.LogLevel != "":
				logger.SetLevel(cfg.Logging.LogLevel)
			case os.Getenv("PUGL_LOG_LEVEL") == "":
				// The library logger starts at warn; the tool talks.
				logger.SetLevel("info")
			}

			applyDriverConfig(cfg)
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default ~/.config/pugltool/pugltool.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn, error")
}

// applyDriverConfig maps the configured driver onto the environment
// variable the binding reads when it loads the native library. An
// explicit PUGL_DRIVER in the environment wins over the config file.
func applyDriverConfig(cfg *config.Config) {
	if os.Getenv("PUGL_DRIVER") != "" {
		return
	}
	switch {
	case cfg.Driver.LibraryPath != "":
		os.Setenv("PUGL_DRIVER", cfg.Driver.LibraryPath)
	case cfg.Driver.Name != "":
		os.Setenv("PUGL_DRIVER", cfg.Driver.Name)
	}
}

// configuredBackend maps the configured backend name to the binding's
// backend selector. Anything but "stub" means cairo.
func configuredBackend(cfg *config.Config) pugl.Backend {
	if cfg.Driver.Backend == "stub" {
		return pugl.BackendStub
	}
	return pugl.BackendCairo
}
