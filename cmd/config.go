package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/openchord/go-pugl/internal/config"
	"github.com/openchord/go-pugl/internal/logger"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pugltool configuration",
	Long:  `Manage pugltool configuration including window defaults and presets.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		logger.Info("Current Configuration:")
		logger.Infof("Config file: %s\n", config.GetConfigPath())

		logger.Info("[Window]")
		logger.Infof("  Title: %s", cfg.Window.Title)
		logger.Infof("  Size: %dx%d", cfg.Window.Width, cfg.Window.Height)
		logger.Infof("  Resizable: %v", cfg.Window.Resizable)
		logger.Infof("  Key Repeat: %v", cfg.Window.KeyRepeat)
		logger.Infof("  Class Name: %s", cfg.Window.ClassName)

		logger.Info("\n[Driver]")
		name := cfg.Driver.Name
		if name == "" {
			name = "auto"
		}
		logger.Infof("  Name: %s", name)
		if cfg.Driver.LibraryPath != "" {
			logger.Infof("  Library Path: %s", cfg.Driver.LibraryPath)
		}
		logger.Infof("  Backend: %s", cfg.Driver.Backend)

		logger.Info("\n[Logging]")
		level := cfg.Logging.LogLevel
		if level == "" {
			level = "(default)"
		}
		logger.Infof("  Log Level: %s", level)

		if len(cfg.Presets) > 0 {
			logger.Info("\n[Presets]")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintln(w, "  Name\tSize\tTitle"); err != nil {
				logger.Errorf("Failed to write header: %v", err)
			}
			for _, p := range cfg.Presets {
				if _, err := fmt.Fprintf(w, "  %s\t%dx%d\t%s\n", p.Name, p.Width, p.Height, p.Title); err != nil {
					logger.Errorf("Failed to write preset: %v", err)
				}
			}
			if err := w.Flush(); err != nil {
				logger.Errorf("Failed to flush writer: %v", err)
			}
		}

		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save current configuration to file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(); err != nil {
			return err
		}
		logger.Infof("Configuration saved to: %s", config.GetConfigPath())
		return nil
	},
}

var configPresetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage window presets",
}

var configPresetAddCmd = &cobra.Command{
	Use:   "add <name> <width> <height>",
	Short: "Add or replace a window preset",
	Long:  `Add a named window preset. The events and demo commands open windows with --preset <name>.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		width, err := strconv.Atoi(args[1])
		if err != nil || width <= 0 {
			return fmt.Errorf("invalid width: %s", args[1])
		}
		height, err := strconv.Atoi(args[2])
		if err != nil || height <= 0 {
			return fmt.Errorf("invalid height: %s", args[2])
		}

		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = name
		}

		preset := config.PresetConfig{
			Name:   name,
			Title:  title,
			Width:  width,
			Height: height,
		}

		if err := config.AddPreset(preset); err != nil {
			return err
		}

		logger.Infof("Added preset '%s' (%dx%d)", name, width, height)
		return nil
	},
}

var configPresetRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if err := config.RemovePreset(name); err != nil {
			return err
		}

		logger.Infof("Removed preset '%s'", name)
		return nil
	},
}

var configPresetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := config.ListPresets()

		if len(presets) == 0 {
			logger.Info("No presets configured")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintln(w, "Name\tSize\tTitle"); err != nil {
			logger.Errorf("Failed to write header: %v", err)
		}
		if _, err := fmt.Fprintln(w, "----\t----\t-----"); err != nil {
			logger.Errorf("Failed to write separator: %v", err)
		}

		for _, p := range presets {
			if _, err := fmt.Fprintf(w, "%s\t%dx%d\t%s\n", p.Name, p.Width, p.Height, p.Title); err != nil {
				logger.Errorf("Failed to write preset: %v", err)
			}
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	// Add subcommands
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSaveCmd)
	configCmd.AddCommand(configPresetCmd)

	// Add preset subcommands
	configPresetCmd.AddCommand(configPresetAddCmd)
	configPresetCmd.AddCommand(configPresetRemoveCmd)
	configPresetCmd.AddCommand(configPresetListCmd)

	// Add flags
	configPresetAddCmd.Flags().String("title", "", "Window title the preset opens with")
}
