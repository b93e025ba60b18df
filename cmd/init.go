package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/openchord/go-pugl/internal/config"
	"github.com/openchord/go-pugl/internal/logger"
	"github.com/openchord/go-pugl/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create the configuration file",
	Long:  `Walk through the window defaults and driver selection and write them to the configuration file.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := config.GetConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			logger.Infof("Configuration file already exists at: %s", configPath)
			logger.Info("Use --force to overwrite")
			return nil
		}
	}

	cfg := config.Get()
	window := cfg.Window
	driver := cfg.Driver

	widthStr := strconv.Itoa(window.Width)
	heightStr := strconv.Itoa(window.Height)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Window title").
				Value(&window.Title),
			huh.NewInput().
				Title("Window width").
				Validate(validateDimension).
				Value(&widthStr),
			huh.NewInput().
				Title("Window height").
				Validate(validateDimension).
				Value(&heightStr),
			huh.NewConfirm().
				Title("Resizable windows?").
				Value(&window.Resizable),
			huh.NewConfirm().
				Title("Deliver repeated keys while held?").
				Value(&window.KeyRepeat),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Native driver").
				Description("auto loads the platform library, mem is the in-memory driver used for tests").
				Options(
					huh.NewOption("auto (platform library)", ""),
					huh.NewOption("x11", "x11"),
					huh.NewOption("mem (in-memory)", "mem"),
				).
				Value(&driver.Name),
			huh.NewSelect[string]().
				Title("Drawing backend").
				Options(
					huh.NewOption("cairo", "cairo"),
					huh.NewOption("stub (no drawing)", "stub"),
				).
				Value(&driver.Backend),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	// Validated above
	window.Width, _ = strconv.Atoi(widthStr)
	window.Height, _ = strconv.Atoi(heightStr)

	if err := config.UpdateWindow(window); err != nil {
		return err
	}
	if err := config.UpdateDriver(driver); err != nil {
		return err
	}

	saved := ui.Message{Type: ui.MessageSuccess, Content: "Configuration saved to " + config.GetConfigPath()}
	fmt.Println(saved.View())
	return nil
}

func validateDimension(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
