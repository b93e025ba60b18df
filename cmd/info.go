package cmd

import (
	"fmt"
	"os"
	"runtime"

	pugl "github.com/openchord/go-pugl"
	"github.com/openchord/go-pugl/internal/config"
	"github.com/openchord/go-pugl/internal/ui"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved native driver and configuration",
	Long: `Show where the configuration came from and which native library the
binding resolves on this machine. Loading the library is attempted, so
a broken installation shows up here first.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	configPath := config.GetConfigPath()
	configState := "missing, using defaults"
	if _, err := os.Stat(configPath); err == nil {
		configState = "loaded"
	}

	configuration := ui.InfoPanel{
		Title: "Configuration",
		Content: []string{
			fmt.Sprintf("file: %s (%s)", configPath, configState),
			fmt.Sprintf("window: %q %dx%d", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height),
			fmt.Sprintf("backend: %s", cfg.Driver.Backend),
			fmt.Sprintf("presets: %d", len(config.ListPresets())),
		},
		Width: 64,
	}
	fmt.Println(configuration.View())

	requested := os.Getenv("PUGL_DRIVER")
	if requested == "" {
		requested = "auto"
	}

	driverLines := []string{
		fmt.Sprintf("requested: %s", requested),
		fmt.Sprintf("platform: %s/%s", runtime.GOOS, runtime.GOARCH),
	}

	name, err := pugl.DriverName()
	if err != nil {
		driverLines = append(driverLines, ui.FormatStatus(false, fmt.Sprintf("load failed: %v", err)))
	} else {
		driverLines = append(driverLines, ui.FormatStatus(true, "loaded: "+name))
	}

	driver := ui.InfoPanel{
		Title:   "Native driver",
		Content: driverLines,
		Width:   64,
	}
	fmt.Println(driver.View())

	return nil
}
