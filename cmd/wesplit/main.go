// Wesplit is a small terminal form: pick a student, type a name, tap a
// counter.
//
// Usage:
//
//	wesplit [command] [flags]
//
// Running without arguments opens the interactive screen.
// See 'wesplit --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wesplit/wesplit/internal/config"
	"github.com/wesplit/wesplit/internal/form"
	"github.com/wesplit/wesplit/internal/logging"
	"github.com/wesplit/wesplit/internal/tui"
	"github.com/wesplit/wesplit/internal/ui"
	"github.com/wesplit/wesplit/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		ui.NewPrinter(os.Stderr).PrintError("wesplit", err, hintsFor(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wesplit",
	Short: "Student form screen",
	Long: `A terminal form with a student picker, a name field and a tap counter.

Running without a subcommand opens the interactive screen. Use 'render'
to print the screen without a terminal session.`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runScreen,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/wesplit/config.yaml, or $WESPLIT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default silent, or $WESPLIT_LOG_LEVEL)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wesplit %s\n", version.Full())
	},
}

// setup loads preferences and starts logging. Flags win over the file.
func setup() (*config.Preferences, error) {
	prefs, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := logLevel
	if level == "" {
		level = prefs.LogLevel
	}
	if err := logging.Initialize(level, prefs.LogFile); err != nil {
		return nil, err
	}
	return prefs, nil
}

func newScreen(prefs *config.Preferences) (*form.Screen, error) {
	screen, err := form.NewScreen(prefs.ScreenOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return screen, nil
}

func runScreen(cmd *cobra.Command, args []string) error {
	prefs, err := setup()
	if err != nil {
		return err
	}

	screen, err := newScreen(prefs)
	if err != nil {
		return err
	}
	defer screen.Close()

	p := tea.NewProgram(tui.NewModel(screen), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("Screen exited with error", zap.Error(err))
		return fmt.Errorf("screen error: %w", err)
	}

	return nil
}

// hintsFor returns follow-up suggestions for common failures
func hintsFor(err error) []string {
	switch {
	case errors.Is(err, form.ErrUnknownStudent):
		return []string{"Choose a student from the configured roster (see 'wesplit config show')"}
	case form.IsValidationError(err):
		return []string{
			"Check the students list in your config file",
			"Run 'wesplit config path' to find the file in use",
		}
	}
	return nil
}
