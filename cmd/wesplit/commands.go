package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesplit/wesplit/internal/config"
	"github.com/wesplit/wesplit/internal/ui"
	"github.com/wesplit/wesplit/internal/view"
)

// Render command flags
var (
	renderSelect string
	renderName   string
	renderTaps   int
	renderFormat string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// renderCmd prints the screen without starting a terminal session
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the screen after applying actions",
	Long: `Build a fresh screen, apply the requested actions in order
(select, then edit name, then taps) and print the resulting view tree.`,
	Example: `  # Initial screen as a styled form
  wesplit render

  # Select Ron, type a name, tap twice, print as JSON
  wesplit render --select Ron --name Luna --taps 2 --format json

  # Indented outline for diffing
  wesplit render --format outline`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderSelect, "select", "", "Student to select")
	renderCmd.Flags().StringVar(&renderName, "name", "", "Text to enter in the name field")
	renderCmd.Flags().IntVar(&renderTaps, "taps", 0, "Number of button taps")
	renderCmd.Flags().StringVar(&renderFormat, "format", "styled", "Output format (styled, outline, json, yaml)")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderTaps < 0 {
		return fmt.Errorf("--taps must not be negative (got %d)", renderTaps)
	}

	prefs, err := setup()
	if err != nil {
		return err
	}

	screen, err := newScreen(prefs)
	if err != nil {
		return err
	}
	defer screen.Close()

	if renderSelect != "" {
		if err := screen.SelectStudent(renderSelect); err != nil {
			return err
		}
	}
	if renderName != "" {
		screen.EditName(renderName)
	}
	for i := 0; i < renderTaps; i++ {
		screen.TapButton()
	}

	tree := screen.Render()
	out := cmd.OutOrStdout()

	switch strings.ToLower(renderFormat) {
	case "styled":
		p := ui.NewPrinter(out)
		p.PrintHeader("Render", "wesplit render", map[string]string{
			"Student": screen.State().SelectedStudent,
			"Taps":    strconv.Itoa(screen.State().TapCount),
		})
		p.Println(ui.RenderTree(tree, p.Width()))

	case "outline":
		fmt.Fprint(out, view.Outline(tree))

	case "json":
		data, err := view.EncodeJSON(tree)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := view.EncodeYAML(tree)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))

	default:
		return fmt.Errorf("unknown format %q (want styled, outline, json or yaml)", renderFormat)
	}

	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := config.CreateDefaultConfig(path); err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration created", map[string]string{"Path": path})
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults and WESPLIT_* environment overrides are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := setup()
		if err != nil {
			return err
		}
		data, err := prefs.Encode()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
