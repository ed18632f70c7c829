// Package config provides user preferences for the wesplit screen.
//
// Preferences live in a YAML file that follows OS-specific conventions:
//   - Linux: $XDG_CONFIG_HOME/wesplit/config.yaml or $HOME/.config/wesplit/config.yaml
//   - macOS: $HOME/.config/wesplit/config.yaml
//   - Windows: %LOCALAPPDATA%\wesplit\config.yaml
//
// WESPLIT_CONFIG points at an explicit file instead. Every key can also be
// overridden through the environment with the WESPLIT_ prefix, for example
// WESPLIT_TITLE or WESPLIT_MAX_NAME_LENGTH.
//
// # Usage Example
//
//	prefs, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	screen, err := form.NewScreen(prefs.ScreenOptions()...)
//
// The file only describes how the screen is set up. Screen state (the
// selected student, the name, the tap count) is never written to disk.
package config
