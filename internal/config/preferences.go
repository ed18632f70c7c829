package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wesplit/wesplit/internal/form"
	"github.com/wesplit/wesplit/internal/logging"
	"github.com/wesplit/wesplit/internal/view"
)

const (
	appName    = "wesplit"
	configFile = "config.yaml"

	// PathEnvVar selects an explicit configuration file
	PathEnvVar = "WESPLIT_CONFIG"
	envPrefix  = "WESPLIT"

	currentVersion = 1
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// Preferences represents the configuration file
type Preferences struct {
	Version          int      `yaml:"version" mapstructure:"version"`
	Title            string   `yaml:"title" mapstructure:"title"`                           // Navigation bar title
	TitleDisplayMode string   `yaml:"title_display_mode" mapstructure:"title_display_mode"` // inline, large or automatic
	Students         []string `yaml:"students" mapstructure:"students"`                     // Picker roster, in order
	MaxNameLength    int      `yaml:"max_name_length" mapstructure:"max_name_length"`       // 0 = unlimited
	LogLevel         string   `yaml:"log_level,omitempty" mapstructure:"log_level"`         // Empty = silent
	LogFile          string   `yaml:"log_file,omitempty" mapstructure:"log_file"`           // Empty = stderr
}

// Default returns the preferences used when no file exists
func Default() *Preferences {
	return &Preferences{
		Version:          currentVersion,
		Title:            form.DefaultTitle,
		TitleDisplayMode: string(view.DisplayInline),
		Students:         form.DefaultStudents(),
	}
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the configuration file path: WESPLIT_CONFIG when set,
// otherwise config.yaml in GetConfigDir.
func GetConfigPath() (string, error) {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads preferences from path (or GetConfigPath when path is empty),
// applies WESPLIT_* environment overrides and validates the result.
// A missing file yields the defaults.
func Load(path string) (*Preferences, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	def := Default()
	v := viper.New()
	v.SetDefault("version", def.Version)
	v.SetDefault("title", def.Title)
	v.SetDefault("title_display_mode", def.TitleDisplayMode)
	v.SetDefault("students", def.Students)
	v.SetDefault("max_name_length", def.MaxNameLength)
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "")

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	var prefs Preferences
	if err := v.Unmarshal(&prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// WESPLIT_STUDENTS="Luna, Neville" splits on commas but keeps the spaces
	for i, name := range prefs.Students {
		prefs.Students[i] = strings.TrimSpace(name)
	}

	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logging.Debug("Loaded preferences", zap.String("path", path))
	return &prefs, nil
}

// Validate checks the preferences against the screen's requirements
func (p *Preferences) Validate() error {
	if p.Version != currentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", p.Version, currentVersion)
	}
	if _, err := view.ParseDisplayMode(p.TitleDisplayMode); err != nil {
		return &form.ValidationError{Field: "title_display_mode", Value: p.TitleDisplayMode, Err: err}
	}
	if p.MaxNameLength < 0 {
		return &form.ValidationError{Field: "max_name_length", Err: form.ErrNegativeLength}
	}
	if p.LogLevel != "" {
		if _, err := logging.ParseLevel(p.LogLevel); err != nil {
			return err
		}
	}
	return form.ValidateRoster(p.Students)
}

// ScreenOptions converts the preferences into form options
func (p *Preferences) ScreenOptions() []form.Option {
	mode, _ := view.ParseDisplayMode(p.TitleDisplayMode)
	return []form.Option{
		form.WithRoster(p.Students),
		form.WithTitle(p.Title),
		form.WithTitleDisplayMode(mode),
		form.WithMaxNameLength(p.MaxNameLength),
	}
}

// Encode returns the YAML form of the preferences
func (p *Preferences) Encode() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the preferences to path atomically
func (p *Preferences) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := p.Encode()
	if err != nil {
		return err
	}

	header := []byte(`# wesplit configuration file
# Controls how the form screen is set up. Screen state is never stored here.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig writes the default preferences to path unless a file
// already exists there.
func CreateDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	return Default().Save(path)
}
