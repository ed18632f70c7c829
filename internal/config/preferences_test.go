package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/wesplit/wesplit/internal/form"
	"github.com/wesplit/wesplit/internal/view"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "wesplit") {
		t.Errorf("GetConfigDir() = %v, should contain 'wesplit'", configDir)
	}

	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		configDir, _ = GetConfigDir()
		if configDir != filepath.Join("/tmp/xdg", "wesplit") {
			t.Errorf("GetConfigDir() with XDG_CONFIG_HOME = %v", configDir)
		}
	}
}

func TestGetConfigPathEnvOverride(t *testing.T) {
	t.Setenv(PathEnvVar, "/etc/wesplit.yaml")

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if path != "/etc/wesplit.yaml" {
		t.Errorf("GetConfigPath() = %v, want /etc/wesplit.yaml", path)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	prefs, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if prefs.Title != "SwiftUI" {
		t.Errorf("Title = %q, want SwiftUI", prefs.Title)
	}
	if prefs.TitleDisplayMode != "inline" {
		t.Errorf("TitleDisplayMode = %q, want inline", prefs.TitleDisplayMode)
	}
	if strings.Join(prefs.Students, ",") != "Harry,Hermione,Ron" {
		t.Errorf("Students = %v", prefs.Students)
	}
	if prefs.MaxNameLength != 0 {
		t.Errorf("MaxNameLength = %d, want 0", prefs.MaxNameLength)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `version: 1
title: Roll Call
title_display_mode: large
students:
  - Luna
  - Neville
max_name_length: 20
`)

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if prefs.Title != "Roll Call" || prefs.TitleDisplayMode != "large" || prefs.MaxNameLength != 20 {
		t.Errorf("Load() = %+v", prefs)
	}
	if strings.Join(prefs.Students, ",") != "Luna,Neville" {
		t.Errorf("Students = %v", prefs.Students)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "version: 1\ntitle: From File\n")
	t.Setenv("WESPLIT_TITLE", "From Env")
	t.Setenv("WESPLIT_STUDENTS", "Luna, Ginny")

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if prefs.Title != "From Env" {
		t.Errorf("Title = %q, want From Env", prefs.Title)
	}
	if strings.Join(prefs.Students, ",") != "Luna,Ginny" {
		t.Errorf("Students = %q", prefs.Students)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"duplicate student", "version: 1\nstudents: [Ron, Ron]\n", form.ErrDuplicateStudent},
		{"blank student", "version: 1\nstudents: [Ron, \"\"]\n", form.ErrBlankStudent},
		{"negative length", "version: 1\nmax_name_length: -5\n", form.ErrNegativeLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}

	for _, content := range []string{
		"version: 2\n",
		"version: 1\ntitle_display_mode: sideways\n",
		"version: 1\nlog_level: loud\n",
		"version: [\n",
	} {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("Load(%q) should fail", content)
		}
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	prefs := Default()
	prefs.Title = "Saved"
	prefs.Students = []string{"Cho", "Cedric"}
	if err := prefs.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after Save")
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "# wesplit configuration file") {
		t.Errorf("saved file missing header:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Title != "Saved" || strings.Join(loaded.Students, ",") != "Cho,Cedric" {
		t.Errorf("reloaded = %+v", loaded)
	}
}

func TestCreateDefaultConfigRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := CreateDefaultConfig(path); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if err := CreateDefaultConfig(path); err == nil {
		t.Error("second CreateDefaultConfig() should fail")
	}
}

func TestScreenOptions(t *testing.T) {
	prefs := Default()
	prefs.Students = []string{"Luna", "Neville"}
	prefs.TitleDisplayMode = "large"
	prefs.MaxNameLength = 2

	screen, err := form.NewScreen(prefs.ScreenOptions()...)
	if err != nil {
		t.Fatalf("NewScreen() error = %v", err)
	}
	if screen.State().SelectedStudent != "Luna" {
		t.Errorf("SelectedStudent = %q, want Luna", screen.State().SelectedStudent)
	}
	if screen.Render().DisplayMode != view.DisplayLarge {
		t.Errorf("DisplayMode = %q, want large", screen.Render().DisplayMode)
	}
	screen.EditName("Luna")
	if screen.State().Name != "Lu" {
		t.Errorf("Name = %q, want Lu", screen.State().Name)
	}
}
