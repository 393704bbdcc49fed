package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDirStructure(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := filepath.Join(t.TempDir(), "custom-cache")
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()

	path, err := configFile()
	if err != nil {
		t.Fatalf("configFile() error: %v", err)
	}
	if want := filepath.Join(home, ".config", appName, "config.toml"); path != want {
		t.Errorf("configFile() = %q, want %q", path, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	path, _ = configFile()
	if want := filepath.Join("/etc/xdg", appName, "config.toml"); path != want {
		t.Errorf("configFile() with XDG_CONFIG_HOME = %q, want %q", path, want)
	}
}
