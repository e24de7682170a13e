// Package settings manages persistent user settings for the fgobj CLI.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Built-in defaults used when a setting is empty.
const (
	DefaultFormat    = "cli"
	DefaultRedisAddr = "127.0.0.1:6379"
)

// Settings holds persistent user preferences
type Settings struct {
	// DefaultVDOM is applied to manifests that do not name a VDOM
	DefaultVDOM string `json:"default_vdom,omitempty"`

	// DefaultFormat is the render format when --format is not given (cli or api)
	DefaultFormat string `json:"default_format,omitempty"`

	// ManifestDir is searched for relative manifest paths not found in the
	// working directory
	ManifestDir string `json:"manifest_dir,omitempty"`

	// RedisAddr is the outbox used by the export command
	RedisAddr string `json:"redis_addr,omitempty"`

	// RedisDB is the outbox database number
	RedisDB int `json:"redis_db,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fgobj_settings.json"
	}
	return filepath.Join(home, ".fgobj", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// setters maps each settings key to its assignment.
var setters = map[string]func(s *Settings, v string) error{
	"default_vdom": func(s *Settings, v string) error { s.DefaultVDOM = v; return nil },
	"default_format": func(s *Settings, v string) error {
		if v != "" && v != "cli" && v != "api" {
			return fmt.Errorf("default_format must be cli or api, got %q", v)
		}
		s.DefaultFormat = v
		return nil
	},
	"manifest_dir": func(s *Settings, v string) error { s.ManifestDir = v; return nil },
	"redis_addr":   func(s *Settings, v string) error { s.RedisAddr = v; return nil },
	"redis_db": func(s *Settings, v string) error {
		if v == "" {
			s.RedisDB = 0
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("redis_db must be a non-negative integer, got %q", v)
		}
		s.RedisDB = n
		return nil
	},
}

// Keys returns the settable keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns one setting by its JSON key. An empty value resets it.
func (s *Settings) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown setting %q (valid: %v)", key, Keys())
	}
	return set(s, value)
}

// Get returns one setting by its JSON key.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "default_vdom":
		return s.DefaultVDOM, nil
	case "default_format":
		return s.DefaultFormat, nil
	case "manifest_dir":
		return s.ManifestDir, nil
	case "redis_addr":
		return s.RedisAddr, nil
	case "redis_db":
		if s.RedisDB == 0 {
			return "", nil
		}
		return strconv.Itoa(s.RedisDB), nil
	}
	return "", fmt.Errorf("unknown setting %q (valid: %v)", key, Keys())
}

// GetFormat returns the default render format (with fallback)
func (s *Settings) GetFormat() string {
	if s.DefaultFormat != "" {
		return s.DefaultFormat
	}
	return DefaultFormat
}

// GetRedisAddr returns the outbox address (with fallback)
func (s *Settings) GetRedisAddr() string {
	if s.RedisAddr != "" {
		return s.RedisAddr
	}
	return DefaultRedisAddr
}

// ResolveManifest returns path unchanged when it exists or is absolute,
// and otherwise its location under ManifestDir if one is configured.
func (s *Settings) ResolveManifest(path string) string {
	if filepath.IsAbs(path) || s.ManifestDir == "" {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(s.ManifestDir, path)
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
