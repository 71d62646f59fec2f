// Package config loads the optional editor configuration file. The file
// is JSON; unknown keys are ignored and a malformed file falls back to
// defaults so a bad config can never keep the editor from starting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config holds the editor settings.
type Config struct {
	// QuitTimes is how many Ctrl-Q presses discard unsaved changes.
	QuitTimes int
	// MessageDuration is how long bottom-bar messages stay visible.
	MessageDuration time.Duration
	// LogFile enables logging to the given path when non-empty.
	LogFile string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		QuitTimes:       3,
		MessageDuration: 10 * time.Second,
		LogLevel:        "info",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tern", "config.json"), nil
}

// Load reads the config file at path. A missing file yields the defaults
// and, best-effort, writes a default file for the user to edit. A
// malformed file yields the defaults along with an error for logging.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			_ = WriteDefault(path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("config %s: not valid JSON", path)
	}

	if v := gjson.GetBytes(data, "quit_times"); v.Exists() && v.Int() > 0 {
		cfg.QuitTimes = int(v.Int())
	}
	if v := gjson.GetBytes(data, "message_duration_secs"); v.Exists() && v.Int() > 0 {
		cfg.MessageDuration = time.Duration(v.Int()) * time.Second
	}
	if v := gjson.GetBytes(data, "log_file"); v.Exists() {
		cfg.LogFile = v.String()
	}
	if v := gjson.GetBytes(data, "log_level"); v.Exists() && v.String() != "" {
		cfg.LogLevel = v.String()
	}
	return cfg, nil
}

// WriteDefault writes the default settings to path, creating parent
// directories as needed. Existing files are left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	def := Default()

	doc := ""
	var err error
	if doc, err = sjson.Set(doc, "quit_times", def.QuitTimes); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "message_duration_secs", int(def.MessageDuration/time.Second)); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "log_file", def.LogFile); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "log_level", def.LogLevel); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc+"\n"), 0o644)
}
