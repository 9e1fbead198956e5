package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the editor settings read from the rc file.
type Config struct {
	Wrap        bool
	LineNumbers bool
	Placeholder string
	TabWidth    int
}

// Default returns the settings used when no rc file exists.
func Default() Config {
	return Config{
		Wrap:        false,
		LineNumbers: true,
		Placeholder: "Start typing…",
		TabWidth:    4,
	}
}

// DefaultPath returns ~/.inkpadrc.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inkpadrc"
	}
	return filepath.Join(home, ".inkpadrc")
}

// Load reads KEY=VALUE pairs from path on top of the defaults. A missing file
// is not an error; the INKPAD_PLACEHOLDER environment variable still applies.
func Load(path string) (Config, error) {
	cfg := Default()
	if v := os.Getenv("INKPAD_PLACEHOLDER"); v != "" {
		cfg.Placeholder = v
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "WRAP":
			cfg.Wrap = parseBool(val)
		case "LINE_NUMBERS":
			cfg.LineNumbers = parseBool(val)
		case "PLACEHOLDER":
			cfg.Placeholder = val
		case "TAB_WIDTH":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				cfg.TabWidth = n
			}
		}
	}
	return cfg, nil
}

// Save writes the settings to path in the same KEY=VALUE format Load reads.
func Save(path string, cfg Config) error {
	if cfg.TabWidth <= 0 {
		return fmt.Errorf("tab width must be positive, got %d", cfg.TabWidth)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "WRAP=%s\n", formatBool(cfg.Wrap))
	fmt.Fprintf(&b, "LINE_NUMBERS=%s\n", formatBool(cfg.LineNumbers))
	fmt.Fprintf(&b, "PLACEHOLDER=%s\n", cfg.Placeholder)
	fmt.Fprintf(&b, "TAB_WIDTH=%d\n", cfg.TabWidth)
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
