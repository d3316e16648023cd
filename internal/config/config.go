package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"

	"github.com/jask/focus/internal/input"
)

const (
	ModeAuto = "auto"
	ModeTUI  = "tui"
	ModeLine = "line"
)

// Config holds application configuration.
type Config struct {
	Loop  LoopConfig  `mapstructure:"loop"`
	Keys  KeysConfig  `mapstructure:"keys"`
	UI    UIConfig    `mapstructure:"ui"`
	Debug DebugConfig `mapstructure:"debug"`
}

// LoopConfig holds event loop settings.
type LoopConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// KeysConfig holds key names per action, written the way Bubble Tea names keys.
type KeysConfig struct {
	Quit   []string `mapstructure:"quit"`
	Submit []string `mapstructure:"submit"`
	Reset  []string `mapstructure:"reset"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Mode       string `mapstructure:"mode"`
	AltScreen  bool   `mapstructure:"alt_screen"`
	InputTitle string `mapstructure:"input_title"`
}

// DebugConfig holds diagnostics settings.
type DebugConfig struct {
	LogFile string `mapstructure:"log_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("loop.poll_interval", "100ms")
	v.SetDefault("keys.quit", []string{"q", "ctrl+c"})
	v.SetDefault("keys.submit", []string{"enter"})
	v.SetDefault("keys.reset", []string{"r"})
	v.SetDefault("ui.mode", ModeAuto)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.input_title", "Enter Duration")
	v.SetDefault("debug.log_file", "")
}

// Path returns the config file location: $FOCUS_CONFIG, or
// ~/.config/focus/config.toml.
func Path() string {
	if p := os.Getenv("FOCUS_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "focus", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix FOCUS_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FOCUS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "focus"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FOCUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil && !isMissing(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c.normalize()
}

func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func (c Config) normalize() (Config, error) {
	if c.Loop.PollInterval <= 0 {
		c.Loop.PollInterval = 100 * time.Millisecond
	}
	c.Keys.Quit = cleanKeys(c.Keys.Quit)
	c.Keys.Submit = cleanKeys(c.Keys.Submit)
	c.Keys.Reset = cleanKeys(c.Keys.Reset)
	if err := c.Keys.check(); err != nil {
		return Config{}, err
	}

	c.UI.Mode = strings.ToLower(strings.TrimSpace(c.UI.Mode))
	switch c.UI.Mode {
	case "":
		c.UI.Mode = ModeAuto
	case ModeAuto, ModeTUI, ModeLine:
	default:
		return Config{}, fmt.Errorf("ui.mode: unknown mode %q (did you mean %q?)", c.UI.Mode, closestMode(c.UI.Mode))
	}
	return c, nil
}

func closestMode(m string) string {
	best, bestDist := ModeAuto, -1
	for _, cand := range []string{ModeAuto, ModeTUI, ModeLine} {
		if d := levenshtein.ComputeDistance(m, cand); bestDist < 0 || d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

// check rejects bindings on keys the duration field consumes; they could
// never fire, and a quit bound only to them would leave no way out.
func (k KeysConfig) check() error {
	for _, action := range []struct {
		name string
		keys []string
	}{
		{"keys.quit", k.Quit},
		{"keys.submit", k.Submit},
		{"keys.reset", k.Reset},
	} {
		for _, key := range action.keys {
			if input.EditKey(key) {
				return fmt.Errorf("%s: %q is an editing key and can never fire", action.name, key)
			}
		}
	}
	return nil
}

// cleanKeys trims entries and drops empty ones. Named keys are case-folded;
// single characters keep their case so "Q" and "q" remain distinct.
func cleanKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if len([]rune(k)) > 1 {
			k = strings.ToLower(k)
		}
		out = append(out, k)
	}
	return out
}

// Save writes the provided config to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("loop.poll_interval", cfg.Loop.PollInterval.String())
	v.Set("keys.quit", cfg.Keys.Quit)
	v.Set("keys.submit", cfg.Keys.Submit)
	v.Set("keys.reset", cfg.Keys.Reset)
	v.Set("ui.mode", cfg.UI.Mode)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.input_title", cfg.UI.InputTitle)
	v.Set("debug.log_file", cfg.Debug.LogFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
