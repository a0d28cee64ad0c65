package appconf

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all the configuration settings for the dashboard: the port
// the server listens on, the operating environment, where the Pipefy export
// and the logo live, and how requests are logged and limited.
type Config struct {
	Port      int         `yaml:"port"`
	Env       Environment `yaml:"env"`
	ApiKeys   []string    `yaml:"api_keys"`
	RateLimit int         `yaml:"rate_limit"`
	Title     string      `yaml:"title"`
	LogoPath  string      `yaml:"logo_path"`
	Data      DataConfig  `yaml:"data"`
	Log       LogConfig   `yaml:"log"`
}

// DataConfig locates and describes the CSV export.
type DataConfig struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter"` // auto, ",", ";", "tab"
	Encoding  string `yaml:"encoding"`  // auto, utf-8, windows-1252
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Port:      4000,
		Env:       Development,
		RateLimit: 50,
		Title:     "PAINEL EXPERIÊNCIAS INTERATIVAS - TELAS E SALAS",
		LogoPath:  "img/logo.png",
		Data: DataConfig{
			Path:      "data/integracao.csv",
			Delimiter: "auto",
			Encoding:  "auto",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (a
// missing file keeps the defaults), a .env file next to the working
// directory and PAINEL_* environment variables, in that order.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config: %w", err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := LoadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	if err := cfg.applyEnvOverrides(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given files into the process
// environment. Missing files are skipped and set variables win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	if v, ok := get("PAINEL_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PAINEL_PORT %q is not an integer", ErrInvalidConfig, v)
		}
		c.Port = port
	}
	if v, ok := get("PAINEL_ENV"); ok {
		c.Env = EnvFlagToEnvironment(v)
	}
	if v, ok := get("PAINEL_DATA_PATH"); ok {
		c.Data.Path = v
	}
	if v, ok := get("PAINEL_LOGO_PATH"); ok {
		c.LogoPath = v
	}
	if v, ok := get("PAINEL_API_KEYS"); ok {
		c.ApiKeys = SplitKeys(v)
	}
	if v, ok := get("PAINEL_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("PAINEL_RATE_LIMIT"); ok {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PAINEL_RATE_LIMIT %q is not an integer", ErrInvalidConfig, v)
		}
		c.RateLimit = limit
	}
	return nil
}

// SplitKeys parses a comma separated key list, dropping blanks.
func SplitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Validate checks the values a server cannot start without.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.Env == Unknown {
		return fmt.Errorf("%w: unknown environment", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Data.Path) == "" {
		return fmt.Errorf("%w: data path is empty", ErrInvalidConfig)
	}
	if _, err := c.Data.DelimiterRune(); err != nil {
		return err
	}
	switch strings.ToLower(c.Data.Encoding) {
	case "", "auto", "utf-8", "utf8", "windows-1252", "cp1252", "latin1", "iso-8859-1":
	default:
		return fmt.Errorf("%w: unsupported encoding %q", ErrInvalidConfig, c.Data.Encoding)
	}
	return nil
}

// DelimiterRune returns the configured separator, zero for auto.
func (d DataConfig) DelimiterRune() (rune, error) {
	switch strings.ToLower(d.Delimiter) {
	case "", "auto":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	runes := []rune(d.Delimiter)
	if len(runes) != 1 || runes[0] == '"' || runes[0] == '\n' || runes[0] == '\r' {
		return 0, fmt.Errorf("%w: invalid delimiter %q", ErrInvalidConfig, d.Delimiter)
	}
	return runes[0], nil
}
