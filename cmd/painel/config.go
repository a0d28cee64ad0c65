package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"painel.telasesalas.org/internal/appconf"
)

// parseConfig loads the configuration file named by -config and applies
// every flag that was set explicitly on top of it.
func parseConfig(args []string, output io.Writer) (appconf.Config, error) {
	fs := flag.NewFlagSet("painel", flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := appconf.DefaultConfig()

	configPath := fs.String("config", "painel.yaml", "YAML configuration file (optional)")
	fs.Int("port", defaults.Port, "HTTP server port")
	fs.String("env", defaults.Env.String(), "Environment (development|test|production)")
	fs.String("data", defaults.Data.Path, "Pipefy CSV export")
	fs.String("delimiter", defaults.Data.Delimiter, "CSV delimiter (auto|,|;|tab)")
	fs.String("encoding", defaults.Data.Encoding, "CSV encoding (auto|utf-8|windows-1252)")
	fs.String("logo", defaults.LogoPath, "Logo image shown above the title (optional)")
	fs.String("api-keys", "", "Comma separated API keys; empty leaves the API open")
	fs.Int("rate-limit", defaults.RateLimit, "API requests per second per client; 0 disables limiting")
	fs.String("log-level", defaults.Log.Level, "Log level (debug|info|warn|error)")
	fs.String("log-format", defaults.Log.Format, "Log format (json|text)")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	cfg, err := appconf.Load(*configPath)
	if err != nil {
		return appconf.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		err = applyFlag(&cfg, f.Name, f.Value.String())
	})
	if err != nil {
		return appconf.Config{}, err
	}

	return cfg, cfg.Validate()
}

func applyFlag(cfg *appconf.Config, name, value string) error {
	switch name {
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: -port %q", appconf.ErrInvalidConfig, value)
		}
		cfg.Port = port
	case "env":
		cfg.Env = appconf.EnvFlagToEnvironment(value)
	case "data":
		cfg.Data.Path = value
	case "delimiter":
		cfg.Data.Delimiter = value
	case "encoding":
		cfg.Data.Encoding = value
	case "logo":
		cfg.LogoPath = value
	case "api-keys":
		cfg.ApiKeys = appconf.SplitKeys(value)
	case "rate-limit":
		limit, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: -rate-limit %q", appconf.ErrInvalidConfig, value)
		}
		cfg.RateLimit = limit
	case "log-level":
		cfg.Log.Level = value
	case "log-format":
		cfg.Log.Format = value
	}
	return nil
}
