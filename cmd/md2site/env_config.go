package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "MD2SITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // MD2SITE_CONFIG: config file name or path
	ContentDir  string // MD2SITE_CONTENT_DIR
	OutputDir   string // MD2SITE_OUTPUT_DIR
	StaticDir   string // MD2SITE_STATIC_DIR
	AssetPath   string // MD2SITE_ASSETS: custom asset directory
	Template    string // MD2SITE_TEMPLATE
	Style       string // MD2SITE_STYLE
	BasePath    string // MD2SITE_BASE_PATH
	Engine      string // MD2SITE_ENGINE
	LogLevel    string // MD2SITE_LOG_LEVEL
	LogFormat   string // MD2SITE_LOG_FORMAT
	Workers     int    // MD2SITE_WORKERS
	Drafts      bool   // MD2SITE_DRAFTS
	draftsIsSet bool
}

// knownEnvVars lists valid MD2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":      true,
	"MD2SITE_CONTENT_DIR": true,
	"MD2SITE_OUTPUT_DIR":  true,
	"MD2SITE_STATIC_DIR":  true,
	"MD2SITE_ASSETS":      true,
	"MD2SITE_TEMPLATE":    true,
	"MD2SITE_STYLE":       true,
	"MD2SITE_BASE_PATH":   true,
	"MD2SITE_ENGINE":      true,
	"MD2SITE_LOG_LEVEL":   true,
	"MD2SITE_LOG_FORMAT":  true,
	"MD2SITE_WORKERS":     true,
	"MD2SITE_DRAFTS":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numbers and booleans are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2SITE_CONFIG"),
		ContentDir: getenv("MD2SITE_CONTENT_DIR"),
		OutputDir:  getenv("MD2SITE_OUTPUT_DIR"),
		StaticDir:  getenv("MD2SITE_STATIC_DIR"),
		AssetPath:  getenv("MD2SITE_ASSETS"),
		Template:   getenv("MD2SITE_TEMPLATE"),
		Style:      getenv("MD2SITE_STYLE"),
		BasePath:   getenv("MD2SITE_BASE_PATH"),
		Engine:     getenv("MD2SITE_ENGINE"),
		LogLevel:   getenv("MD2SITE_LOG_LEVEL"),
		LogFormat:  getenv("MD2SITE_LOG_FORMAT"),
	}

	if workers := getenv("MD2SITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if drafts := getenv("MD2SITE_DRAFTS"); drafts != "" {
		if b, err := strconv.ParseBool(drafts); err == nil {
			cfg.Drafts = b
			cfg.draftsIsSet = true
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SITE_* variables.
// Helps catch typos like MD2SITE_OUTPUT instead of MD2SITE_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies set environment values over cfg.
// Called after the config file is loaded and before flags are merged:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setString(&cfg.Content.Dir, env.ContentDir)
	setString(&cfg.Output.Dir, env.OutputDir)
	setString(&cfg.Static.Dir, env.StaticDir)
	setString(&cfg.Assets.BasePath, env.AssetPath)
	setString(&cfg.Template, env.Template)
	setString(&cfg.Style, env.Style)
	setString(&cfg.BasePath, env.BasePath)
	setString(&cfg.Engine, env.Engine)
	setString(&cfg.Log.Level, env.LogLevel)
	setString(&cfg.Log.Format, env.LogFormat)

	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.draftsIsSet {
		cfg.Drafts = env.Drafts
	}
}

// setString overwrites dst when value is non-empty.
func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
