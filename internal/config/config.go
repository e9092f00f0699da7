// Package config loads and validates the YAML site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxAssetLength    = 100  // Template or style name
	MaxBasePathLength = 2048 // Browser URL limit
	MaxWorkers        = 64
)

// Engine names.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Log settings.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
	LogFormatPretty  = "pretty"
)

// LogLevels lists accepted log.level values, most verbose first.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// configDirName is the directory under the user config dir searched for configs.
const configDirName = "go-md2site"

// Config holds all configuration for a site build.
type Config struct {
	Content  ContentConfig `yaml:"content"`
	Output   OutputConfig  `yaml:"output"`
	Static   StaticConfig  `yaml:"static"`
	Assets   AssetsConfig  `yaml:"assets"`
	Template string        `yaml:"template"` // Page template name (default: "default")
	Style    string        `yaml:"style"`    // CSS style injected into pages (empty = none)
	BasePath string        `yaml:"basePath"` // Prefix for root-relative links (default: "/")
	Engine   string        `yaml:"engine"`   // "native" or "goldmark"
	Workers  int           `yaml:"workers"`  // 0 = auto
	Drafts   bool          `yaml:"drafts"`   // Build pages marked draft
	Log      LogConfig     `yaml:"log"`
}

// ContentConfig defines where Markdown sources live.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines the generated site destination.
type OutputConfig struct {
	Dir   string `yaml:"dir"`
	Clean bool   `yaml:"clean"` // Remove the output dir before building
}

// StaticConfig defines the directory copied verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Skipped when it does not exist
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// LogConfig defines CLI logging options.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Content:  ContentConfig{Dir: "content"},
		Output:   OutputConfig{Dir: "public", Clean: true},
		Static:   StaticConfig{Dir: "static"},
		Assets:   AssetsConfig{BasePath: ""},
		Template: "default",
		Style:    "",
		BasePath: "/",
		Engine:   EngineNative,
		Workers:  0,
		Drafts:   false,
		Log:      LogConfig{Level: "info", Format: LogFormatConsole},
	}
}

// Validate checks values and field lengths. Called automatically by
// LoadConfig, and by the CLI after flags and environment are merged.
func (c *Config) Validate() error {
	errs := validation.Errors{
		"content.dir": validation.Validate(c.Content.Dir,
			validation.Required,
			validation.Length(1, MaxPathLength),
		),
		"output.dir": validation.Validate(c.Output.Dir,
			validation.Required,
			validation.Length(1, MaxPathLength),
			validation.By(c.outsideSources),
		),
		"static.dir":      validation.Validate(c.Static.Dir, validation.Length(0, MaxPathLength)),
		"assets.basePath": validation.Validate(c.Assets.BasePath, validation.Length(0, MaxPathLength)),
		"template": validation.Validate(c.Template,
			validation.Required,
			validation.Length(1, MaxAssetLength),
		),
		"style":    validation.Validate(c.Style, validation.Length(0, MaxAssetLength)),
		"basePath": validation.Validate(c.BasePath, validation.Length(0, MaxBasePathLength)),
		"engine":   validation.Validate(c.Engine, validation.In(EngineNative, EngineGoldmark)),
		"workers":  validation.Validate(c.Workers, validation.Min(0), validation.Max(MaxWorkers)),
		"log.level": validation.Validate(c.Log.Level,
			validation.In(toAny(LogLevels)...),
		),
		"log.format": validation.Validate(c.Log.Format,
			validation.In(LogFormatConsole, LogFormatJSON, LogFormatPretty),
		),
	}

	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// outsideSources rejects an output dir that is, or contains, the content
// dir or the static dir. A clean build removes the whole output dir.
func (c *Config) outsideSources(value any) error {
	out, _ := value.(string)
	if out == "" {
		return nil
	}
	if containsPath(out, c.Content.Dir) {
		return validation.NewError("config.output_contains_content", "must not be or contain content.dir")
	}
	if c.Static.Dir != "" && containsPath(out, c.Static.Dir) {
		return validation.NewError("config.output_contains_static", "must not be or contain static.dir")
	}
	return nil
}

// containsPath reports whether dir is path or one of its ancestors.
// Unresolvable paths count as contained.
func containsPath(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return true
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return true
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
