package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWritePage       = errors.New("failed to write page")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	ErrBuildFailed     = errors.New("build failed")
)

// runBuild generates the whole site.
// Usage: md2site build [flags] [basepath]
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one base path, got %d arguments", ErrUsage, len(positional))
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := resolveConfig(flags, positional, env)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log)
	gen, err := newSiteGenerator(cfg, logger)
	if err != nil {
		return err
	}

	if !fileutil.DirExists(cfg.Content.Dir) {
		return fmt.Errorf("content directory %s: %w%s", cfg.Content.Dir, os.ErrNotExist, hints.ForContentDirectory(cfg.Content.Dir))
	}

	files, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, cfg.Content.Dir)
	}

	if err := prepareOutput(cfg, env, flags.common.quiet); err != nil {
		return err
	}

	start := env.Now()
	results := buildBatch(ctx, gen, files, resolveWorkers(cfg.Workers))

	failed := printResults(results, flags.common.quiet, env)
	if !flags.common.quiet {
		printSummary(results, env.Now().Sub(start), env)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d page(s) failed", ErrBuildFailed, failed, len(results))
	}
	return nil
}

// resolveConfig loads the config file and applies, in order of increasing
// priority, environment variables, flags and the positional base path.
func resolveConfig(flags *buildFlags, positional []string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(configName) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(configName)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if len(positional) == 1 {
		cfg.BasePath = positional[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSiteGenerator creates the page generator for cfg. Stage and block
// events are logged through logger.
func newSiteGenerator(cfg *config.Config, logger stageLogger) (*md2site.Generator, error) {
	engine, err := md2site.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}

	obs := &logObserver{log: logger}
	opts := []md2site.Option{
		md2site.WithEngine(engine),
		md2site.WithAssetPath(cfg.Assets.BasePath),
		md2site.WithTemplate(cfg.Template),
		md2site.WithStyle(cfg.Style),
		md2site.WithBasePath(cfg.BasePath),
		md2site.WithDrafts(cfg.Drafts),
		md2site.WithObserver(obs),
		md2site.WithBlockObserver(obs.ObserveBlock),
	}

	gen, err := md2site.NewGenerator(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating generator: %w", err)
	}
	return gen, nil
}

// prepareOutput cleans or creates the output directory, then copies the
// static directory into it when one exists.
func prepareOutput(cfg *config.Config, env *Environment, quiet bool) error {
	if cfg.Output.Clean {
		if err := fileutil.ResetDir(cfg.Output.Dir); err != nil {
			return fmt.Errorf("%w: cleaning %s: %v%s", ErrWritePage, cfg.Output.Dir, err, hints.ForOutputDirectory())
		}
	} else if err := os.MkdirAll(cfg.Output.Dir, fileutil.DirPerm); err != nil {
		return fmt.Errorf("%w: creating %s: %v%s", ErrWritePage, cfg.Output.Dir, err, hints.ForOutputDirectory())
	}

	if cfg.Static.Dir == "" || !fileutil.DirExists(cfg.Static.Dir) {
		return nil
	}
	n, err := fileutil.CopyDir(cfg.Static.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("copying static files: %w", err)
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Copied %d static file(s) from %s\n", n, cfg.Static.Dir)
	}
	return nil
}
