package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseBuildFlags
// ---------------------------------------------------------------------------

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	env := newTestEnv(nil)
	f, args, err := parseBuildFlags([]string{
		"--content", "docs", "-o", "dist", "-e", "goldmark",
		"-w", "4", "--drafts", "--no-clean", "-v", "/blog",
	}, env.Environment)
	if err != nil {
		t.Fatalf("parseBuildFlags() error = %v", err)
	}

	if f.site.content != "docs" || f.site.output != "dist" {
		t.Errorf("dirs = %q, %q", f.site.content, f.site.output)
	}
	if f.engine != "goldmark" || f.workers != 4 {
		t.Errorf("engine = %q, workers = %d", f.engine, f.workers)
	}
	if !f.drafts || !f.site.noClean || !f.common.verbose {
		t.Error("boolean flags not set")
	}
	if len(args) != 1 || args[0] != "/blog" {
		t.Errorf("positional args = %v, want [/blog]", args)
	}
}

func TestParseBuildFlags_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseBuildFlags([]string{"--pdf"}, newTestEnv(nil).Environment)
		if err == nil {
			t.Error("expected error for unknown flag")
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(nil)
		_, _, err := parseBuildFlags([]string{"--help"}, env.Environment)
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want flag.ErrHelp", err)
		}
		if env.stderr.Len() == 0 {
			t.Error("usage should be printed to stderr")
		}
	})
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Flags over config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags buildFlags
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "empty flags keep config",
			flags: buildFlags{},
			check: func(t *testing.T, cfg *config.Config) {
				if *cfg != *config.DefaultConfig() {
					t.Errorf("config changed: %+v", cfg)
				}
			},
		},
		{
			name:  "directories and assets",
			flags: buildFlags{site: siteFlags{content: "c", output: "o", static: "s"}, assets: assetFlags{style: "default", template: "post", assetPath: "a"}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Content.Dir != "c" || cfg.Output.Dir != "o" || cfg.Static.Dir != "s" {
					t.Errorf("dirs = %+v %+v %+v", cfg.Content, cfg.Output, cfg.Static)
				}
				if cfg.Style != "default" || cfg.Template != "post" || cfg.Assets.BasePath != "a" {
					t.Errorf("assets = %q %q %q", cfg.Style, cfg.Template, cfg.Assets.BasePath)
				}
			},
		},
		{
			name:  "no-clean disables clean",
			flags: buildFlags{site: siteFlags{noClean: true}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Output.Clean {
					t.Error("Output.Clean should be false")
				}
			},
		},
		{
			name:  "verbose raises log level",
			flags: buildFlags{common: commonFlags{verbose: true}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Level != "debug" {
					t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
				}
			},
		},
		{
			name:  "explicit log level wins over verbose",
			flags: buildFlags{common: commonFlags{verbose: true, logLevel: "trace"}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Level != "trace" {
					t.Errorf("Log.Level = %q, want trace", cfg.Log.Level)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			mergeFlags(&tt.flags, cfg)
			tt.check(t, cfg)
		})
	}
}
