package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Reading MD2SITE_* variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"MD2SITE_CONFIG":      "site",
		"MD2SITE_CONTENT_DIR": "docs",
		"MD2SITE_OUTPUT_DIR":  "dist",
		"MD2SITE_BASE_PATH":   "/blog/",
		"MD2SITE_ENGINE":      "goldmark",
		"MD2SITE_WORKERS":     "3",
		"MD2SITE_DRAFTS":      "true",
	}
	env := loadEnvConfig(func(k string) string { return vars[k] })

	if env.ConfigPath != "site" {
		t.Errorf("ConfigPath = %q, want %q", env.ConfigPath, "site")
	}
	if env.ContentDir != "docs" || env.OutputDir != "dist" {
		t.Errorf("dirs = %q, %q, want docs, dist", env.ContentDir, env.OutputDir)
	}
	if env.Workers != 3 {
		t.Errorf("Workers = %d, want 3", env.Workers)
	}
	if !env.Drafts || !env.draftsIsSet {
		t.Error("Drafts should be set to true")
	}
}

func TestLoadEnvConfig_InvalidNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers string
		drafts  string
	}{
		{name: "not a number", workers: "many", drafts: "maybe"},
		{name: "negative workers", workers: "-2", drafts: ""},
		{name: "zero workers", workers: "0", drafts: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vars := map[string]string{"MD2SITE_WORKERS": tt.workers, "MD2SITE_DRAFTS": tt.drafts}
			env := loadEnvConfig(func(k string) string { return vars[k] })

			if env.Workers != 0 {
				t.Errorf("Workers = %d, want 0", env.Workers)
			}
			if env.draftsIsSet {
				t.Error("invalid drafts value should be ignored")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Environment over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Drafts = true
	cfg.Style = "from-file"

	applyEnvConfig(&envConfig{
		ContentDir:  "docs",
		BasePath:    "/sub/",
		Workers:     2,
		Drafts:      false,
		draftsIsSet: true,
	}, cfg)

	if cfg.Content.Dir != "docs" {
		t.Errorf("Content.Dir = %q, want %q", cfg.Content.Dir, "docs")
	}
	if cfg.BasePath != "/sub/" {
		t.Errorf("BasePath = %q, want %q", cfg.BasePath, "/sub/")
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if cfg.Drafts {
		t.Error("MD2SITE_DRAFTS=false should override the config file")
	}
	if cfg.Style != "from-file" {
		t.Errorf("Style = %q, unset variables must not override", cfg.Style)
	}
	if cfg.Output.Dir != "public" {
		t.Errorf("Output.Dir = %q, want default %q", cfg.Output.Dir, "public")
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"MD2SITE_OUTPUT=dist",
		"MD2SITE_OUTPUT_DIR=dist",
		"HOME=/root",
	})

	out := buf.String()
	if !strings.Contains(out, "MD2SITE_OUTPUT (typo?)") {
		t.Errorf("expected warning for MD2SITE_OUTPUT, got %q", out)
	}
	if strings.Contains(out, "MD2SITE_OUTPUT_DIR") || strings.Contains(out, "HOME") {
		t.Errorf("unexpected warning in %q", out)
	}
}
