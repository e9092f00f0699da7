package main

import (
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logLevel  string
	logFormat string
}

// siteFlags holds the directories of a build.
type siteFlags struct {
	content string
	output  string
	static  string
	noClean bool
}

// assetFlags holds asset-related flags (CSS, templates, custom asset path).
type assetFlags struct {
	style     string // Name or path for CSS
	template  string // Default page template name
	assetPath string // Override asset directory
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	assets  assetFlags
	engine  string
	workers int
	drafts  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every stage (same as --log-level debug)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: console, json, pretty")
}

// addSiteFlags adds directory flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "markdown source directory (default: content)")
	fs.StringVarP(&f.output, "output", "o", "", "generated site directory (default: public)")
	fs.StringVar(&f.static, "static", "", "directory copied verbatim into the output (default: static)")
	fs.BoolVar(&f.noClean, "no-clean", false, "keep existing files in the output directory")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path injected into pages")
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.assetPath, "assets", "", "custom asset directory (templates/, styles/)")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, env *Environment) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &buildFlags{}

	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: native, goldmark")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "build pages marked draft")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printBuildUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// mergeFlags merges CLI flags into config. Set flags override config values.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	setString(&cfg.Content.Dir, f.site.content)
	setString(&cfg.Output.Dir, f.site.output)
	setString(&cfg.Static.Dir, f.site.static)
	setString(&cfg.Assets.BasePath, f.assets.assetPath)
	setString(&cfg.Template, f.assets.template)
	setString(&cfg.Style, f.assets.style)
	setString(&cfg.Engine, f.engine)
	setString(&cfg.Log.Format, f.common.logFormat)

	if f.site.noClean {
		cfg.Output.Clean = false
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
	if f.drafts {
		cfg.Drafts = true
	}

	switch {
	case f.common.logLevel != "":
		cfg.Log.Level = f.common.logLevel
	case f.common.verbose:
		cfg.Log.Level = "debug"
	}
}
