package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from markdown files")
	fmt.Fprintln(w, "  inspect    Show how a markdown file is parsed")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [flags] [basepath]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate an HTML page for every .md and .markdown file of the content")
	fmt.Fprintln(w, "directory, and copy the static directory into the output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  basepath    Prefix for root-relative links, e.g. /blog/ (default: /)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "      --content <dir>       Markdown sources (default: content)")
	fmt.Fprintln(w, "  -o, --output <dir>        Generated site (default: public)")
	fmt.Fprintln(w, "      --static <dir>        Copied verbatim when it exists (default: static)")
	fmt.Fprintln(w, "      --no-clean            Keep existing files in the output directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generation:")
	fmt.Fprintln(w, "  -e, --engine <name>       Markdown engine: native, goldmark")
	fmt.Fprintln(w, "      --template <name>     Page template (default: default)")
	fmt.Fprintln(w, "      --style <name|path>   CSS style injected into every page")
	fmt.Fprintln(w, "      --assets <dir>        Custom templates/ and styles/ directory")
	fmt.Fprintln(w, "      --drafts              Build pages marked draft")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every stage")
	fmt.Fprintln(w, "      --log-level <level>   trace, debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <fmt>    console, json, pretty")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2SITE_CONFIG, MD2SITE_CONTENT_DIR, MD2SITE_OUTPUT_DIR, MD2SITE_STATIC_DIR,")
	fmt.Fprintln(w, "  MD2SITE_ASSETS, MD2SITE_TEMPLATE, MD2SITE_STYLE, MD2SITE_BASE_PATH,")
	fmt.Fprintln(w, "  MD2SITE_ENGINE, MD2SITE_WORKERS, MD2SITE_DRAFTS, MD2SITE_LOG_LEVEL,")
	fmt.Fprintln(w, "  MD2SITE_LOG_FORMAT")
	fmt.Fprintln(w, "  Flags override environment variables, which override the config file.")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site inspect [--no-color] [--format pretty|yaml] <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the front matter, title, blocks and inline spans of a markdown")
	fmt.Fprintln(w, "file as seen by the native engine.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --format string   Output format: pretty or yaml (default \"pretty\")")
	fmt.Fprintln(w, "      --no-color        Disable colored output (pretty format only)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
