package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/pipeline"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Output formats of the inspect command.
const (
	inspectFormatPretty = "pretty"
	inspectFormatYAML   = "yaml"
)

// blockReport describes how the native engine sees one block.
type blockReport struct {
	Index int          `yaml:"index"`
	Kind  string       `yaml:"kind"`
	Level int          `yaml:"level,omitempty"`
	Text  string       `yaml:"text"`
	Spans []spanReport `yaml:"spans,omitempty"`
	HTML  string       `yaml:"html,omitempty"`
	Error string       `yaml:"error,omitempty"`
}

// spanReport is one inline span of a heading or paragraph.
type spanReport struct {
	Kind   string `yaml:"kind"`
	Text   string `yaml:"text"`
	Target string `yaml:"target,omitempty"`
}

// frontMatterReport mirrors the recognized front matter keys.
type frontMatterReport struct {
	Title    string         `yaml:"title,omitempty"`
	Template string         `yaml:"template,omitempty"`
	Style    string         `yaml:"style,omitempty"`
	Draft    bool           `yaml:"draft,omitempty"`
	Extra    map[string]any `yaml:"extra,omitempty"`
}

// documentReport is the output of the inspect command.
type documentReport struct {
	Source      string            `yaml:"source"`
	Title       string            `yaml:"title,omitempty"`
	TitleError  string            `yaml:"titleError,omitempty"`
	FrontMatter frontMatterReport `yaml:"frontMatter"`
	Blocks      []blockReport     `yaml:"blocks"`
}

// runInspect prints the block and span structure of one Markdown file.
// Usage: md2site inspect [--no-color] [--format pretty|yaml] <file>
func runInspect(args []string, env *Environment) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	noColor := fs.Bool("no-color", false, "disable colored output")
	format := fs.String("format", inspectFormatPretty, "output format: pretty or yaml")
	fs.Usage = func() { printInspectUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: inspect takes exactly one file", ErrUsage)
	}
	if *format != inspectFormatPretty && *format != inspectFormatYAML {
		return fmt.Errorf("%w: unknown format %q (must be %s or %s)", ErrUsage, *format, inspectFormatPretty, inspectFormatYAML)
	}

	path := fs.Arg(0)
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	report, err := inspectDocument(path, string(content))
	if err != nil {
		return err
	}

	if *format == inspectFormatYAML {
		out, err := yamlutil.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	pp.ColoringEnabled = !*noColor
	_, err = pp.Fprintln(env.Stdout, report)
	return err
}

// inspectDocument builds the report for one document. Block errors are
// recorded in the report instead of aborting, so every block is shown.
func inspectDocument(source, content string) (*documentReport, error) {
	content = (&pipeline.SourcePreprocessor{}).PreprocessMarkdown(context.Background(), content)

	meta, body, err := markdown.SplitFrontMatter(content)
	if err != nil {
		return nil, err
	}

	report := &documentReport{
		Source: source,
		FrontMatter: frontMatterReport{
			Title:    meta.Title,
			Template: meta.Template,
			Style:    meta.Style,
			Draft:    meta.Draft,
			Extra:    meta.Extra,
		},
	}
	if report.Title, err = markdown.ExtractTitle(body); err != nil {
		report.TitleError = err.Error()
	}

	for i, block := range markdown.Segment(body) {
		report.Blocks = append(report.Blocks, inspectBlock(i, block))
	}
	return report, nil
}

// inspectBlock classifies and compiles a single block.
func inspectBlock(index int, block string) blockReport {
	class := markdown.Classify(block)
	r := blockReport{Index: index, Kind: class.Kind.String(), Text: block}
	if class.Kind == markdown.BlockHeading {
		r.Level = class.Level
	}

	if text, ok := inlineText(block, class); ok {
		spans, err := markdown.ParseInline(text)
		if err != nil {
			r.Error = err.Error()
			return r
		}
		for _, s := range spans {
			r.Spans = append(r.Spans, spanReport{Kind: s.Kind.String(), Text: s.Text, Target: s.Target})
		}
	}

	node, err := markdown.CompileBlock(block, class)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	if r.HTML, err = htmlnode.Render(node); err != nil {
		r.Error = err.Error()
	}
	return r
}

// inlineText returns the text a heading or paragraph hands to the inline
// parser. Other kinds parse per item and are shown through their HTML.
func inlineText(block string, class markdown.Classification) (string, bool) {
	switch class.Kind {
	case markdown.BlockHeading:
		return strings.TrimSpace(strings.TrimLeft(block, "#")), true
	case markdown.BlockParagraph:
		lines := strings.Split(block, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
		return strings.Join(lines, " "), true
	}
	return "", false
}
