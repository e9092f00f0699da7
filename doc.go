// Package md2site converts Markdown documents to static HTML pages.
//
// # Quick Start
//
// Create a generator and generate a page:
//
//	gen, err := md2site.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := gen.Generate(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(page.HTML), 0644)
//
// The page contains the final document (page.HTML), the converted body
// (page.Content) and the title used in the template (page.Title).
//
// # Generation Pipeline
//
// Each page goes through these stages:
//
//  1. Preprocessing (BOM, line endings, Unicode NFC)
//  2. Front matter extraction (YAML or TOML)
//  3. Title extraction (front matter title, else the first "# " line)
//  4. Markdown to HTML conversion (native compiler or Goldmark)
//  5. Template substitution ({{ Title }} and {{ Content }})
//  6. CSS injection and base path rewriting
//
// # Native Engine
//
// The native engine implements a small Markdown subset: headings, fenced
// code, quotes, flat lists, paragraphs and the inline forms **bold**,
// _italic_, `code`, [links](url) and ![images](url). Unbalanced inline
// delimiters fail with ErrMalformedMarkdown instead of being rendered
// literally. Content is not HTML-escaped. Use EngineGoldmark for full
// CommonMark with GFM extensions.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := md2site.NewGenerator(
//	    md2site.WithEngine(md2site.EngineGoldmark),
//	    md2site.WithAssetPath("/path/to/site/assets"),
//	    md2site.WithStyle("default"),
//	    md2site.WithBasePath("/blog/"),
//	)
//
// A Generator is safe for concurrent use; the md2site CLI shares one
// across its worker pool.
//
// # Error Handling
//
// Errors wrap sentinel values and carry the failing stage:
//
//	_, err := gen.Generate(ctx, input)
//	if errors.Is(err, md2site.ErrMalformedMarkdown) {
//	    // unbalanced **, _ or `
//	}
//	if errors.Is(err, md2site.ErrNoTitleFound) {
//	    // no "# " heading and no front matter title
//	}
package md2site
