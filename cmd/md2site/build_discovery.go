package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// markdownExts are the extensions treated as pages.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// PageFile is one Markdown source and the page it produces.
type PageFile struct {
	InputPath  string
	OutputPath string
}

// discoverPages finds all Markdown files under contentDir. Each maps to
// outputDir/<rel dir>/<name>.html. Results are sorted by input path.
func discoverPages(contentDir, outputDir string) ([]PageFile, error) {
	var files []PageFile
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !markdownExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		out, err := resolveOutputPath(path, contentDir, outputDir)
		if err != nil {
			return err
		}
		files = append(files, PageFile{InputPath: path, OutputPath: out})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].InputPath < files[j].InputPath })
	return files, nil
}

// resolveOutputPath determines the HTML output path for a Markdown file.
func resolveOutputPath(inputPath, contentDir, outputDir string) (string, error) {
	rel, err := filepath.Rel(contentDir, inputPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", inputPath, err)
	}
	return filepath.Join(outputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".html"), nil
}
