// Package document turns input files into plain text for analysis.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Format selects how a file is converted to text.
type Format int

const (
	// FormatAuto picks markdown for .md/.markdown files and plain otherwise.
	FormatAuto Format = iota
	FormatPlain
	FormatMarkdown
)

// Document is one analysed input.
type Document struct {
	Path string
	Text string
}

// Read loads path and returns its text content.
func Read(path string, format Format) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if format == FormatAuto {
		format = formatFor(path)
	}
	if format == FormatMarkdown {
		return Document{Path: path, Text: PlainText(data)}, nil
	}
	return Document{Path: path, Text: string(data)}, nil
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return FormatMarkdown
	default:
		return FormatPlain
	}
}

// PlainText renders markdown source to prose: inline markup is unwrapped,
// link and image text is kept, and code blocks and raw HTML are dropped.
// Blocks are separated by newlines.
func PlainText(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				buf.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					buf.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				buf.Write(node.Value)
			}
		default:
			if !entering && n.Type() == ast.TypeBlock && buf.Len() > 0 && !endsWithNewline(&buf) {
				buf.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

func endsWithNewline(buf *bytes.Buffer) bool {
	b := buf.Bytes()
	return len(b) > 0 && b[len(b)-1] == '\n'
}

// Expand resolves file arguments. Literal paths are kept as given (they
// must exist); patterns are expanded with doublestar ("**" spans
// directories). The result is sorted with duplicates removed.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		clean := filepath.Clean(p)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, clean)
		}
	}

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			info, err := os.Stat(pattern)
			if err != nil {
				return nil, err
			}
			if info.IsDir() {
				return nil, fmt.Errorf("%s is a directory", pattern)
			}
			add(pattern)
			continue
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, m := range matches {
			add(m)
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
