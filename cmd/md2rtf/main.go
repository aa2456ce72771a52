// Command md2rtf converts Markdown files and document templates to RTF.
//
// Usage:
//
//	md2rtf [flags] input
//
// The input format is chosen by file extension: .md is parsed as
// Markdown, .json and .yaml/.yml as document templates. The output
// path defaults to the input path with an .rtf extension.
//
//	md2rtf -title "Notes" -page letter notes.md
//	md2rtf -o out.rtf invoice.json
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xavi-mat/simplertf"
	"github.com/xavi-mat/simplertf/doctpl"
	"github.com/xavi-mat/simplertf/mdconv"
)

func main() {
	var (
		output = flag.String("o", "", "output file (default: input with .rtf extension)")
		title  = flag.String("title", "", "document title (markdown input only)")
		author = flag.String("author", "", "document author (markdown input only)")
		page   = flag.String("page", "", "page-layout preset (markdown input only)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: md2rtf [flags] input.{md,json,yaml}\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	out := *output
	if out == "" {
		ext := filepath.Ext(input)
		out = strings.TrimSuffix(input, ext) + ".rtf"
	}

	if err := run(input, out, *title, *author, *page); err != nil {
		fmt.Fprintf(os.Stderr, "md2rtf: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output, title, author, page string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(input)) {
	case ".md", ".markdown":
		err = convertMarkdown(&buf, src, title, author, page)
	case ".json":
		err = doctpl.Render(&buf, src)
	case ".yaml", ".yml":
		err = doctpl.RenderYAML(&buf, src)
	default:
		return fmt.Errorf("unsupported input format %q", filepath.Ext(input))
	}
	if err != nil {
		return err
	}

	return os.WriteFile(output, buf.Bytes(), 0644)
}

func convertMarkdown(w io.Writer, src []byte, title, author, page string) error {
	var opts []simplertf.Option
	if title != "" {
		opts = append(opts, simplertf.WithTitle(title))
	}
	if author != "" {
		opts = append(opts, simplertf.WithAuthor(author))
	}
	if page != "" {
		if _, err := simplertf.ResolvePreset(page); err != nil {
			return err
		}
		opts = append(opts, simplertf.WithLayout(page))
	}

	return mdconv.Convert(w, src, opts...)
}
