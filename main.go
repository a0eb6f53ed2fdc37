package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/code2img/internal/highlight"
	"go.abhg.dev/code2img/internal/render"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("code2img: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()

	switch {
	case opts.ListStyles:
		return listNames(cmd.Stdout, "styles", highlight.StyleNames())
	case opts.ListLanguages:
		return listNames(cmd.Stdout, "languages", highlight.LexerNames())
	}

	style, err := highlight.Style(opts.Style)
	if err != nil {
		return fmt.Errorf("%w; use -list-styles for available styles", err)
	}

	outFormat := opts.Format
	if outFormat == autoFormat {
		outFormat = formatForPath(opts.Output)
		if outFormat == autoFormat {
			cmd.log.Printf("Warning: unknown output extension, defaulting to SVG")
			outFormat = svgFormat
		}
	}

	cfg := render.Config{
		Style:      style,
		FontFamily: opts.Font,
		FontSize:   opts.FontSize,
		TabWidth:   opts.TabWidth,
		Opaque:     opts.Opaque,
		Highlights: mergeRanges(opts.Highlights),
	}

	var renderer Renderer
	switch outFormat {
	case htmlFormat:
		renderer = &render.HTML{Config: cfg}
	default:
		renderer = &render.SVG{Config: cfg}
	}

	conv := Converter{
		Log:      cmd.log,
		Debug:    log.New(debugw, "", 0),
		Stdin:    cmd.Stdin,
		Stdout:   cmd.Stdout,
		Selector: new(highlight.Selector),
		Renderer: renderer,
		Style:    opts.Style,
	}
	return conv.Convert(opts.Input, opts.Output, opts.Lang)
}

// formatForPath guesses the output format from a file extension,
// returning autoFormat if it can't tell.
func formatForPath(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return svgFormat
	case ".html", ".htm":
		return htmlFormat
	}
	return autoFormat
}

func listNames(w io.Writer, what string, names []string) error {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "Available %s (%d total):\n\n", what, len(names))
	for i, name := range names {
		_, _ = fmt.Fprintf(&sb, "  %2d. %s\n", i+1, name)
	}
	_, err := io.WriteString(w, sb.String())
	return errtrace.Wrap(err)
}
