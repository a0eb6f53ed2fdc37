package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/code2img/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for code2img.
type params struct {
	version bool
	help    Help

	Input  string
	Output string
	Format format

	Lang       string
	Style      string
	Highlights []lineRange

	Font     string
	FontSize int
	TabWidth int
	Opaque   bool

	ListStyles    bool
	ListLanguages bool

	Config string
	Debug  flagvalue.FileSwitch
}

// cliParser parses the command line arguments for code2img.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("code2img", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Input and output:
	flag.StringVar(&p.Input, "input", "", "")
	flag.StringVar(&p.Input, "i", "", "")
	flag.StringVar(&p.Output, "output", "", "")
	flag.StringVar(&p.Output, "o", "", "")
	flag.Var(&p.Format, "format", "")
	flag.Var(&p.Format, "f", "")

	// Highlighting:
	flag.StringVar(&p.Lang, "lang", "", "")
	flag.StringVar(&p.Lang, "l", "", "")
	flag.StringVar(&p.Style, "style", "monokai", "")
	flag.StringVar(&p.Style, "s", "monokai", "")
	flag.Var(flagvalue.ListOf(&p.Highlights), "highlight", "")

	// Appearance:
	flag.StringVar(&p.Font, "font", "monospace", "")
	flag.IntVar(&p.FontSize, "font-size", 14, "")
	flag.IntVar(&p.TabWidth, "tab-width", 8, "")
	flag.BoolVar(&p.Opaque, "opaque", false, "")

	// Listings:
	flag.BoolVar(&p.ListStyles, "list-styles", false, "")
	flag.BoolVar(&p.ListLanguages, "list-languages", false, "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		// The flag set prints its own errors,
		// but errors reading the config file surface only here.
		if len(p.Config) > 0 {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "code2img", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
			args = args[1:]
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if len(args) > 0 {
		fmt.Fprintln(cmd.Stderr, "unexpected arguments:", strings.Join(args, " "))
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.FontSize <= 0 {
		fmt.Fprintln(cmd.Stderr, "font size must be positive")
		return nil, errInvalidArguments
	}
	if p.TabWidth <= 0 {
		fmt.Fprintln(cmd.Stderr, "tab width must be positive")
		return nil, errInvalidArguments
	}

	if len(p.Output) == 0 && !p.ListStyles && !p.ListLanguages {
		fmt.Fprintln(cmd.Stderr, "Please provide an output path with -o.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// format is the output format: svg, html,
// or empty to pick from the output file extension.
type format string

const (
	autoFormat format = ""
	svgFormat  format = "svg"
	htmlFormat format = "html"
)

var _ flag.Getter = (*format)(nil)

func (f *format) Get() any { return *f }

func (f *format) String() string { return string(*f) }

func (f *format) Set(s string) error {
	switch v := format(strings.ToLower(s)); v {
	case svgFormat, htmlFormat:
		*f = v
		return nil
	default:
		return fmt.Errorf("expected svg or html, got %q", s)
	}
}

// lineRange is a 1-based inclusive range of line numbers,
// given on the command line as 'N' or 'N-M'.
type lineRange struct {
	Start, End int
}

var _ flag.Getter = (*lineRange)(nil)

func (lr *lineRange) Get() any { return *lr }

func (lr *lineRange) String() string {
	if lr.Start == lr.End {
		return strconv.Itoa(lr.Start)
	}
	return fmt.Sprintf("%d-%d", lr.Start, lr.End)
}

func (lr *lineRange) Set(s string) error {
	first, last, ok := strings.Cut(s, "-")
	if !ok {
		last = first
	}

	start, err := strconv.Atoi(first)
	if err != nil {
		return fmt.Errorf("expected form 'N' or 'N-M': %w", err)
	}
	end, err := strconv.Atoi(last)
	if err != nil {
		return fmt.Errorf("expected form 'N' or 'N-M': %w", err)
	}
	if start < 1 || end < start {
		return fmt.Errorf("bad line range %q: lines are numbered from 1 and ranges ascend", s)
	}

	lr.Start, lr.End = start, end
	return nil
}
