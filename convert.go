package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"go.abhg.dev/code2img/internal/errdefer"
	"go.abhg.dev/code2img/internal/highlight"
	"go.abhg.dev/code2img/internal/render"
)

// Selector chooses the lexer to tokenize a snippet with.
type Selector interface {
	Select(lang, filename string, src []byte) (_ chroma.Lexer, known bool)
}

var _ Selector = (*highlight.Selector)(nil)

// Renderer writes a tokenized snippet as a complete document.
type Renderer interface {
	Name() string
	Render(io.Writer, *render.Snippet) error
}

var (
	_ Renderer = (*render.SVG)(nil)
	_ Renderer = (*render.HTML)(nil)
)

// Converter turns one source snippet into one rendered document.
//
// In terms of code organization,
// Converter's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Converter struct {
	Log      *log.Logger
	Debug    *log.Logger
	Stdin    io.Reader
	Stdout   io.Writer
	Selector Selector
	Renderer Renderer

	// Style is the name of the selected color theme,
	// reported after a successful conversion.
	Style string
}

// Convert reads the snippet from input (stdin if empty),
// highlights it, and writes the rendered document to output
// ('-' for stdout).
func (c *Converter) Convert(input, output, lang string) error {
	src, err := c.readSource(input)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(src)) == 0 {
		return errors.New("no code provided")
	}

	lexer, known := c.Selector.Select(lang, input, src)
	if !known {
		c.Log.Printf("Warning: unknown language %q, attempting auto-detection", lang)
	}
	lexerName := lexer.Config().Name
	c.Debug.Printf("Using lexer %v", lexerName)

	tokens, err := highlight.Tokenize(lexer, src)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}

	snippet := render.Snippet{Tokens: tokens, Lexer: lexerName}
	if err := c.writeDocument(output, &snippet); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	c.report(output, lexerName)
	return nil
}

func (c *Converter) readSource(input string) ([]byte, error) {
	if len(input) == 0 {
		src, err := io.ReadAll(c.Stdin)
		return src, errtrace.Wrap(err)
	}
	src, err := os.ReadFile(input)
	return src, errtrace.Wrap(err)
}

func (c *Converter) writeDocument(output string, s *render.Snippet) (err error) {
	if output == "-" {
		return errtrace.Wrap(c.Renderer.Render(c.Stdout, s))
	}

	f, err := os.Create(output)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(c.Renderer.Render(f, s))
}

func (c *Converter) report(output, lexerName string) {
	dest := output
	if dest == "-" {
		dest = "stdout"
	}
	c.Log.Printf("%s saved to: %s", c.Renderer.Name(), dest)
	c.Log.Printf("Language: %s", lexerName)
	c.Log.Printf("Style: %s", c.Style)
}

// mergeRanges converts the -highlight flags into the sorted,
// non-overlapping form that the renderers expect.
// Adjacent ranges are merged too.
func mergeRanges(ranges []lineRange) [][2]int {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([][2]int, len(ranges))
	for i, r := range ranges {
		sorted[i] = [2]int{r.Start, r.End}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i][0] < sorted[j][0]
	})

	out := sorted[:1]
	for _, r := range sorted[1:] {
		if last := &out[len(out)-1]; r[0] <= last[1]+1 {
			if r[1] > last[1] {
				last[1] = r[1]
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
