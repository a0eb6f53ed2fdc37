package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
)

// SVG renders a snippet as a standalone SVG image
// with a right-aligned line-number gutter left of the code.
//
// Chroma's own SVG formatter has no line numbers,
// so the markup is generated here from the token stream,
// one text element per source line.
type SVG struct {
	Config
}

// Name reports the output format name.
func (*SVG) Name() string { return "SVG" }

// Render writes the snippet as an SVG document to w.
func (r *SVG) Render(w io.Writer, s *Snippet) error {
	lines := chroma.SplitTokensIntoLines(s.Tokens)

	fontSize := r.fontSize()
	lineH := fontSize * 5 / 4
	// Monospace advance width, roughly 0.6em.
	// Wide runes will overflow the estimate; that's fine,
	// the code itself still renders correctly.
	charW := (fontSize*3 + 2) / 5
	pad := fontSize / 2

	tab := strings.Repeat(" ", r.tabWidth())
	maxCols := 0
	for i, line := range lines {
		cols := 0
		for j, tok := range line {
			tok.Value = strings.ReplaceAll(
				strings.TrimSuffix(tok.Value, "\n"), "\t", tab)
			cols += utf8.RuneCountInString(tok.Value)
			line[j] = tok
		}
		if cols > maxCols {
			maxCols = cols
		}
		lines[i] = line
	}

	gutterX := pad + len(strconv.Itoa(len(lines)))*charW
	codeX := gutterX + 2*charW
	width := codeX + maxCols*charW + pad
	height := 2*pad + len(lines)*lineH

	var buff bytes.Buffer
	fmt.Fprintf(&buff, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buff,
		"<svg width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		width, height)

	if r.Opaque {
		if bg := r.style().Get(chroma.Background).Background; bg.IsSet() {
			fmt.Fprintf(&buff,
				"<rect width=\"100%%\" height=\"100%%\" fill=%q/>\n", bg)
		}
	}

	hl := r.highlightColour()
	for i := range lines {
		if r.highlighted(i + 1) {
			fmt.Fprintf(&buff,
				"<rect x=\"0\" y=\"%d\" width=\"100%%\" height=\"%d\" fill=%q/>\n",
				pad+i*lineH, lineH, hl)
		}
	}

	fmt.Fprintf(&buff, "<g font-family=%q font-size=\"%dpx\"", r.fontFamily(), fontSize)
	if c := r.style().Get(chroma.Text).Colour; c.IsSet() {
		fmt.Fprintf(&buff, " fill=%q", c)
	}
	buff.WriteString(">\n")

	lineNum := r.style().Get(chroma.LineNumbers).Colour
	if !lineNum.IsSet() {
		lineNum = chroma.ParseColour("#7f7f7f")
	}

	for i, line := range lines {
		baseline := pad + i*lineH + fontSize
		fmt.Fprintf(&buff,
			"<text x=\"%d\" y=\"%d\" text-anchor=\"end\" fill=%q>%d</text>",
			gutterX, baseline, lineNum, i+1)

		fmt.Fprintf(&buff, "<text x=\"%d\" y=\"%d\">", codeX, baseline)
		for _, tok := range line {
			if len(tok.Value) == 0 {
				continue
			}
			buff.WriteString("<tspan")
			buff.WriteString(r.tokenAttrs(tok.Type))
			buff.WriteString(">")
			buff.WriteString(escapeSVG(tok.Value))
			buff.WriteString("</tspan>")
		}
		buff.WriteString("</text>\n")
	}

	buff.WriteString("</g>\n</svg>\n")

	_, err := w.Write(buff.Bytes())
	return errtrace.Wrap(err)
}

// tokenAttrs renders the style entry for a token type
// as SVG presentation attributes, with a leading space if non-empty.
func (r *SVG) tokenAttrs(tt chroma.TokenType) string {
	entry := r.style().Get(tt)

	var sb strings.Builder
	if entry.Colour.IsSet() {
		fmt.Fprintf(&sb, " fill=%q", entry.Colour)
	}
	if entry.Bold == chroma.Yes {
		sb.WriteString(` font-weight="bold"`)
	}
	if entry.Italic == chroma.Yes {
		sb.WriteString(` font-style="italic"`)
	}
	if entry.Underline == chroma.Yes {
		sb.WriteString(` text-decoration="underline"`)
	}
	return sb.String()
}

// Spaces become non-breaking spaces because SVG renderers
// collapse ordinary whitespace in text content.
var _svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	" ", "&#160;",
)

func escapeSVG(s string) string {
	return _svgEscaper.Replace(s)
}
