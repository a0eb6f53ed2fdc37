package render

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// HTML renders a snippet as an HTML fragment:
// a table with a line-number column and the highlighted code,
// styled entirely with inline 'style' attributes
// so that it works without a style sheet.
type HTML struct {
	Config

	once      sync.Once
	formatter *chromahtml.Formatter
}

// Name reports the output format name.
func (*HTML) Name() string { return "HTML" }

func (r *HTML) init() {
	r.once.Do(func() {
		// line-height on the wrapper applies to the line-number
		// column and the code alike, keeping the two aligned.
		custom := map[chroma.TokenType]string{
			chroma.PreWrapper: fmt.Sprintf(
				";font-family:%s;font-size:%dpx;line-height:125%%;",
				r.fontFamily(), r.fontSize()),
		}
		if !r.style().Has(chroma.LineHighlight) {
			custom[chroma.LineHighlight] = fmt.Sprintf(
				";background-color:%s;", r.highlightColour())
		}

		r.formatter = chromahtml.New(
			chromahtml.WithLineNumbers(true),
			chromahtml.LineNumbersInTable(true),
			chromahtml.TabWidth(r.tabWidth()),
			chromahtml.HighlightLines(r.Highlights),
			chromahtml.WithCustomCSS(custom),
		)
	})
}

// Render writes the snippet as an HTML fragment to w.
func (r *HTML) Render(w io.Writer, s *Snippet) error {
	r.init()

	var buff bytes.Buffer
	err := r.formatter.Format(&buff, r.style(), chroma.Literator(s.Tokens...))
	if err != nil {
		return errtrace.Wrap(err)
	}

	out := buff.Bytes()
	if !r.Opaque {
		out = _wrapperBackground.ReplaceAll(out,
			[]byte("${1}background${2}:transparent;"))
	}

	_, err = w.Write(out)
	return errtrace.Wrap(err)
}

// Matches background declarations inside the style attributes of
// wrapper elements only. Token and highlight-line spans keep theirs.
var _wrapperBackground = regexp.MustCompile(
	`(<(?:div|table|td|pre)[^>]*style="[^"]*?)` +
		`background(-color)?:\s*#[0-9a-fA-F]{3,8};?`)
