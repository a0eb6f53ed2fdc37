package render

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Snippet is a tokenized block of source code ready for rendering.
type Snippet struct {
	// Tokens of the source, in order.
	// Concatenating their values reproduces the source.
	Tokens []chroma.Token

	// Lexer is the display name of the lexer
	// that produced the tokens.
	Lexer string
}

// Config holds rendering options shared by all output formats.
// The zero value is a usable default.
type Config struct {
	// Style used for syntax highlighting of code.
	Style *chroma.Style

	// FontFamily for the rendered code.
	// Defaults to monospace.
	FontFamily string

	// FontSize for the rendered code, in pixels.
	// Defaults to 14.
	FontSize int

	// TabWidth is the number of spaces a tab expands to.
	// Defaults to 8.
	TabWidth int

	// Opaque fills the image with the style's background color.
	// By default, the background is transparent.
	Opaque bool

	// Highlights are 1-based inclusive line ranges
	// that get a distinct background color.
	Highlights [][2]int
}

func (c *Config) style() *chroma.Style {
	if c.Style != nil {
		return c.Style
	}
	return styles.Fallback
}

func (c *Config) fontFamily() string {
	if len(c.FontFamily) > 0 {
		return c.FontFamily
	}
	return "monospace"
}

func (c *Config) fontSize() int {
	if c.FontSize > 0 {
		return c.FontSize
	}
	return 14
}

func (c *Config) tabWidth() int {
	if c.TabWidth > 0 {
		return c.TabWidth
	}
	return 8
}

// highlighted reports whether the 1-based line number
// falls into any of the highlight ranges.
func (c *Config) highlighted(line int) bool {
	for _, r := range c.Highlights {
		if line >= r[0] && line <= r[1] {
			return true
		}
	}
	return false
}

// highlightColour picks the background color for highlighted lines:
// the style's own line-highlight color if it defines one,
// a slightly shifted variant of the style's background otherwise.
func (c *Config) highlightColour() chroma.Colour {
	style := c.style()
	if style.Has(chroma.LineHighlight) {
		if bg := style.Get(chroma.LineHighlight).Background; bg.IsSet() {
			return bg
		}
	}
	if bg := style.Get(chroma.Background).Background; bg.IsSet() {
		return bg.BrightenOrDarken(0.15)
	}
	return _defaultHighlight
}

var _defaultHighlight = chroma.ParseColour("#ffffcc")
