package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/code2img/internal/highlight"
	"golang.org/x/net/html"
)

const _goSource = "package main\n" +
	"\n" +
	"func main() {\n" +
	"\tprintln(\"hi\")\n" +
	"}\n"

func goSnippet(t testing.TB) *Snippet {
	t.Helper()

	lexer, known := new(highlight.Selector).Select("go", "", nil)
	require.True(t, known)

	tokens, err := highlight.Tokenize(lexer, []byte(_goSource))
	require.NoError(t, err)

	return &Snippet{Tokens: tokens, Lexer: "Go"}
}

func renderHTML(t testing.TB, r *HTML) string {
	t.Helper()

	var buff bytes.Buffer
	require.NoError(t, r.Render(&buff, goSnippet(t)))
	return buff.String()
}

func parseHTML(t testing.TB, body string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err, "invalid HTML:\n%v", body)
	return doc
}

func allText(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

func TestHTML_layout(t *testing.T) {
	t.Parallel()

	body := renderHTML(t, &HTML{
		Config: Config{Style: highlight.PlainStyle},
	})
	doc := parseHTML(t, body)

	table := cascadia.MustCompile("table").MatchFirst(doc)
	require.NotNil(t, table, "line numbers must be in a table")

	cells := cascadia.MustCompile("td").MatchAll(doc)
	require.Len(t, cells, 2, "want a line-number cell and a code cell")

	gutter := allText(cells[0])
	for _, num := range []string{"1", "2", "3", "4", "5"} {
		assert.Contains(t, gutter, num)
	}

	code := allText(cells[1])
	assert.Contains(t, code, "package main")
	assert.Contains(t, code, `println("hi")`)
}

func TestHTML_inlineFontStyles(t *testing.T) {
	t.Parallel()

	body := renderHTML(t, &HTML{
		Config: Config{
			Style:      highlight.PlainStyle,
			FontFamily: "Fira Code",
			FontSize:   16,
		},
	})

	assert.Contains(t, body, "font-family:Fira Code")
	assert.Contains(t, body, "font-size:16px")
	assert.Contains(t, body, "line-height:125%")
}

func TestHTML_transparentByDefault(t *testing.T) {
	t.Parallel()

	body := renderHTML(t, &HTML{
		Config: Config{Style: highlight.PlainStyle},
	})

	assert.Contains(t, body, "background-color:transparent")
	assert.NotContains(t, body, "background-color:#eeeeee",
		"the style's background must not survive")
}

func TestHTML_opaque(t *testing.T) {
	t.Parallel()

	body := renderHTML(t, &HTML{
		Config: Config{
			Style:  highlight.PlainStyle,
			Opaque: true,
		},
	})

	assert.Contains(t, body, "background-color:#eeeeee")
	assert.NotContains(t, body, "background-color:transparent")
}

func TestHTML_highlightLines(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Style:      highlight.PlainStyle,
		Highlights: [][2]int{{3, 4}},
	}
	body := renderHTML(t, &HTML{Config: cfg})

	hl := cfg.highlightColour().String()
	assert.Contains(t, body, hl,
		"highlighted lines must carry the highlight background")
}

func TestHTML_highlightSurvivesTransparency(t *testing.T) {
	t.Parallel()

	// The transparency pass must only strip wrapper backgrounds,
	// not the highlight-line backgrounds.
	cfg := Config{
		Style:      highlight.PlainStyle,
		Highlights: [][2]int{{1, 1}},
	}
	body := renderHTML(t, &HTML{Config: cfg})

	assert.Contains(t, body, "background-color:transparent")
	assert.Contains(t, body, cfg.highlightColour().String())
}
