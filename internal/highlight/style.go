package highlight

import (
	"strconv"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, and fades comments ever so slightly.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:    "#666666",
	chroma.PreWrapper: "bg:#eeeeee",
	chroma.Background: "bg:#eeeeee",
})

func init() {
	styles.Register(PlainStyle)
}

// Style looks up a registered Chroma style by name.
// Unlike Chroma's own lookup, an unknown name is an error
// rather than a silent fallback.
func Style(name string) (*chroma.Style, error) {
	if s, ok := styles.Registry[name]; ok {
		return s, nil
	}
	return nil, errtrace.Wrap(&UnknownStyleError{Name: name})
}

// UnknownStyleError is returned by [Style] for unregistered style names.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return "unknown style " + strconv.Quote(e.Name)
}

// StyleNames reports the names of all registered styles, sorted.
func StyleNames() []string {
	return styles.Names()
}
