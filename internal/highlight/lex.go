package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Selector picks a Chroma lexer for a snippet of source code.
type Selector struct{}

// Select returns the lexer to tokenize the given source with.
//
// If lang is non-empty, Select looks it up by name or alias.
// Otherwise, or if the name is unknown,
// it matches on the file name (if any),
// then analyzes the source contents,
// and finally falls back to plain text.
//
// known is false only if lang was non-empty and not recognized,
// so that callers can warn before using the detected lexer.
func (*Selector) Select(lang, filename string, src []byte) (_ chroma.Lexer, known bool) {
	known = true
	var lexer chroma.Lexer
	if len(lang) > 0 {
		lexer = lexers.Get(lang)
		known = lexer != nil
	}
	if lexer == nil && len(filename) > 0 {
		lexer = lexers.Match(filename)
	}
	if lexer == nil {
		lexer = lexers.Analyse(string(src))
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer), known
}

// Tokenize lexically analyzes the given source code using Chroma.
func Tokenize(lexer chroma.Lexer, src []byte) ([]chroma.Token, error) {
	return chroma.Tokenise(lexer, nil, string(src))
}

// LexerNames reports the names of all registered lexers, sorted.
func LexerNames() []string {
	return lexers.Names(false)
}
