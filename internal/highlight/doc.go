// Package highlight selects lexers and styles for source snippets.
// It uses the Chroma library to do this work.
//
// Lexer selection prefers an explicitly requested language,
// falling back to filename matching and content analysis.
package highlight
