// Package render turns tokenized source snippets
// into standalone SVG or HTML documents
// with line numbers and optional per-line highlight backgrounds.
package render
