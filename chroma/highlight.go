// Package chroma provides terminal syntax highlighting for JSON output
// using the chroma library.
package chroma

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Style names used for terminal output.
const (
	StyleDark  = "catppuccin-mocha"
	StyleLight = "catppuccin-latte"
)

// Highlight writes source to w as 256-color terminal output with JSON
// syntax highlighting. Unknown style names fall back to the chroma default;
// if the JSON lexer is unavailable the source is written unstyled.
func Highlight(w io.Writer, source, style string) error {
	lexer := lexers.Get("json")
	if lexer == nil {
		_, err := io.WriteString(w, source)
		return err
	}
	lexer = chroma.Coalesce(lexer)

	st := styles.Get(style)
	if st == nil {
		st = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return err
	}
	return formatter.Format(w, st, iterator)
}

// StyleForTheme maps a viewer theme name to a chroma style name.
func StyleForTheme(theme string) string {
	if theme == "light" {
		return StyleLight
	}
	return StyleDark
}
