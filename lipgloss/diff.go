package lipgloss

import (
	"fmt"
	"strings"

	"github.com/akarpov/jv"
)

// DiffReport renders diff entries one per line: "+ <path>: <json>" for
// additions, "- <path>: <json>" for removals, and a "~ <path>:" header
// followed by indented before/after lines for changes. Values render as
// one-line JSON.
func DiffReport(entries []jv.DiffEntry, s Styles) string {
	var b strings.Builder
	for _, e := range entries {
		switch e.Kind {
		case jv.DiffAdded:
			b.WriteString(s.Added.Render(fmt.Sprintf("+ %s: %s", e.Path, jv.Minify(e.After))))
			b.WriteByte('\n')
		case jv.DiffRemoved:
			b.WriteString(s.Removed.Render(fmt.Sprintf("- %s: %s", e.Path, jv.Minify(e.Before))))
			b.WriteByte('\n')
		case jv.DiffChanged:
			b.WriteString(s.Changed.Render(fmt.Sprintf("~ %s:", e.Path)))
			b.WriteByte('\n')
			b.WriteString(s.Removed.Render(fmt.Sprintf("  - %s", jv.Minify(e.Before))))
			b.WriteByte('\n')
			b.WriteString(s.Added.Render(fmt.Sprintf("  + %s", jv.Minify(e.After))))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
