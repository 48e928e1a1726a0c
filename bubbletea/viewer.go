package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/jv"
)

// Viewer renders a document as an interactive terminal tree.
type Viewer struct {
	// ExpandDepth is the initial expansion depth. jv.DepthAll expands
	// every container.
	ExpandDepth int
	// Theme selects the initial color theme, "dark" or "light".
	Theme string
	// Watch reloads the document when the source file changes.
	Watch bool
}

var _ jv.Viewer = (*Viewer)(nil)

// View runs the terminal UI until the user quits or ctx is canceled.
func (v *Viewer) View(ctx context.Context, doc *jv.Document) error {
	m := NewModel(doc, Config{
		ExpandDepth: v.ExpandDepth,
		Theme:       v.Theme,
		Watch:       v.Watch,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
