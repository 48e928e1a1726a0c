package bubbletea

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/jv"
	"github.com/akarpov/jv/jsonio"
)

func watchedModel(t *testing.T, content string) (*Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watched.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	doc, err := jsonio.ReadDocument(path)
	require.NoError(t, err)
	return NewModel(doc, Config{ExpandDepth: 1, Theme: "dark", Watch: true}), path
}

// rewrite replaces the watched file and forces the mtime past the model's
// last observed one, since coarse filesystem timestamps can otherwise hide
// a quick rewrite.
func rewrite(t *testing.T, m *Model, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	later := m.lastMod.Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))
}

func TestModel_WatchReloadRebuildsTree(t *testing.T) {
	t.Parallel()

	m, path := watchedModel(t, `{"a":1}`)
	require.NotNil(t, m.Init(), "watch mode should schedule a tick")
	require.Equal(t, 2, m.tree.Len())

	// Dirty the view state so the reload visibly resets it.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	require.NotEqual(t, m.tree.Root(), m.cursor)
	m.runSearch("a")
	require.NotNil(t, m.results)

	rewrite(t, m, path, `{"a":1,"b":2}`)
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "watch keeps ticking after a reload")

	assert.Equal(t, `{"a":1,"b":2}`, jv.Minify(m.doc.Value))
	assert.Equal(t, 3, m.tree.Len(), "tree is rebuilt from the new document")
	assert.Equal(t, m.tree.Root(), m.cursor, "cursor resets to the root")
	assert.Equal(t, 0, m.scroll)
	assert.Nil(t, m.results, "search results do not survive a reload")
	assert.Contains(t, m.status, "reloaded")
}

func TestModel_WatchUnchangedFileIsNoOp(t *testing.T) {
	t.Parallel()

	m, _ := watchedModel(t, `{"a":1}`)
	before := m.doc

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Same(t, before, m.doc)
	assert.Empty(t, m.status)
}

func TestModel_WatchParseFailureKeepsDocument(t *testing.T) {
	t.Parallel()

	m, path := watchedModel(t, `{"a":1}`)

	rewrite(t, m, path, `{broken`)
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "watch keeps ticking after a failed reload")

	assert.Contains(t, m.status, "reload failed")
	assert.Equal(t, `{"a":1}`, jv.Minify(m.doc.Value), "previous document is retained")
	assert.Equal(t, 2, m.tree.Len())
}
