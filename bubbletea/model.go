// Package bubbletea implements the terminal renderer for JSON documents:
// a navigable tree with expand/collapse state, live substring search with
// cyclic result navigation, clipboard actions, and optional file watching.
package bubbletea

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akarpov/jv"
	"github.com/akarpov/jv/jsonio"
	jvstyle "github.com/akarpov/jv/lipgloss"
)

// chromeHeight is the number of rows used by the header, search/status line,
// and footer around the tree viewport.
const chromeHeight = 4

// watchInterval is how often watch mode polls the file's modification time.
const watchInterval = time.Second

// Config controls the initial state of a Model.
type Config struct {
	ExpandDepth int    // jv.DepthAll expands everything
	Theme       string // "dark" or "light"
	Watch       bool   // poll the source file and rebuild on change
	// Renderer is the lipgloss renderer to style output with. Nil uses
	// the default renderer.
	Renderer *lipgloss.Renderer
}

// Model is the bubbletea model for the tree viewer.
type Model struct {
	doc  *jv.Document
	tree *jv.Tree
	cfg  Config

	cursor jv.NodeID
	scroll int
	width  int
	height int

	theme    jvstyle.Theme
	styles   jvstyle.Styles
	renderer *lipgloss.Renderer

	keys keyMap
	help help.Model

	searchInput textinput.Model
	searching   bool
	results     *jv.SearchCursor
	matched     map[string]bool

	status  string
	lastMod time.Time
}

// NewModel builds a viewer model for doc.
func NewModel(doc *jv.Document, cfg Config) *Model {
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	theme := jvstyle.ThemeByName(cfg.Theme)

	input := textinput.New()
	input.Placeholder = "Type to search... (enter to keep, esc to close)"
	input.Prompt = "Search: "

	m := &Model{
		doc:         doc,
		tree:        jv.NewTree(doc.Value, cfg.ExpandDepth),
		cfg:         cfg,
		theme:       theme,
		styles:      jvstyle.NewStyles(renderer, theme),
		renderer:    renderer,
		keys:        defaultKeyMap(),
		help:        help.New(),
		searchInput: input,
	}
	m.cursor = m.tree.Root()
	if cfg.Watch && doc.Path != "" {
		if info, err := os.Stat(doc.Path); err == nil {
			m.lastMod = info.ModTime()
		}
	}
	return m
}

type tickMsg time.Time

func watchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.cfg.Watch && m.doc.Path != "" {
		return watchTick()
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.adjustScroll()
		return m, nil

	case tickMsg:
		m.checkReload()
		return m, watchTick()

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.searching = false
		m.searchInput.Blur()
		m.clearSearch()
		return m, nil
	case tea.KeyEnter:
		// Keep results for n/N navigation.
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.runSearch(m.searchInput.Value())
	}
	return m, cmd
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "y" && msg.String() != "Y" {
		m.status = ""
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.cursor = m.tree.Prev(m.cursor)
		m.adjustScroll()

	case key.Matches(msg, m.keys.Down):
		m.cursor = m.tree.Next(m.cursor)
		m.adjustScroll()

	case key.Matches(msg, m.keys.Left):
		if m.tree.Expanded(m.cursor) {
			m.tree.Collapse(m.cursor)
		} else if parent := m.tree.Parent(m.cursor); parent != jv.NoNode {
			m.cursor = parent
		}
		m.adjustScroll()

	case key.Matches(msg, m.keys.Right):
		if m.tree.HasChildren(m.cursor) && !m.tree.Expanded(m.cursor) {
			m.tree.Expand(m.cursor)
		} else {
			m.cursor = m.tree.FirstChild(m.cursor)
		}
		m.adjustScroll()

	case key.Matches(msg, m.keys.Toggle):
		m.tree.Toggle(m.cursor)
		m.adjustScroll()

	case key.Matches(msg, m.keys.ExpandAll):
		m.tree.ExpandAll()
		m.adjustScroll()

	case key.Matches(msg, m.keys.CollapseAll):
		m.tree.CollapseAll()
		m.tree.Expand(m.tree.Root())
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Depth):
		depth := int(msg.String()[0] - '0')
		m.tree.ExpandToDepth(m.tree.Root(), depth)
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue("")
		m.clearSearch()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.NextResult):
		if m.results != nil {
			if r, ok := m.results.Next(); ok {
				m.jumpTo(r)
			}
		}

	case key.Matches(msg, m.keys.PrevResult):
		if m.results != nil {
			if r, ok := m.results.Prev(); ok {
				m.jumpTo(r)
			}
		}

	case key.Matches(msg, m.keys.CopyValue):
		m.copyToClipboard(m.tree.Value(m.cursor).ScalarText(), "value copied")

	case key.Matches(msg, m.keys.CopyPath):
		path := m.tree.Path(m.cursor).String()
		m.copyToClipboard(path, "copied "+path)

	case key.Matches(msg, m.keys.Top):
		m.cursor = m.tree.Root()
		m.scroll = 0

	case key.Matches(msg, m.keys.Bottom):
		visible := m.tree.Visible()
		m.cursor = visible[len(visible)-1]
		m.adjustScroll()

	case key.Matches(msg, m.keys.Theme):
		if m.theme.Name == jvstyle.ThemeDark {
			m.theme = jvstyle.Light()
		} else {
			m.theme = jvstyle.Dark()
		}
		m.styles = jvstyle.NewStyles(m.renderer, m.theme)

	case msg.Type == tea.KeyEscape:
		m.clearSearch()
	}

	return m, nil
}

func (m *Model) runSearch(query string) {
	if query == "" {
		m.clearSearch()
		return
	}
	m.results = jv.NewSearchCursor(jv.Search(m.doc.Value, query, false))
	m.matched = make(map[string]bool, m.results.Len())
	for _, r := range m.results.Results() {
		m.matched[r.Path.String()] = true
	}
	if r, ok := m.results.Current(); ok {
		m.jumpTo(r)
	}
}

func (m *Model) clearSearch() {
	m.results = nil
	m.matched = nil
}

// jumpTo expands ancestors of the result's path and moves the cursor to the
// deepest resolvable node.
func (m *Model) jumpTo(r jv.SearchResult) {
	id, _ := m.tree.NavigateTo(r.Path)
	m.cursor = id
	m.adjustScroll()
}

func (m *Model) copyToClipboard(text, okStatus string) {
	if err := clipboard.WriteAll(text); err != nil {
		m.status = "clipboard: " + err.Error()
		return
	}
	m.status = okStatus
}

// ensureCursorVisible walks the cursor up to its nearest visible ancestor
// after a bulk collapse.
func (m *Model) ensureCursorVisible() {
	visible := make(map[jv.NodeID]bool)
	for _, id := range m.tree.Visible() {
		visible[id] = true
	}
	for !visible[m.cursor] {
		parent := m.tree.Parent(m.cursor)
		if parent == jv.NoNode {
			m.cursor = m.tree.Root()
			break
		}
		m.cursor = parent
	}
	m.adjustScroll()
}

func (m *Model) contentHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// adjustScroll keeps the cursor row inside the viewport.
func (m *Model) adjustScroll() {
	visible := m.tree.Visible()
	index := 0
	for i, id := range visible {
		if id == m.cursor {
			index = i
			break
		}
	}
	height := m.contentHeight()
	if index < m.scroll {
		m.scroll = index
	}
	if index >= m.scroll+height {
		m.scroll = index - height + 1
	}
}

// checkReload polls the watched file and rebuilds the whole tree on change.
// Expand/collapse state, cursor, and search do not survive a reload.
func (m *Model) checkReload() {
	info, err := os.Stat(m.doc.Path)
	if err != nil {
		m.status = "watch: " + err.Error()
		return
	}
	if info.ModTime().Equal(m.lastMod) {
		return
	}
	m.lastMod = info.ModTime()

	doc, err := jsonio.ReadDocument(m.doc.Path)
	if err != nil {
		m.status = "reload failed: " + err.Error()
		return
	}
	m.doc = doc
	m.tree = jv.NewTree(doc.Value, m.cfg.ExpandDepth)
	m.cursor = m.tree.Root()
	m.scroll = 0
	m.clearSearch()
	m.status = "reloaded " + doc.Source
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderSearchLine())
	b.WriteByte('\n')
	b.WriteString(m.renderTree())
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.styles.Accent.Bold(true).Render("jv - " + m.doc.Source)
	path := m.styles.Muted.Render("  " + m.tree.Path(m.cursor).String())
	return title + path
}

func (m *Model) renderSearchLine() string {
	if m.searching {
		line := m.searchInput.View()
		if m.results != nil && m.results.Len() > 0 {
			line += m.styles.Muted.Render(fmt.Sprintf("  %d/%d", m.results.Index()+1, m.results.Len()))
		} else if m.searchInput.Value() != "" {
			line += m.styles.Muted.Render("  no results")
		}
		return line
	}
	if m.results != nil {
		if m.results.Len() == 0 {
			return m.styles.Muted.Render("no results")
		}
		return m.styles.Muted.Render(fmt.Sprintf(
			"search %q (%d/%d)  n: next  N: prev  esc: clear",
			m.searchInput.Value(), m.results.Index()+1, m.results.Len()))
	}
	return m.styles.Muted.Render(m.doc.Path)
}

func (m *Model) renderTree() string {
	visible := m.tree.Visible()
	height := m.contentHeight()

	end := m.scroll + height
	if end > len(visible) {
		end = len(visible)
	}
	start := m.scroll
	if start > len(visible) {
		start = len(visible)
	}

	lines := make([]string, 0, height)
	for _, id := range visible[start:end] {
		lines = append(lines, m.renderNode(id, id == m.cursor))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// typeIcon mirrors the icon set of the web renderer: {} for objects, [] for
// arrays, a quote for strings, # for numbers, ? for booleans, - for null.
func (m *Model) typeIcon(v *jv.Value) string {
	switch v.Kind() {
	case jv.KindObject:
		return m.styles.Container.Render("{}")
	case jv.KindArray:
		return m.styles.Container.Render("[]")
	case jv.KindString:
		return m.styles.String.Render("\"")
	case jv.KindNumber:
		return m.styles.Number.Render("#")
	case jv.KindBool:
		return m.styles.Bool.Render("?")
	}
	return m.styles.Null.Render("-")
}

func (m *Model) renderNode(id jv.NodeID, selected bool) string {
	value := m.tree.Value(id)
	path := m.tree.Path(id)
	indent := strings.Repeat("  ", m.tree.Depth(id))

	indicator := "  "
	if m.tree.HasChildren(id) {
		if m.tree.Expanded(id) {
			indicator = "▼ "
		} else {
			indicator = "▶ "
		}
	}

	var label string
	if len(path) == 0 {
		label = m.styles.Key.Render(m.doc.Source)
	} else if last := path[len(path)-1]; last.IsIndex {
		label = m.styles.Muted.Render(fmt.Sprintf("%d", last.Index))
	} else {
		label = m.styles.Key.Render(last.Key)
	}

	var detail string
	switch value.Kind() {
	case jv.KindObject:
		detail = m.styles.Muted.Render(fmt.Sprintf(" (%d keys)", value.Len()))
	case jv.KindArray:
		detail = m.styles.Muted.Render(fmt.Sprintf(" (%d items)", value.Len()))
	case jv.KindString:
		detail = ": " + m.styles.String.Render(value.Preview())
	case jv.KindNumber:
		detail = ": " + m.styles.Number.Render(value.Preview())
	case jv.KindBool:
		detail = ": " + m.styles.Bool.Render(value.Preview())
	case jv.KindNull:
		detail = ": " + m.styles.Null.Render("null")
	}

	line := indent + indicator + m.typeIcon(value) + " " + label + detail
	if selected {
		plain := indent + indicator + iconText(value) + " " + labelText(path, m.doc.Source) + detailText(value)
		return m.styles.Cursor.Width(m.width).Render(plain)
	}
	if m.matched[path.String()] {
		return m.styles.Match.Render(line)
	}
	return line
}

// iconText, labelText, and detailText are the unstyled counterparts used for
// the cursor row, where a single background style covers the whole line.
func iconText(v *jv.Value) string {
	switch v.Kind() {
	case jv.KindObject:
		return "{}"
	case jv.KindArray:
		return "[]"
	case jv.KindString:
		return "\""
	case jv.KindNumber:
		return "#"
	case jv.KindBool:
		return "?"
	}
	return "-"
}

func labelText(path jv.Path, source string) string {
	if len(path) == 0 {
		return source
	}
	if last := path[len(path)-1]; last.IsIndex {
		return fmt.Sprintf("%d", last.Index)
	}
	return path[len(path)-1].Key
}

func detailText(v *jv.Value) string {
	switch v.Kind() {
	case jv.KindObject:
		return fmt.Sprintf(" (%d keys)", v.Len())
	case jv.KindArray:
		return fmt.Sprintf(" (%d items)", v.Len())
	}
	return ": " + v.Preview()
}

func (m *Model) renderFooter() string {
	helpView := m.help.View(m.keys)
	if m.status == "" {
		return helpView
	}
	return helpView + "\n" + m.styles.Accent.Render(m.status)
}
