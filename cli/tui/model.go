package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwantia/webterm"
	"github.com/mwantia/webterm/catalog"
	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/render"
)

// Mode represents the current interaction mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
)

// MaxScrollback is the number of entries kept on screen.
const MaxScrollback = 500

// Catalog looks up blog post metadata. *catalog.Cache implements it.
type Catalog interface {
	Find(ctx context.Context, pattern string) ([]catalog.Post, error)
	Post(ctx context.Context, slug string) (catalog.Post, bool, error)
	Purge()
}

// Model represents the state of the TUI application
type Model struct {
	// Core components
	ctx     context.Context
	term    *webterm.Terminal
	catalog Catalog
	theme   *Theme
	keys    KeyMap
	help    help.Model

	user string
	site string

	// Navigation state
	currentPath string
	entries     []*Entry
	scroll      int // lines scrolled up from the bottom

	// View state
	width  int
	height int

	mode      Mode
	textInput textinput.Model

	// History recall: matches of the prefix typed before the first recall
	recall       []string
	recallIndex  int
	recallPrefix string

	// Candidates of the last ambiguous completion
	completions render.Content

	statusMsg string
}

// NewModel creates a new TUI model driving term. posts may be nil, which
// disables post metadata in the status bar.
func NewModel(ctx context.Context, term *webterm.Terminal, posts Catalog, user, site string) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 1024
	ti.Focus()

	return &Model{
		ctx:         ctx,
		term:        term,
		catalog:     posts,
		theme:       DefaultTheme(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		user:        user,
		site:        site,
		currentPath: "/",
		textInput:   ti,
		recallIndex: -1,
	}
}

// Path returns the current working path.
func (m *Model) Path() string {
	return m.currentPath
}

// Entries returns the scrollback.
func (m *Model) Entries() []*Entry {
	return m.entries
}

// Input returns the text currently typed.
func (m *Model) Input() string {
	return m.textInput.Value()
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.textInput.Width = max(msg.Width-len(prompt(m.user, m.site, m.currentPath))-2, 1)
		m.term.SetWidth(msg.Width)
		return m, nil

	case commandExecutedMsg:
		return m, m.handleResult(msg)

	case postLoadedMsg:
		// stale if the user moved on meanwhile
		if msg.path == m.currentPath {
			m.statusMsg = msg.status
		}
		return m, nil

	case catalogRefreshedMsg:
		m.statusMsg = msg.status
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) || msg.Type == tea.KeyEscape {
			m.mode = ModeNormal
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Execute):
		return m, m.submitInput()

	case key.Matches(msg, m.keys.Complete):
		m.complete()
		return m, nil

	case key.Matches(msg, m.keys.Previous):
		m.recallHistory(1)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.recallHistory(-1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(m.getVisibleLines() / 2)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(-m.getVisibleLines() / 2)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCatalog()

	case key.Matches(msg, m.keys.Clear):
		m.entries = nil
		m.scroll = 0
		m.completions = nil
		return m, nil
	}

	m.resetRecall()
	m.completions = nil

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// submitInput runs the typed line and clears the input field.
func (m *Model) submitInput() tea.Cmd {
	input := m.textInput.Value()
	m.textInput.SetValue("")
	m.resetRecall()
	m.completions = nil
	m.scroll = 0
	m.statusMsg = ""

	return m.executeCommand(m.currentPath, input)
}

// Messages for async operations
type commandExecutedMsg struct {
	path   string
	input  string
	result cmd.Result
}

type postLoadedMsg struct {
	path   string
	status string
}

type catalogRefreshedMsg struct {
	status string
}

func (m *Model) executeCommand(path, input string) tea.Cmd {
	return func() tea.Msg {
		DebugLog("executing %q at %s", input, path)
		result := m.term.HandleCommand(m.ctx, path, input)
		return commandExecutedMsg{path: path, input: input, result: result}
	}
}

// handleResult appends the executed line to the scrollback and applies
// redirects and screen clearing. Entering a post directory loads the post's
// metadata.
func (m *Model) handleResult(msg commandExecutedMsg) tea.Cmd {
	res := msg.result
	DebugLog("result of %q: %s", msg.input, res.Kind)

	if res.Kind == cmd.KindNothing && clears(msg.input) {
		m.entries = nil
		m.scroll = 0
		return nil
	}

	var next tea.Cmd

	entry := &Entry{Path: msg.path, Input: msg.input, Result: res}

	if res.Kind == cmd.KindRedirect {
		switch {
		case res.IsExternal():
			entry.Notice = "opening " + res.Target
			m.statusMsg = res.Target
		case m.isDirectory(res.Target):
			m.currentPath = res.Target
			next = m.loadPost(res.Target)
		default:
			entry.Notice = "opening " + res.Target
			m.statusMsg = res.Target
		}
	}

	m.entries = append(m.entries, entry)
	if over := len(m.entries) - MaxScrollback; over > 0 {
		m.entries = m.entries[over:]
	}
	return next
}

// postSlug returns the slug of a /blog/<slug> path.
func postSlug(path string) (string, bool) {
	slug, ok := strings.CutPrefix(path, "/blog/")
	if !ok || slug == "" || strings.Contains(slug, "/") {
		return "", false
	}
	return slug, true
}

func (m *Model) loadPost(path string) tea.Cmd {
	slug, ok := postSlug(path)
	if !ok || m.catalog == nil {
		return nil
	}

	return func() tea.Msg {
		post, found, err := m.catalog.Post(m.ctx, slug)
		switch {
		case err != nil:
			DebugLog("post lookup for %s failed: %v", slug, err)
			return postLoadedMsg{path: path, status: "post lookup failed"}
		case !found:
			return postLoadedMsg{path: path}
		case post.Published.IsZero():
			return postLoadedMsg{path: path, status: post.Title}
		default:
			return postLoadedMsg{path: path, status: fmt.Sprintf("%s (%s)", post.Title, post.Published.Format("2006-01-02"))}
		}
	}
}

// refreshCatalog drops memoized lookups and counts the posts again.
func (m *Model) refreshCatalog() tea.Cmd {
	if m.catalog == nil {
		return nil
	}

	return func() tea.Msg {
		m.catalog.Purge()
		posts, err := m.catalog.Find(m.ctx, "*")
		if err != nil {
			DebugLog("catalog refresh failed: %v", err)
			return catalogRefreshedMsg{status: "catalog refresh failed"}
		}
		return catalogRefreshedMsg{status: fmt.Sprintf("%d posts in catalog", len(posts))}
	}
}

func (m *Model) isDirectory(path string) bool {
	fs := m.term.FS()
	id, err := fs.Resolve(fs.Root(), path)
	if err != nil {
		return false
	}
	node, err := fs.Stat(id)
	if err != nil {
		return false
	}
	return node.IsDir()
}

// clears reports whether input ran the clear command.
func clears(input string) bool {
	word, _ := cmd.Tokenize(cmd.ExpandAlias(input))
	return cmd.ParseName(word) == cmd.Clear
}

// complete applies tab completion to the typed line. A single candidate
// replaces the word being typed; several extend it to their common prefix
// and are listed below the prompt.
func (m *Model) complete() {
	value := m.textInput.Value()
	candidates := m.term.Complete(m.currentPath, value)
	m.completions = nil

	if len(candidates) == 0 {
		return
	}

	start := strings.LastIndex(value, " ") + 1
	word := value[start:]
	dir := word[:strings.LastIndex(word, "/")+1]

	if len(candidates) == 1 {
		completed := value[:start] + dir + candidates[0]
		if !strings.HasSuffix(completed, "/") {
			completed += " "
		}
		m.setInput(completed)
		return
	}

	if common := commonPrefix(candidates); len(dir)+len(common) > len(word) {
		m.setInput(value[:start] + dir + common)
	}

	spans := make([]render.Span, len(candidates))
	for i, c := range candidates {
		style := render.StylePlain
		if strings.HasSuffix(c, "/") {
			style = render.StyleDirectory
		}
		spans[i] = render.Styled(c, style)
	}
	m.completions = render.Columns(spans, max(m.width, 1))
}

func commonPrefix(values []string) string {
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

// recallHistory steps through earlier lines starting with what was typed
// before the first step. delta 1 goes back, -1 forward.
func (m *Model) recallHistory(delta int) {
	if m.recallIndex < 0 {
		if delta < 0 {
			return
		}
		m.recallPrefix = m.textInput.Value()
		m.recall = m.term.HistoryMatches(m.recallPrefix)
	}

	index := m.recallIndex + delta
	switch {
	case index >= len(m.recall):
		return
	case index < 0:
		m.setInput(m.recallPrefix)
		m.recallIndex = -1
		return
	}

	m.recallIndex = index
	// newest first
	m.setInput(m.recall[len(m.recall)-1-index])
}

func (m *Model) resetRecall() {
	m.recall = nil
	m.recallIndex = -1
	m.recallPrefix = ""
}

func (m *Model) setInput(value string) {
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
}

func (m *Model) scrollBy(delta int) {
	m.scroll = max(m.scroll+delta, 0)
	if limit := len(m.scrollbackLines()) - m.getVisibleLines(); m.scroll > limit {
		m.scroll = max(limit, 0)
	}
}

// getVisibleLines returns how many scrollback lines can be displayed
func (m *Model) getVisibleLines() int {
	// Reserve space for title, prompt, completions, status bar and help
	reserved := 4 + len(m.completions)
	available := m.height - reserved
	if available < 5 {
		return 5
	}
	return available
}
