// Package bubbletea provides a terminal pager built on Bubble Tea.
//
// Every key press goes through an hjkl.Dispatcher. While the search prompt
// has focus the dispatcher sees the keys as text entry and leaves them to the
// prompt.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/hjkl"
)

// helpColumnSize is the number of bindings per column in the help view.
const helpColumnSize = 4

type (
	watchStartedMsg    struct{ changes <-chan struct{} }
	documentChangedMsg struct{}
	documentLoadedMsg  struct{ doc *hjkl.Document }
	yankedMsg          struct {
		line int
		err  error
	}
	errMsg struct{ err error }
)

// Model is the Bubble Tea model for paging a document.
// It is used by pointer: key bindings hold on to it.
type Model struct {
	ctx context.Context
	doc *hjkl.Document

	// Key handling
	dispatcher *hjkl.Dispatcher
	scroller   *Scroller
	promptKeys PromptKeyMap
	step       hjkl.Step

	// Collaborators
	tokenizer hjkl.Tokenizer
	markdown  hjkl.Renderer
	clipboard hjkl.Clipboard
	watcher   hjkl.Watcher
	loader    hjkl.Loader
	logger    *log.Logger

	// UI state
	viewport    viewport.Model
	prompt      textinput.Model
	help        help.Model
	styles      hjkl.Styles
	renderer    *lipgloss.Renderer
	lineNumbers bool
	statusBar   bool
	tabWidth    int
	width       int
	height      int
	ready       bool
	showHelp    bool
	quitting    bool

	lines      []string // plain text of each display line
	search     search
	message    string
	messageErr bool
	changes    <-chan struct{}
	cmds       []tea.Cmd // commands queued by key bindings
}

// Option configures a Model.
type Option func(*Model)

// WithContext sets the context used for watching and reloading the document.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t hjkl.Theme) Option {
	return func(m *Model) {
		m.styles = t.Styles()
	}
}

// WithTokenizer sets the tokenizer for syntax highlighting.
func WithTokenizer(t hjkl.Tokenizer) Option {
	return func(m *Model) {
		m.tokenizer = t
	}
}

// WithMarkdownRenderer sets the renderer used for markdown documents.
func WithMarkdownRenderer(r hjkl.Renderer) Option {
	return func(m *Model) {
		m.markdown = r
	}
}

// WithClipboard enables yanking lines with yy.
func WithClipboard(c hjkl.Clipboard) Option {
	return func(m *Model) {
		m.clipboard = c
	}
}

// WithFollow reloads the document through l whenever w reports a change.
func WithFollow(w hjkl.Watcher, l hjkl.Loader) Option {
	return func(m *Model) {
		m.watcher = w
		m.loader = l
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithStep sets the distance moved by h, j, k and l.
func WithStep(s hjkl.Step) Option {
	return func(m *Model) {
		m.step = s
	}
}

// WithLineNumbers shows a line number gutter for non-markdown documents.
func WithLineNumbers(on bool) Option {
	return func(m *Model) {
		m.lineNumbers = on
	}
}

// WithStatusBar shows or hides the status bar.
func WithStatusBar(on bool) Option {
	return func(m *Model) {
		m.statusBar = on
	}
}

// NewModel creates a Model for doc.
func NewModel(doc *hjkl.Document, opts ...Option) *Model {
	m := &Model{
		ctx:        context.Background(),
		doc:        doc,
		promptKeys: DefaultPromptKeyMap(),
		step:       hjkl.Step{X: hjkl.DefaultStep, Y: 1},
		logger:     log.New(io.Discard),
		statusBar:  true,
		tabWidth:   DefaultTabWidth,
		search:     search{current: -1},
	}
	for _, opt := range opts {
		opt(m)
	}

	m.prompt = textinput.New()
	m.prompt.Prompt = "/"
	m.prompt.Placeholder = "search"
	m.prompt.PromptStyle = styleFromColorPair(m.styles.Prompt, m.renderer)
	m.help = help.New()

	m.scroller = NewScroller(&m.viewport)
	m.dispatcher = hjkl.NewDispatcher(hjkl.WithPanicHandler(func(b hjkl.Binding, v any) {
		m.logger.Error("key binding panicked", "keys", b.Sequence.String(), "panic", v)
	}))
	hjkl.BindNavigation(m.dispatcher, m.scroller, m.step)
	m.bindPagerKeys()
	return m
}

func (m *Model) bindPagerKeys() {
	bind := func(keys, desc string, action hjkl.Action) {
		m.dispatcher.Bind(hjkl.Binding{Sequence: hjkl.MustParseSequence(keys), Help: desc, Action: action})
	}
	// Arrow names are single keys; ParseSequence would split "up" into u, p.
	bindKey := func(key hjkl.Symbol, action hjkl.Action) {
		seq, err := hjkl.NewSequence(key)
		if err != nil {
			panic(err)
		}
		m.dispatcher.Bind(hjkl.Binding{Sequence: seq, Action: action})
	}
	bindKey("down", func() { m.scroller.ScrollBy(0, 1) })
	bindKey("up", func() { m.scroller.ScrollBy(0, -1) })
	bind("ctrl+d", "half page down", func() { m.viewport.HalfPageDown() })
	bind("ctrl+u", "half page up", func() { m.viewport.HalfPageUp() })
	bind("/", "search", m.openPrompt)
	bind("n", "next match", func() { m.jump((*search).next) })
	bind("N", "previous match", func() { m.jump((*search).prev) })
	bind("yy", "yank line", m.yank)
	bind("?", "toggle help", m.toggleHelp)
	bind("q", "quit", m.quit)
	bind("ctrl+c", "", m.quit)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil || m.loader == nil || m.doc == nil || isStdin(m.doc.Name) {
		return nil
	}
	ctx, w, name := m.ctx, m.watcher, m.doc.Name
	return func() tea.Msg {
		changes, err := w.Watch(ctx, name)
		if err != nil {
			return errMsg{fmt.Errorf("watch %s: %w", name, err)}
		}
		return watchStartedMsg{changes: changes}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case watchStartedMsg:
		m.changes = msg.changes
		return m, waitForChange(m.changes)
	case documentChangedMsg:
		return m, tea.Batch(m.reload(), waitForChange(m.changes))
	case documentLoadedMsg:
		m.setDocument(msg.doc)
		return m, nil
	case yankedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("yank: %w", msg.err))
		} else {
			m.setMessage(fmt.Sprintf("yanked line %d", msg.line))
		}
		return m, nil
	case errMsg:
		m.setError(msg.err)
		return m, nil
	}

	if m.prompt.Focused() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey feeds msg to the dispatcher, then to the prompt if it had focus
// when the key arrived.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	editing := m.prompt.Focused()
	if !editing {
		m.message = ""
	}

	ev := KeyEvent(msg, m.target())
	m.logger.Debug("key", "key", ev.Key, "editing", editing)
	m.dispatcher.Handle(ev)

	cmds := m.cmds
	m.cmds = nil
	if m.quitting {
		return tea.Quit
	}
	if editing {
		cmds = append(cmds, m.updatePrompt(msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) target() hjkl.Target {
	if m.prompt.Focused() {
		return hjkl.Target{Kind: hjkl.TargetTextInput}
	}
	return hjkl.Target{Kind: hjkl.TargetDocument}
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.promptKeys.Confirm):
		pattern := m.prompt.Value()
		m.closePrompt()
		if pattern != "" {
			m.runSearch(pattern)
		}
		return nil
	case key.Matches(msg, m.promptKeys.Cancel):
		m.closePrompt()
		return nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Model) openPrompt() {
	m.prompt.Reset()
	m.cmds = append(m.cmds, m.prompt.Focus())
	m.layout()
}

func (m *Model) closePrompt() {
	m.prompt.Blur()
	m.prompt.Reset()
	m.dispatcher.Reset()
	m.layout()
}

func (m *Model) runSearch(pattern string) {
	m.search = newSearch(pattern, m.lines, m.viewport.YOffset)
	m.render()
	line, ok := m.search.line()
	if !ok {
		m.setError(errors.New(m.search.status()))
		return
	}
	m.viewport.SetYOffset(line)
	m.setMessage(m.search.status())
}

func (m *Model) jump(move func(*search) (int, bool)) {
	if !m.search.active() {
		m.setError(errors.New("no previous search"))
		return
	}
	line, ok := move(&m.search)
	if !ok {
		m.setError(errors.New(m.search.status()))
		return
	}
	m.viewport.SetYOffset(line)
	m.setMessage(m.search.status())
}

func (m *Model) yank() {
	line := m.viewport.YOffset
	if line >= len(m.lines) {
		return
	}
	if m.clipboard == nil {
		m.setError(errors.New("clipboard unavailable"))
		return
	}
	clip, text := m.clipboard, m.lines[line]
	m.cmds = append(m.cmds, func() tea.Msg {
		return yankedMsg{line: line + 1, err: clip.Copy(text)}
	})
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	m.layout()
}

func (m *Model) quit() {
	m.quitting = true
}

func (m *Model) reload() tea.Cmd {
	ctx, l, name := m.ctx, m.loader, m.doc.Name
	return func() tea.Msg {
		doc, err := l.Load(ctx, name)
		if err != nil {
			return errMsg{fmt.Errorf("reload %s: %w", name, err)}
		}
		return documentLoadedMsg{doc: doc}
	}
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return documentChangedMsg{}
	}
}

// setDocument replaces the document, staying at the bottom when already
// there so appended lines scroll into view.
func (m *Model) setDocument(doc *hjkl.Document) {
	atBottom := m.ready && m.viewport.AtBottom()
	m.doc = doc
	m.render()
	if m.search.active() {
		m.search = newSearch(m.search.pattern, m.lines, m.viewport.YOffset)
		m.render()
	}
	if atBottom {
		m.viewport.GotoBottom()
	}
	m.logger.Info("document reloaded", "name", doc.Name, "lines", len(m.lines))
	m.setMessage("reloaded")
}

func (m *Model) setSize(width, height int) {
	widthChanged := m.width != width
	m.width, m.height = width, height
	m.help.Width = width
	m.prompt.Width = max(width-lipgloss.Width(m.prompt.Prompt)-1, 0)

	if !m.ready {
		m.viewport = viewport.New(width, m.viewportHeight())
		m.viewport.SetHorizontalStep(m.step.X)
		m.ready = true
		m.render()
		return
	}
	m.viewport.Width = width
	m.layout()
	if widthChanged {
		m.render()
	}
}

// layout fits the viewport above the footer.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	m.viewport.Height = m.viewportHeight()
	m.viewport.SetYOffset(m.viewport.YOffset)
}

func (m *Model) viewportHeight() int {
	footer := 0
	if m.statusBar || m.prompt.Focused() {
		footer++
	}
	if m.showHelp {
		footer += lipgloss.Height(m.helpView())
	}
	return max(m.height-footer, 1)
}

func (m *Model) render() {
	if !m.ready {
		return
	}
	out, err := renderDocument(renderConfig{
		doc:         m.doc,
		styles:      m.styles,
		renderer:    m.renderer,
		width:       m.width,
		tokenizer:   m.tokenizer,
		markdown:    m.markdown,
		lineNumbers: m.lineNumbers,
		tabWidth:    m.tabWidth,
		matches:     m.search.lineSet(),
	})
	if err != nil {
		m.logger.Warn("markdown rendering failed", "err", err)
		m.setError(fmt.Errorf("render markdown: %w", err))
	}
	m.lines = out.lines
	m.viewport.SetContent(out.content)
}

func (m *Model) setMessage(s string) {
	m.message, m.messageErr = s, false
}

func (m *Model) setError(err error) {
	m.logger.Debug("status error", "err", err)
	m.message, m.messageErr = err.Error(), true
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	parts := []string{m.viewport.View()}
	if m.showHelp {
		parts = append(parts, m.helpView())
	}
	switch {
	case m.prompt.Focused():
		parts = append(parts, m.prompt.View())
	case m.statusBar:
		parts = append(parts, m.statusBarView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) helpView() string {
	keys := helpKeys(m.dispatcher.Bindings())
	var groups [][]key.Binding
	for len(keys) > helpColumnSize {
		groups = append(groups, keys[:helpColumnSize])
		keys = keys[helpColumnSize:]
	}
	groups = append(groups, keys)
	return m.help.FullHelpView(groups)
}

func (m *Model) statusBarView() string {
	barStyle := styleFromColorPair(m.styles.StatusBar, m.renderer)
	keyStyle := styleFromColorPair(m.styles.StatusKey, m.renderer)
	msgStyle := barStyle
	if m.messageErr {
		msgStyle = styleFromColorPair(m.styles.Error, m.renderer)
	}

	left := barStyle.Render(" " + m.displayName() + " ")
	if m.message != "" {
		left += barStyle.Render(" ") + msgStyle.Render(m.message)
	}

	var right string
	if pending := m.dispatcher.Pending(); pending != hjkl.NoSymbol {
		right += keyStyle.Render(string(pending)) + barStyle.Render("  ")
	}
	right += barStyle.Render(m.scrollPosition() + " ")

	room := m.width - lipgloss.Width(right)
	if lipgloss.Width(left) > room {
		left = ansi.Truncate(left, max(room, 0), "…")
	}
	if gap := room - lipgloss.Width(left); gap > 0 {
		left += barStyle.Render(strings.Repeat(" ", gap))
	}
	return left + right
}

func (m *Model) displayName() string {
	if m.doc == nil || isStdin(m.doc.Name) {
		return "stdin"
	}
	return m.doc.Name
}

// scrollPosition returns a string indicating the scroll position.
func (m *Model) scrollPosition() string {
	switch {
	case m.viewport.AtTop() && m.viewport.AtBottom():
		return "All"
	case m.viewport.AtTop():
		return "Top"
	case m.viewport.AtBottom():
		return "Bot"
	}
	percent := int(m.viewport.ScrollPercent() * 100)
	return fmt.Sprintf("%2d%%", percent)
}

func isStdin(name string) bool {
	return name == "" || name == "-"
}

// Viewer implements hjkl.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []Option
}

var _ hjkl.Viewer = (*Viewer)(nil)

// NewViewer creates a Viewer whose models are built with opts.
func NewViewer(opts ...Option) *Viewer {
	return &Viewer{opts: opts}
}

// View displays the document and blocks until the user exits or ctx is done.
func (v *Viewer) View(ctx context.Context, doc *hjkl.Document) error {
	opts := append([]Option{WithContext(ctx)}, v.opts...)
	p := tea.NewProgram(NewModel(doc, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
