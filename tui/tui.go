// Package tui provides a Bubble Tea terminal UI for the chassis editor: a
// title line, the Structure and Armor panels, an output log, the status bar
// and a command line feeding engine.Step.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/VicenteCartas/megameklab/engine"
	"github.com/VicenteCartas/megameklab/engine/save"
	"github.com/VicenteCartas/megameklab/engine/unit"
	"github.com/VicenteCartas/megameklab/library"
	"github.com/VicenteCartas/megameklab/logging"
	"github.com/VicenteCartas/megameklab/types"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Library is the subset of the unit library the TUI uses.
type Library interface {
	Put(ctx context.Context, name string, u *types.Unit) (string, error)
	Get(ctx context.Context, name string) (*types.Unit, error)
	List(ctx context.Context) ([]library.Entry, error)
	Delete(ctx context.Context, name string) error
}

// Options configures a Model.
type Options struct {
	Library Library                 // may be nil
	SaveDir string                  // directory for /save and /load
	Logs    <-chan logging.LogEntry // from logging.InitForTUI; may be nil
	Trace   bool
}

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed user input
	isSystem bool // true for meta-command output
}

// Model is the Bubble Tea model for the editor.
type Model struct {
	engine *engine.Engine
	lib    Library
	logs   <-chan logging.LogEntry

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine
	panel    []string
	active   tab

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastCmd  string
	saveDir  string
}

// outputMsg carries output into the Update loop.
type outputMsg struct {
	input    string
	lines    []string
	isSystem bool
}

// logMsg carries one log entry drained from the logging channel.
type logMsg logging.LogEntry

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "help"
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	saveDir := opts.SaveDir
	if saveDir == "" {
		saveDir = "."
	}
	return Model{
		engine:  eng,
		lib:     opts.Library,
		logs:    opts.Logs,
		input:   ti,
		history: NewHistory(100),
		trace:   opts.Trace,
		saveDir: saveDir,
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, opts Options) error {
	m := New(eng, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init shows the unit summary and starts draining the log channel.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.initialOutput()}
	if m.logs != nil {
		cmds = append(cmds, waitForLog(m.logs))
	}
	return tea.Batch(cmds...)
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		result := m.engine.Step("status")
		lines := append([]string{"Type help for editor commands, /help for the rest."}, result.Output...)
		return outputMsg{lines: lines}
	}
}

func waitForLog(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(entry)
	}
}

// Update handles messages (key presses, window resize, output, logs).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, 1)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		}
		m.layout()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quit()

		case "enter":
			return m.handleEnter()

		case "tab":
			m.active = m.active.next()
			m.layout()
			return m, nil

		case "ctrl+y":
			m = m.appendOutput(outputMsg{lines: m.cmdCopy(""), isSystem: true})
			return m, nil

		case "up":
			if prev, ok := m.history.Prev(m.input.Value()); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			next, _ := m.history.Next()
			m.input.SetValue(next)
			m.input.CursorEnd()
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case outputMsg:
		m = m.appendOutput(msg)

	case logMsg:
		m.rawLines = append(m.rawLines, rawLine{text: logging.LogEntry(msg).String(), kind: kindLog})
		m.refreshViewport()
		return m, waitForLog(m.logs)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := m.engine.Close(); err != nil {
		logging.Error("tui", err, "shutdown")
	}
	m.quitting = true
	return m, tea.Quit
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}
	m.history.Push(input)

	if strings.EqualFold(input, "again") {
		if m.lastCmd == "" {
			m = m.appendOutput(outputMsg{input: input, lines: []string{"Nothing to repeat."}, isSystem: true})
			return m, nil
		}
		input = m.lastCmd
	} else if !strings.HasPrefix(input, "/") {
		m.lastCmd = input
	}

	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(outputMsg{input: input, lines: output, isSystem: true})
		if quit {
			return m.quit()
		}
		return m, nil
	}

	result := m.engine.Step(input)
	m.followEvents(result.Events)
	output := result.Output
	if m.trace {
		output = append(output, formatTrace(result)...)
	}
	m = m.appendOutput(outputMsg{input: input, lines: output})
	return m, nil
}

// followEvents brings the panel that an edit touched to the front.
func (m *Model) followEvents(events []types.Event) {
	for _, ev := range events {
		if ev.Type == types.EventArmorChanged {
			m.active = tabArmor
		} else {
			m.active = tabStructure
		}
	}
}

// appendOutput adds lines to the log, re-renders the panel and refreshes
// the viewport.
func (m Model) appendOutput(msg outputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}
	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}
	m.rawLines = append(m.rawLines, rawLine{})

	m.layout()
	return m
}

// layout renders the active panel and sizes the viewport to what is left:
// header, tab bar, panel, status bar and input take the rest.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	switch m.active {
	case tabArmor:
		m.panel = armorLines(m.engine)
	default:
		m.panel = structureLines(m.engine, m.width)
	}

	vpHeight := m.height - len(m.panel) - 5
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = vpHeight
	m.refreshViewport()
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, styleUserInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given display width, breaking at
// word boundaries. Existing newlines are kept.
func wordWrap(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}

	paragraphs := strings.Split(text, "\n")
	for p, para := range paragraphs {
		var b strings.Builder
		lineLen := 0
		for i, word := range strings.Fields(para) {
			wLen := runewidth.StringWidth(word)
			switch {
			case i == 0:
				lineLen = wLen
			case lineLen+1+wLen > width:
				b.WriteString("\n")
				lineLen = wLen
			default:
				b.WriteString(" ")
				lineLen += 1 + wLen
			}
			b.WriteString(word)
		}
		paragraphs[p] = b.String()
	}
	return strings.Join(paragraphs, "\n")
}

// View renders the full layout.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return strings.Join([]string{
		m.renderHeader(),
		renderTabBar(m.active),
		stylePanel.Width(m.width).Render(strings.Join(m.panel, "\n")),
		m.viewport.View(),
		m.renderStatusBar(),
		m.input.View(),
	}, "\n")
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	args := parts[1:]
	arg := strings.Join(args, " ")

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/save":
		return m.cmdSave(arg), false

	case "/load":
		return m.cmdLoad(arg), false

	case "/library", "/lib":
		return m.cmdLibrary(args), false

	case "/copy":
		return m.cmdCopy(arg), false

	case "/tab":
		t, ok := parseTab(arg)
		if !ok {
			return []string{fmt.Sprintf("Unknown tab %q. Tabs: %s.", arg, strings.Join(tabNames, ", "))}, false
		}
		m.active = t
		return []string{tabNames[t] + " tab."}, false

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.engine.Step("options").Output, false

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdSave(name string) []string {
	exp := save.DirExporter{Dir: m.saveDir}
	var (
		where string
		err   error
	)
	if name == "" {
		where, err = m.engine.Save(context.Background(), exp)
	} else {
		file := withExt(name)
		if filepath.IsAbs(file) {
			exp.Dir, file = filepath.Split(file)
		}
		where, err = exp.Export(context.Background(), file, m.engine.Unit)
	}
	if err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	return []string{fmt.Sprintf("Unit saved to %s.", where)}
}

func (m *Model) cmdLoad(name string) []string {
	if name == "" {
		name = unit.FileName(m.engine.Unit)
	}
	path := withExt(name)
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.saveDir, path)
	}
	u, err := save.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}
	return m.load(u, name)
}

func (m *Model) load(u *types.Unit, from string) []string {
	if !m.engine.LoadUnit(u) {
		return []string{fmt.Sprintf("Load failed: %s is not a Mech.", from)}
	}
	m.active = tabStructure
	return append([]string{fmt.Sprintf("Unit loaded from %s.", from)}, m.engine.Step("status").Output...)
}

func (m *Model) cmdLibrary(args []string) []string {
	if m.lib == nil {
		return []string{"No unit library is open."}
	}
	ctx := context.Background()

	sub := "list"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
		args = args[1:]
	}
	name := strings.Join(args, " ")

	switch sub {
	case "list", "ls":
		entries, err := m.lib.List(ctx)
		if err != nil {
			return []string{fmt.Sprintf("Library failed: %v", err)}
		}
		if len(entries) == 0 {
			return []string{"The library is empty."}
		}
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, fmt.Sprintf("%s  %gt  %s", e.Name, e.Tonnage, e.Updated.Format("2006-01-02")))
		}
		return out

	case "save", "put":
		if name == "" {
			name = unit.Title(m.engine.Unit)
		}
		if _, err := m.lib.Put(ctx, name, m.engine.Unit); err != nil {
			return []string{fmt.Sprintf("Library save failed: %v", err)}
		}
		return []string{fmt.Sprintf("Stored %s in the library.", name)}

	case "load", "get":
		u, err := m.lib.Get(ctx, name)
		if errors.Is(err, library.ErrNotFound) {
			return []string{fmt.Sprintf("No library unit named %q.", name)}
		}
		if err != nil {
			return []string{fmt.Sprintf("Library load failed: %v", err)}
		}
		return m.load(u, "library:"+name)

	case "delete", "rm":
		err := m.lib.Delete(ctx, name)
		if errors.Is(err, library.ErrNotFound) {
			return []string{fmt.Sprintf("No library unit named %q.", name)}
		}
		if err != nil {
			return []string{fmt.Sprintf("Library delete failed: %v", err)}
		}
		return []string{fmt.Sprintf("Removed %s from the library.", name)}
	}
	return []string{fmt.Sprintf("Unknown library command: %s. Use list, save, load or delete.", sub)}
}

// cmdCopy puts the unit summary, or its JSON file form, on the clipboard.
func (m *Model) cmdCopy(format string) []string {
	var text string
	switch strings.ToLower(format) {
	case "json":
		data, err := save.Save(m.engine.Unit)
		if err != nil {
			return []string{fmt.Sprintf("Copy failed: %v", err)}
		}
		text = string(data)
	case "", "summary":
		text = strings.Join(m.engine.Step("status").Output, "\n")
	default:
		return []string{"Use /copy or /copy json."}
	}
	if err := writeClipboard(text); err != nil {
		return []string{fmt.Sprintf("Copy failed: %v", err)}
	}
	return []string{"Copied to clipboard."}
}

func (m *Model) cmdHelp() []string {
	help := []string{
		"System:",
		"  /save [file]         Save the unit as JSON",
		"  /load [file]         Load a unit file",
		"  /library [list]      List units in the library",
		"  /library save [n]    Store the unit in the library",
		"  /library load <n>    Load a unit from the library",
		"  /library delete <n>  Remove a unit from the library",
		"  /copy [json]         Copy the unit to the clipboard (Ctrl+Y)",
		"  /tab <name>          Show the Structure or Armor panel (Tab)",
		"  /quit                Exit",
		"  /help                Show this help",
		"  /state               Debug: list every option set",
		"  /trace               Toggle event and refresh trace output",
		"  again                Repeat the last editor command",
		"",
	}
	help = append(help, m.engine.Step("help").Output...)
	return append(help, "", "Navigation: PgUp/PgDn to scroll, Up/Down for command history")
}

func formatTrace(result types.Result) []string {
	var lines []string
	if len(result.Events) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
		}
	}
	if len(result.Refreshed) > 0 {
		names := make([]string, len(result.Refreshed))
		for i, ch := range result.Refreshed {
			names[i] = string(ch)
		}
		lines = append(lines, "[trace] Refreshed: "+strings.Join(names, ", "))
	}
	return lines
}

func withExt(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".json"
	}
	return name
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
