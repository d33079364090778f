package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/skim/internal/orp"
	"github.com/san-kum/skim/internal/reader"
	"github.com/san-kum/skim/internal/tokenize"
)

const (
	defaultWidth    = 80
	historyCapacity = 120
)

// TickMsg is one beat of the playback timer. It carries the generation of
// the timer that produced it; ticks from an orphaned generation are
// dropped, so re-arming at a new pace can never double-advance the cursor.
type TickMsg struct {
	Gen int
	At  time.Time
}

// loadedMsg carries the result of a text acquisition.
type loadedMsg struct {
	tokens []string
	err    error
}

// Source supplies raw reader text. Production code passes clip.Read; tests
// substitute a stub.
type Source func() (string, error)

// Model hosts a reader.Engine inside Bubble Tea. The engine holds all
// session state; the model owns presentation and the recurring timer.
type Model struct {
	engine  *reader.Engine
	source  Source
	keys    keyMap
	help    help.Model
	bar     progress.Model
	tickGen int
	pace    []float64
	notice  string
	width   int
	skip    int
}

func NewModel(engine *reader.Engine, source Source, skip int) Model {
	if skip <= 0 {
		skip = reader.SkipSize
	}
	return Model{
		engine: engine,
		source: source,
		keys:   defaultKeyMap(),
		help:   help.New(),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		pace:   []float64{float64(engine.Pace())},
		width:  defaultWidth,
		skip:   skip,
	}
}

func (m Model) Init() tea.Cmd { return m.load }

// load acquires text and tokenizes it off the update loop.
func (m Model) load() tea.Msg {
	text, err := m.source()
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{tokens: tokenize.Split(text)}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 24
		if m.bar.Width > 48 {
			m.bar.Width = 48
		}
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			// Acquisition failure leaves the whole session alone: the
			// engine is untouched and any armed timer stays live.
			m.notice = "could not read clipboard: " + msg.err.Error()
			return m, nil
		}
		// Load stops playback even when it rejects the new sequence, so
		// the timer armed for the previous text is orphaned first.
		m.tickGen++
		if err := m.engine.Load(msg.tokens); err != nil {
			m.notice = "nothing to read"
			return m, nil
		}
		m.notice = ""
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen || !m.engine.Running() {
			return m, nil
		}
		m.engine.Advance()
		if !m.engine.Running() {
			// End of text; the pass is over and the timer stays down.
			return m, nil
		}
		cmd := m.arm()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if m.engine.TogglePlay() {
			cmd := m.arm()
			return m, cmd
		}
		m.tickGen++ // paused: orphan the armed tick
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.engine.Seek(-m.skip)

	case key.Matches(msg, m.keys.Forward):
		m.engine.Seek(m.skip)

	case key.Matches(msg, m.keys.Faster):
		return m.adjustPace(reader.PaceStep)

	case key.Matches(msg, m.keys.Slower):
		return m.adjustPace(-reader.PaceStep)

	case key.Matches(msg, m.keys.Reload):
		return m, m.load

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) adjustPace(delta int) (tea.Model, tea.Cmd) {
	m.engine.SetPace(m.engine.Pace() + delta)
	m.pace = append(m.pace, float64(m.engine.Pace()))
	if len(m.pace) > historyCapacity {
		m.pace = m.pace[1:]
	}
	if m.engine.Running() {
		// Re-arm at the new period without touching the cursor.
		cmd := m.arm()
		return m, cmd
	}
	return m, nil
}

// arm schedules the next tick at the current pace. Bumping the generation
// first makes any previously scheduled tick a no-op, so exactly one live
// timer exists per session.
func (m *Model) arm() tea.Cmd {
	m.tickGen++
	gen := m.tickGen
	return tea.Tick(m.engine.Interval(), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

func (m Model) View() string {
	snap := m.engine.Snapshot()

	var s strings.Builder
	s.WriteString(headerStyle.Render("SKIM") + "\n")
	if m.notice != "" {
		s.WriteString(noticeStyle.Render(m.notice) + "\n")
	}

	s.WriteString(m.rule('┬') + "\n")
	s.WriteString(m.wordLine(snap.Word) + "\n")
	s.WriteString(m.rule('┴') + "\n\n")

	s.WriteString(m.bar.ViewAs(snap.Progress) + "\n\n")

	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(strconv.Itoa(snap.Pace)+" wpm") + "\n")
	s.WriteString(labelStyle.Render("Status") + valueStyle.Render(snap.Status()) + "\n")
	s.WriteString(labelStyle.Render("Progress") + valueStyle.Render(snap.ProgressLabel()) + "\n")
	s.WriteString(labelStyle.Render("Remaining") + valueStyle.Render(reader.FormatRemaining(snap.Remaining)) + "\n")

	if len(m.pace) > 1 {
		chart := asciigraph.Plot(m.pace, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("pace"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return s.String()
}

// wordLine places the current word so its ORP pivot sits on the view's
// center column, mirroring the SVG frame layout in character cells.
func (m Model) wordLine(word string) string {
	prefix, pivot, suffix := orp.Split(word)
	pad := m.width/2 - len([]rune(prefix))
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) +
		wordStyle.Render(prefix) + pivotStyle.Render(pivot) + wordStyle.Render(suffix)
}

// rule draws a horizontal guide with a tick marking the pivot column.
func (m Model) rule(tick rune) string {
	w := m.width
	if w < 20 {
		w = 20
	}
	r := []rune(strings.Repeat("─", w))
	r[w/2] = tick
	return guideStyle.Render(string(r))
}

// Run starts the reader TUI and blocks until the user quits.
func Run(engine *reader.Engine, source Source, skip int) error {
	p := tea.NewProgram(NewModel(engine, source, skip), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
