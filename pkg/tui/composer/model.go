// Package composer implements the interactive announcement editor: a raw
// text mode, a structured mode that regenerates the tweet from a captured
// line template on every field edit, and a live validation checklist.
package composer

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chakai/pkg/tui/theme"
	"tableflip.dev/chakai/pkg/tweet"
)

const flashDuration = 1500 * time.Millisecond

type structuredField int

const (
	fieldFree structuredField = iota
	fieldWorld
	fieldCreator
	fieldInstrument
)

// flashClearMsg clears the copy feedback. Carries the sequence number it
// was scheduled for so a superseded flash is a no-op.
type flashClearMsg struct {
	seq int
}

// Model owns all composer state: the raw tweet text, the structured field
// values, the captured line template, and the derived validation result.
type Model struct {
	cfg   tweet.Config
	theme theme.Theme

	width      int
	height     int
	bodyHeight int
	editorW    int
	checkW     int
	sideBySide bool

	text       textarea.Model
	structured bool
	focus      structuredField
	free       textinput.Model
	world      textinput.Model
	creator    textinput.Model
	instrument string
	template   []string

	result tweet.Result
	count  int

	confirmGenerate bool
	status          string
	flashSeq        int

	now            func() time.Time
	writeClipboard func(string) error
}

// New constructs the composer against the given template configuration.
func New(cfg tweet.Config) *Model {
	ta := textarea.New()
	ta.Placeholder = "Paste or type the announcement…"
	ta.Focus()

	m := &Model{
		cfg:            cfg,
		theme:          theme.Default(),
		text:           ta,
		free:           newInput("ひとこと"),
		world:          newInput("world name"),
		creator:        newInput("creator"),
		instrument:     cfg.DefaultInstrument,
		now:            time.Now,
		writeClipboard: clipboard.WriteAll,
	}
	m.recompute()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	return ti
}

// Run launches the Bubble Tea program for the composer.
func Run(cfg tweet.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.text.Focus(), textinput.Blink)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg.String()); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.structured {
		switch m.focus {
		case fieldFree:
			m.free, cmd = m.free.Update(msg)
		case fieldWorld:
			m.world, cmd = m.world.Update(msg)
		case fieldCreator:
			m.creator, cmd = m.creator.Update(msg)
		}
		m.rebuild()
	} else {
		m.text, cmd = m.text.Update(msg)
		m.recompute()
	}
	return m, cmd
}

// handleKey runs the composer-level bindings. Unhandled keys fall through
// to the focused input.
func (m *Model) handleKey(key string) (tea.Cmd, bool) {
	if m.confirmGenerate {
		switch key {
		case "y", "enter":
			m.confirmGenerate = false
			return m.generate(), true
		case "n", "esc":
			m.confirmGenerate = false
			m.status = "generate cancelled"
			return nil, true
		}
		// Any other key keeps the confirmation up.
		return nil, true
	}

	switch key {
	case "ctrl+c":
		return tea.Quit, true
	case "ctrl+g":
		if m.dirty() {
			m.confirmGenerate = true
			return nil, true
		}
		return m.generate(), true
	case "ctrl+t":
		return m.enterStructured(), true
	case "esc":
		if m.structured {
			return m.exitStructured(), true
		}
		return nil, true
	case "ctrl+y":
		return m.copy("tweet", m.text.Value()), true
	case "ctrl+e":
		return m.copy(m.instrument, m.instrument), true
	case "tab":
		if m.structured {
			return m.cycleFocus(1), true
		}
	case "shift+tab":
		if m.structured {
			return m.cycleFocus(-1), true
		}
	case "left":
		if m.structured && m.focus == fieldInstrument {
			m.cycleInstrument(-1)
			return nil, true
		}
	case "right":
		if m.structured && m.focus == fieldInstrument {
			m.cycleInstrument(1)
			return nil, true
		}
	}
	return nil, false
}

// dirty reports whether generating would clobber meaningful input.
func (m *Model) dirty() bool {
	return strings.TrimSpace(m.text.Value()) != "" ||
		strings.TrimSpace(m.free.Value()) != "" ||
		strings.TrimSpace(m.world.Value()) != "" ||
		strings.TrimSpace(m.creator.Value()) != ""
}

// generate replaces everything with next week's template and enters
// structured mode with blank fields.
func (m *Model) generate() tea.Cmd {
	c := m.cfg
	c.DefaultInstrument = m.instrument
	s := c.Generate(m.now())

	m.template = s.Lines
	m.text.SetValue(s.Text)
	m.free.SetValue("")
	m.world.SetValue("")
	m.creator.SetValue("")
	m.structured = true
	m.focus = fieldFree
	m.recompute()
	m.status = fmt.Sprintf("generated 第%d回 for %s", s.Meeting, s.Date.Format("2006-01-02"))
	return m.refocus()
}

// enterStructured parses the current text into fields and captures it as
// the template. An unparseable tweet changes nothing.
func (m *Model) enterStructured() tea.Cmd {
	f, err := m.cfg.Parse(m.text.Value())
	if err != nil {
		m.status = "text does not match the template, structured mode unavailable"
		return nil
	}
	m.free.SetValue(f.FreeText)
	m.world.SetValue(f.World)
	m.creator.SetValue(f.Creator)
	m.instrument = f.Instrument
	m.template = strings.Split(m.text.Value(), "\n")
	m.structured = true
	m.focus = fieldFree
	m.status = "structured mode"
	return m.refocus()
}

func (m *Model) exitStructured() tea.Cmd {
	m.structured = false
	m.status = "raw mode"
	return m.refocus()
}

func (m *Model) cycleFocus(step int) tea.Cmd {
	n := int(m.focus) + step
	if n < 0 {
		n = int(fieldInstrument)
	}
	if n > int(fieldInstrument) {
		n = 0
	}
	m.focus = structuredField(n)
	return m.refocus()
}

func (m *Model) cycleInstrument(step int) {
	idx := 0
	for i, e := range tweet.Instruments {
		if e == m.instrument {
			idx = i + step
			break
		}
	}
	if idx < 0 {
		idx = len(tweet.Instruments) - 1
	}
	if idx >= len(tweet.Instruments) {
		idx = 0
	}
	m.instrument = tweet.Instruments[idx]
	m.rebuild()
}

// refocus reconciles input focus with the current mode and field.
func (m *Model) refocus() tea.Cmd {
	m.text.Blur()
	m.free.Blur()
	m.world.Blur()
	m.creator.Blur()
	if !m.structured {
		return m.text.Focus()
	}
	switch m.focus {
	case fieldFree:
		return m.free.Focus()
	case fieldWorld:
		return m.world.Focus()
	case fieldCreator:
		return m.creator.Focus()
	}
	return nil
}

// rebuild regenerates the raw text from the captured template. Structured
// edits always win over manual raw edits while structured mode is active.
func (m *Model) rebuild() {
	if !m.structured {
		return
	}
	f := tweet.Fields{
		FreeText:   m.free.Value(),
		World:      m.world.Value(),
		Creator:    m.creator.Value(),
		Instrument: m.instrument,
	}
	m.text.SetValue(m.cfg.Build(m.template, f))
	m.recompute()
}

// recompute refreshes the derived state from the current raw text.
func (m *Model) recompute() {
	v := m.text.Value()
	m.count = tweet.Length(v)
	m.result = m.cfg.Validate(v)
}

// copy writes value to the clipboard and flashes a confirmation. A failed
// write is reported in the status line and leaves all state alone.
func (m *Model) copy(label, value string) tea.Cmd {
	if err := m.writeClipboard(value); err != nil {
		m.status = "clipboard: " + err.Error()
		return nil
	}
	m.flashSeq++
	seq := m.flashSeq
	m.status = "copied " + label
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}
