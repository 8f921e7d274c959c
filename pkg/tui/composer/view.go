package composer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/chakai/pkg/tweet"
)

const (
	labelWidth    = 12
	checkPaneWide = 40
)

// layout recomputes pane sizes after a resize.
func (m *Model) layout() {
	w := m.width
	if w <= 0 {
		w = 80
	}
	h := m.height
	if h <= 0 {
		h = 24
	}

	m.bodyHeight = h - 3 // title plus two footer rows
	if m.bodyHeight < 5 {
		m.bodyHeight = 5
	}

	m.sideBySide = w >= 84
	if m.sideBySide {
		m.checkW = checkPaneWide
		m.editorW = w - m.checkW
	} else {
		m.checkW = w
		m.editorW = w
	}

	taHeight := m.bodyHeight - 2
	if !m.sideBySide {
		taHeight = m.bodyHeight/2 - 2
	}
	if taHeight < 3 {
		taHeight = 3
	}
	m.text.SetWidth(m.editorW - 4)
	m.text.SetHeight(taHeight)

	inputWidth := m.editorW - 4 - labelWidth
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.free.SetWidth(inputWidth)
	m.world.SetWidth(inputWidth)
	m.creator.SetWidth(inputWidth)
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	if m.width == 0 {
		return "loading…", nil
	}

	title := m.theme.Title.Render(" chakai — " + m.cfg.EventName)

	if m.confirmGenerate {
		return title + "\n" + m.confirmView() + "\n" + m.footerView(), nil
	}

	editor, cursor := m.editorView()
	checks := m.checkView()

	var body string
	if m.sideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, editor, checks)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, editor, checks)
	}

	if cursor != nil {
		cursor.Position.Y++ // title row
	}
	return title + "\n" + body + "\n" + m.footerView(), cursor
}

func (m *Model) editorView() (string, *tea.Cursor) {
	frame := m.theme.Editor.Frame
	if !m.confirmGenerate {
		frame = m.theme.Editor.FocusedFrame
	}
	frame = frame.Width(m.editorW - 2)

	if !m.structured {
		var cursor *tea.Cursor
		if c := m.text.Cursor(); c != nil {
			clone := *c
			clone.Position.X += 2 // border plus padding
			clone.Position.Y += 1 // top border
			cursor = &clone
		}
		return frame.Render(m.text.View()), cursor
	}

	rows := []string{
		m.fieldRow(fieldFree, "free text", m.free.View()),
		m.fieldRow(fieldWorld, "world", m.world.View()),
		m.fieldRow(fieldCreator, "creator", m.creator.View()),
		m.fieldRow(fieldInstrument, "instrument", m.instrument+"  "+m.theme.Editor.Hint.Render("←/→ to change")),
		"",
		m.theme.Editor.Hint.Render("esc returns to raw editing"),
		"",
	}
	rows = append(rows, m.previewLines()...)

	var cursor *tea.Cursor
	if c := m.focusedCursor(); c != nil {
		clone := *c
		clone.Position.X += 2 + labelWidth
		clone.Position.Y += 1 + int(m.focus)
		cursor = &clone
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)), cursor
}

func (m *Model) focusedCursor() *tea.Cursor {
	switch m.focus {
	case fieldFree:
		return m.free.Cursor()
	case fieldWorld:
		return m.world.Cursor()
	case fieldCreator:
		return m.creator.Cursor()
	}
	return nil
}

func (m *Model) fieldRow(f structuredField, label, value string) string {
	style := m.theme.Editor.Label
	if m.focus == f {
		style = m.theme.Editor.FocusedLabel
	}
	return style.Render(pad(label, labelWidth)) + value
}

// previewLines shows the rebuilt tweet below the fields so the user sees
// every keystroke land.
func (m *Model) previewLines() []string {
	max := m.editorW - 4
	lines := strings.Split(m.text.Value(), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, clip(l, max))
	}
	return out
}

func (m *Model) checkView() string {
	t := m.theme.Check
	rows := []string{t.Title.Render("checks")}
	rows = append(rows,
		m.checkRow(m.result.IsSunday, "Sunday date"),
		m.checkRow(m.result.HasTime, "time range"),
		m.checkRow(m.result.HasValidLocation, "location line"),
		m.checkRow(m.result.HasHashtag, "hashtag "+m.cfg.Hashtag),
		m.checkRow(!m.result.HasPlaceholders, "placeholders filled"),
		m.checkRow(m.result.IsCorrectMeeting, m.meetingLabel()),
	)

	if info := m.infoLines(); len(info) > 0 {
		rows = append(rows, "", t.Title.Render("extracted"))
		rows = append(rows, info...)
	}

	rows = append(rows, "", m.verdictLine())
	return t.Frame.Width(m.checkW - 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) meetingLabel() string {
	if m.result.ExpectedMeeting > 0 {
		return fmt.Sprintf("meeting number (expect 第%d回)", m.result.ExpectedMeeting)
	}
	return "meeting number"
}

func (m *Model) checkRow(ok bool, label string) string {
	if ok {
		return m.theme.Check.Pass.Render("✓ ") + label
	}
	return m.theme.Check.Fail.Render("✗ ") + label
}

func (m *Model) infoLines() []string {
	i := m.result.Info
	style := m.theme.Check.Info
	var out []string
	add := func(label, v string) {
		if v == "" {
			return
		}
		out = append(out, style.Render(pad(label, 9))+clip(v, m.checkW-13))
	}
	add("meeting", i.MeetingNumber)
	add("date", i.Date)
	add("time", i.Time)
	add("world", i.WorldName)
	add("creator", i.Creator)
	return out
}

func (m *Model) verdictLine() string {
	if m.result.IsValid {
		return m.theme.Check.Pass.Render("ready to post")
	}
	return m.theme.Check.Fail.Render("not ready to post")
}

func (m *Model) confirmView() string {
	t := m.theme.Modal
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render("overwrite current input?"),
		"",
		t.Body.Render("現在の入力内容は上書きされます。続行しますか?"),
		"",
		m.theme.Editor.Hint.Render("y / enter to continue, n / esc to cancel"),
	)
	return lipgloss.Place(m.width, m.bodyHeight, lipgloss.Center, lipgloss.Center, t.Frame.Render(body))
}

func (m *Model) footerView() string {
	count := m.theme.Footer.Count
	if m.count > tweet.MaxLength {
		count = m.theme.Footer.Over
	}
	gauge := count.Render(fmt.Sprintf(" %d/%d", m.count, tweet.MaxLength))

	status := ""
	if m.status != "" {
		status = m.theme.Footer.Status.Render("  " + m.status)
	}

	mode := "raw"
	if m.structured {
		mode = "structured"
	}
	help := m.theme.Footer.Help.Render(
		" " + mode + " · ctrl+g generate · ctrl+t structured · ctrl+y copy · ctrl+e copy emoji · ctrl+c quit")

	return clip(gauge+status, m.width) + "\n" + clip(help, m.width)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func clip(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes)
}
