package composer

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chakai/pkg/tweet"
)

// tuesday precedes the 2025-02-09 Sunday, meeting 209 under the anchor.
var tuesday = time.Date(2025, time.February, 4, 10, 0, 0, 0, time.UTC)

func newTestModel() *Model {
	m := New(tweet.DefaultConfig())
	m.now = func() time.Time { return tuesday }
	m.writeClipboard = func(string) error { return nil }
	return m
}

func TestGenerateEntersStructuredMode(t *testing.T) {
	m := newTestModel()
	if _, handled := m.handleKey("ctrl+g"); !handled {
		t.Fatalf("ctrl+g should be handled")
	}
	if m.confirmGenerate {
		t.Fatalf("a clean composer needs no confirmation")
	}
	if !m.structured {
		t.Fatalf("generate should enter structured mode")
	}
	want := m.cfg.Generate(tuesday).Text
	if m.text.Value() != want {
		t.Fatalf("expected the generated template:\n%q\ngot:\n%q", want, m.text.Value())
	}
	if !m.result.HasPlaceholders {
		t.Fatalf("fresh template carries placeholders; validation must see them")
	}
	if m.free.Value() != "" || m.world.Value() != "" || m.creator.Value() != "" {
		t.Fatalf("generate should reset structured fields")
	}
}

func TestGenerateConfirmGate(t *testing.T) {
	m := newTestModel()
	m.text.SetValue("a half-written draft")
	m.recompute()

	m.handleKey("ctrl+g")
	if !m.confirmGenerate {
		t.Fatalf("dirty input must demand confirmation")
	}
	if m.text.Value() != "a half-written draft" {
		t.Fatalf("nothing may change while the confirmation is up")
	}

	m.handleKey("n")
	if m.confirmGenerate || m.structured {
		t.Fatalf("declining must leave all state untouched")
	}
	if m.text.Value() != "a half-written draft" {
		t.Fatalf("declining must keep the draft")
	}

	m.handleKey("ctrl+g")
	m.handleKey("y")
	if !m.structured {
		t.Fatalf("confirming should generate and enter structured mode")
	}
	if !strings.Contains(m.text.Value(), "第209回") {
		t.Fatalf("expected meeting 209 for the week of %v:\n%s", tuesday, m.text.Value())
	}
}

func TestStructuredEditsWinOverRawEdits(t *testing.T) {
	m := newTestModel()
	m.handleKey("ctrl+g")

	m.world.SetValue("Aurora Garden")
	m.rebuild()
	if !strings.Contains(m.text.Value(), "【場所】Aurora Garden By ") {
		t.Fatalf("world edit not reflected:\n%s", m.text.Value())
	}

	// A stray raw-text mutation loses on the next field edit.
	m.text.SetValue("scribbled over")
	m.free.SetValue("今週もどうぞ")
	m.rebuild()
	if strings.Contains(m.text.Value(), "scribbled over") {
		t.Fatalf("structured rebuild must overwrite manual raw edits")
	}
	if !strings.HasPrefix(m.text.Value(), "今週もどうぞ #あ茶会") {
		t.Fatalf("free text edit not reflected:\n%s", m.text.Value())
	}
}

func TestFilledTemplateBecomesValid(t *testing.T) {
	m := newTestModel()
	m.handleKey("ctrl+g")

	m.free.SetValue("のんびり演奏します")
	m.world.SetValue("Koya")
	m.creator.SetValue("しお")
	m.rebuild()

	if m.result.HasPlaceholders {
		t.Fatalf("all placeholders are filled:\n%s", m.text.Value())
	}
	if !m.result.IsValid {
		t.Fatalf("filled generated template should validate: %+v", m.result)
	}
}

func TestEnterStructuredUnparseable(t *testing.T) {
	m := newTestModel()
	m.text.SetValue("not a template at all")
	m.recompute()

	m.handleKey("ctrl+t")
	if m.structured {
		t.Fatalf("unparseable text must not switch modes")
	}
	if m.status == "" {
		t.Fatalf("the user needs a warning")
	}
	if m.free.Value() != "" || m.world.Value() != "" || m.creator.Value() != "" {
		t.Fatalf("fields must stay untouched on failure")
	}
	if len(m.template) != 0 {
		t.Fatalf("no template may be captured on failure")
	}
}

func TestEnterStructuredCapturesTemplate(t *testing.T) {
	m := newTestModel()
	text := "集まれ #あ茶会\n\n第209回 🎻題名のないお茶会🏘️\n【日時】2月9日(日) 14:30〜16:00\n【場所】Koya By しお"
	m.text.SetValue(text)
	m.recompute()

	m.handleKey("ctrl+t")
	if !m.structured {
		t.Fatalf("parseable text should switch modes")
	}
	if m.free.Value() != "集まれ" || m.world.Value() != "Koya" || m.creator.Value() != "しお" {
		t.Fatalf("fields not populated: %q %q %q", m.free.Value(), m.world.Value(), m.creator.Value())
	}
	if m.instrument != "🎻" {
		t.Fatalf("instrument not picked up, got %q", m.instrument)
	}
	if len(m.template) != strings.Count(text, "\n")+1 {
		t.Fatalf("template must capture every line, got %d", len(m.template))
	}
}

func TestCycleInstrumentRebuilds(t *testing.T) {
	m := newTestModel()
	m.handleKey("ctrl+g")
	m.focus = fieldInstrument

	m.handleKey("right")
	if m.instrument != tweet.Instruments[1] {
		t.Fatalf("expected the next instrument, got %q", m.instrument)
	}
	if !strings.Contains(m.text.Value(), m.instrument+"題名のないお茶会") {
		t.Fatalf("instrument change must rebuild the text:\n%s", m.text.Value())
	}

	m.handleKey("left")
	m.handleKey("left")
	if m.instrument != tweet.Instruments[len(tweet.Instruments)-1] {
		t.Fatalf("cycling left should wrap, got %q", m.instrument)
	}
}

func TestCopyFlashLifecycle(t *testing.T) {
	m := newTestModel()
	var copied string
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	m.text.SetValue("本文")
	m.recompute()

	cmd, handled := m.handleKey("ctrl+y")
	if !handled || cmd == nil {
		t.Fatalf("copy should schedule a flash clear")
	}
	if copied != "本文" {
		t.Fatalf("expected the tweet text on the clipboard, got %q", copied)
	}
	if m.status != "copied tweet" {
		t.Fatalf("unexpected status %q", m.status)
	}

	// A stale clear (superseded by a later copy) is a no-op.
	m.Update(flashClearMsg{seq: m.flashSeq - 1})
	if m.status != "copied tweet" {
		t.Fatalf("stale flash clear must not fire")
	}
	m.Update(flashClearMsg{seq: m.flashSeq})
	if m.status != "" {
		t.Fatalf("current flash clear should reset the status")
	}
}

func TestCopyFailureLeavesStateAlone(t *testing.T) {
	m := newTestModel()
	m.writeClipboard = func(string) error { return errors.New("no display") }
	m.text.SetValue("本文")
	m.recompute()
	before := m.flashSeq

	cmd, _ := m.handleKey("ctrl+e")
	if cmd != nil {
		t.Fatalf("a failed copy schedules nothing")
	}
	if !strings.Contains(m.status, "clipboard") {
		t.Fatalf("failure must be reported, got %q", m.status)
	}
	if m.flashSeq != before {
		t.Fatalf("failed copies must not advance the flash sequence")
	}
	if m.text.Value() != "本文" {
		t.Fatalf("text must be unaffected")
	}
}

func TestViewRendersChecklist(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.handleKey("ctrl+g")

	view, _ := m.View()
	if !strings.Contains(view, "checks") {
		t.Fatalf("checklist pane missing:\n%s", view)
	}
	if !strings.Contains(view, "not ready to post") {
		t.Fatalf("unfilled template must show as not ready:\n%s", view)
	}
}

func TestConfirmViewReplacesBody(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.text.SetValue("draft")
	m.recompute()
	m.handleKey("ctrl+g")

	view, _ := m.View()
	if !strings.Contains(view, "上書きされます") {
		t.Fatalf("confirmation prompt missing:\n%s", view)
	}
}
