package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the composer UI.
type Theme struct {
	Title  lipgloss.Style
	Editor EditorTheme
	Check  CheckTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// EditorTheme styles the text and field panes.
type EditorTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Hint         lipgloss.Style
}

// CheckTheme styles the validation checklist pane.
type CheckTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Pass  lipgloss.Style
	Fail  lipgloss.Style
	Info  lipgloss.Style
}

// FooterTheme groups styles for the status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Count  lipgloss.Style
	Over   lipgloss.Style
}

// ModalTheme styles the destructive-overwrite confirmation.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Editor: EditorTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			FocusedFrame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(0, 1),
			Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Check: CheckTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Pass:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Count:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Over:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("203")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
