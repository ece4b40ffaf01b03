package corpstrack

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"corpstrack/onboarding"
)

// restartOnboardingMsg asks the router to mount a fresh wizard.
type restartOnboardingMsg struct{}

// HomeModel is the main application surface shown after onboarding: the
// service-year timeline with the member's stage, state and batch.
type HomeModel struct {
	selection onboarding.Selection
	styles    styles
	keys      keyMap
	help      help.Model
	width     int
}

// NewHomeModel creates the home view for a completed selection.
func NewHomeModel(sel onboarding.Selection, st styles, keys keyMap) HomeModel {
	return HomeModel{selection: sel, styles: st, keys: keys, help: help.New()}
}

// Selection returns the profile the home view was built from.
func (h HomeModel) Selection() onboarding.Selection { return h.selection }

func (h HomeModel) resize(width int) HomeModel {
	h.width = width
	h.help.Width = popupWidth - 6
	return h
}

// Update handles input for the home view.
func (h HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, h.keys.Restart) {
		return h, func() tea.Msg { return restartOnboardingMsg{} }
	}
	return h, nil
}

// View renders the timeline.
func (h HomeModel) View() string {
	var b strings.Builder
	st := h.styles

	b.WriteString(st.title.Render("Your service year"))
	b.WriteString("\n\n")

	labelStyle := st.dim.Width(10)
	b.WriteString(labelStyle.Render("State") + st.selected.Render(string(h.selection.State)) + "\n")
	b.WriteString(labelStyle.Render("Batch") + st.selected.Render(string(h.selection.Batch)) + "\n\n")

	current := h.selection.Stage.Index()
	descWidth := popupWidth - 6 - 30
	for i, s := range onboarding.Stages() {
		var marker string
		style := st.dim
		switch {
		case i < current:
			marker = "✓"
			style = st.label
		case i == current:
			marker = "●"
			style = st.active
		default:
			marker = "○"
		}
		line := fmt.Sprintf("%s %-26s", marker, s.Label)
		b.WriteString(style.Render(line))
		if i == current {
			b.WriteString(st.dim.Render(runewidth.Truncate(s.Description, descWidth, "…")))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(h.help.View(homeHelp{keys: h.keys}))
	return b.String()
}
