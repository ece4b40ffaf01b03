package corpstrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"corpstrack/onboarding"
	"corpstrack/sessionid"
)

// maxListRows caps how many options are drawn at once; the list scrolls
// with the cursor.
const maxListRows = 10

// finishTickMsg is delivered when the finishing delay of wizard id elapses.
type finishTickMsg struct{ id string }

// OnboardingModel is a Bubble Tea sub-model that renders an onboarding
// session and turns key presses into session transitions.
type OnboardingModel struct {
	id      string
	session *onboarding.Session
	handoff *onboarding.Handoff
	logger  *Logger
	styles  styles
	keys    keyMap

	cursor   int
	search   textinput.Model
	spinner  spinner.Model
	progress progress.Model
	help     help.Model
	width    int
}

// NewOnboardingModel mounts a new wizard: fresh session on step 1 and a
// handoff to nav after delay.
func NewOnboardingModel(nav onboarding.Navigator, delay time.Duration, st styles, keys keyMap, logger *Logger) OnboardingModel {
	ti := textinput.New()
	ti.Placeholder = "Search states"
	ti.Prompt = "/ "
	ti.CharLimit = 32

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(st.accent)

	id := sessionid.Generate("onboard")
	logger.Info("onboarding mounted (wizard=%s)", id)

	return OnboardingModel{
		id:      id,
		session: onboarding.NewSession(),
		handoff: onboarding.NewHandoff(nav, delay),
		logger:  logger,
		styles:  st,
		keys:    keys,
		search:  ti,
		spinner: sp,
		progress: progress.New(
			progress.WithSolidFill(string(st.accent)),
			progress.WithoutPercentage(),
			progress.WithWidth(popupWidth-8),
		),
		help: help.New(),
	}
}

// ID returns the wizard's session ID.
func (w OnboardingModel) ID() string { return w.id }

// Selection returns the values chosen so far.
func (w OnboardingModel) Selection() onboarding.Selection { return w.session.Selection() }

// Step returns the current wizard step.
func (w OnboardingModel) Step() onboarding.Step { return w.session.Step() }

// Finishing reports whether the wizard is on its finishing screen.
func (w OnboardingModel) Finishing() bool { return w.session.Finishing() }

// Typing reports whether key presses go to the search box.
func (w OnboardingModel) Typing() bool { return w.search.Focused() }

// Init initializes the onboarding model.
func (w OnboardingModel) Init() tea.Cmd { return nil }

func (w OnboardingModel) resize(width int) OnboardingModel {
	w.width = width
	bar := popupWidth - 8
	if width > 0 && width-12 < bar {
		bar = max(10, width-12)
	}
	w.progress.Width = bar
	w.help.Width = bar
	return w
}

// Update handles input for the wizard.
func (w OnboardingModel) Update(msg tea.Msg) (OnboardingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case finishTickMsg:
		if msg.id != w.id {
			return w, nil // from an earlier mount
		}
		if w.handoff.Fire() {
			w.logger.Info("handoff fired (wizard=%s)", w.id)
		}
		return w, nil

	case spinner.TickMsg:
		if !w.session.Finishing() {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd

	case tea.KeyMsg:
		// Finishing is non-interactive.
		if w.session.Finishing() {
			return w, nil
		}
		if w.search.Focused() {
			return w.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, w.keys.Up):
			if w.cursor > 0 {
				w.cursor--
			}
		case key.Matches(msg, w.keys.Down):
			w.cursor = max(0, min(w.cursor+1, w.listLen()-1))
		case key.Matches(msg, w.keys.Select):
			w.selectCurrent()
		case key.Matches(msg, w.keys.Next):
			return w.advance()
		case key.Matches(msg, w.keys.Back):
			w.goBack()
		case key.Matches(msg, w.keys.Search):
			if w.session.Step() == onboarding.StepState {
				w.cursor = 0
				return w, w.search.Focus()
			}
		}
	}
	return w, nil
}

func (w OnboardingModel) updateSearch(msg tea.KeyMsg) (OnboardingModel, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Leave):
		w.search.Blur()
		return w, nil
	case msg.Type == tea.KeyUp || msg.Type == tea.KeyDown:
		if msg.Type == tea.KeyUp && w.cursor > 0 {
			w.cursor--
		}
		if msg.Type == tea.KeyDown {
			w.cursor = max(0, min(w.cursor+1, w.listLen()-1))
		}
		return w, nil
	}

	var cmd tea.Cmd
	w.search, cmd = w.search.Update(msg)
	if w.session.Query() != w.search.Value() {
		w.session.SetQuery(w.search.Value())
		w.cursor = 0
	}
	return w, cmd
}

// selectCurrent records the option under the cursor for the current step.
func (w *OnboardingModel) selectCurrent() {
	var ok bool
	switch w.session.Step() {
	case onboarding.StepStage:
		if st := onboarding.Stages(); w.cursor < len(st) {
			ok = w.session.SelectStage(st[w.cursor].ID)
		}
	case onboarding.StepState:
		if vis := w.session.VisibleStates(); w.cursor < len(vis) {
			ok = w.session.SelectState(vis[w.cursor])
		}
	case onboarding.StepBatch:
		if b := onboarding.Batches(); w.cursor < len(b) {
			ok = w.session.SelectBatch(b[w.cursor])
		}
	}
	if ok {
		w.logger.Debug("step %d selection %+v (wizard=%s)", w.session.Step(), w.session.Selection(), w.id)
	}
}

// advance is Next on steps 1 and 2 and Complete Setup on step 3. Both are
// no-ops while the step's field is unset.
func (w OnboardingModel) advance() (OnboardingModel, tea.Cmd) {
	if w.session.Step() == onboarding.StepBatch {
		if !w.session.Complete() {
			return w, nil
		}
		w.logger.Info("onboarding complete, finishing for %s (wizard=%s)", w.handoff.Delay(), w.id)
		id := w.id
		return w, tea.Batch(
			w.spinner.Tick,
			tea.Tick(w.handoff.Delay(), func(time.Time) tea.Msg { return finishTickMsg{id: id} }),
		)
	}
	if w.session.Next() {
		w.cursor = w.selectedIndex()
		w.logger.Debug("advanced to step %d (wizard=%s)", w.session.Step(), w.id)
	}
	return w, nil
}

func (w *OnboardingModel) goBack() {
	if w.session.Back() {
		w.cursor = w.selectedIndex()
		w.logger.Debug("back to step %d (wizard=%s)", w.session.Step(), w.id)
	}
}

// selectedIndex returns the list position of the current step's selection,
// or 0 when nothing on this step is chosen or visible.
func (w OnboardingModel) selectedIndex() int {
	sel := w.session.Selection()
	switch w.session.Step() {
	case onboarding.StepStage:
		if i := sel.Stage.Index(); i >= 0 {
			return i
		}
	case onboarding.StepState:
		for i, s := range w.session.VisibleStates() {
			if s == sel.State {
				return i
			}
		}
	case onboarding.StepBatch:
		for i, b := range onboarding.Batches() {
			if b == sel.Batch {
				return i
			}
		}
	}
	return 0
}

func (w OnboardingModel) listLen() int {
	switch w.session.Step() {
	case onboarding.StepStage:
		return len(onboarding.Stages())
	case onboarding.StepState:
		return len(w.session.VisibleStates())
	case onboarding.StepBatch:
		return len(onboarding.Batches())
	default:
		return 0
	}
}

// View renders the current wizard step.
func (w OnboardingModel) View() string {
	var b strings.Builder
	st := w.styles

	b.WriteString(st.title.Render("Set up your service profile"))
	b.WriteString("\n\n")

	if w.session.Finishing() {
		b.WriteString(w.progress.ViewAs(1))
		b.WriteString("\n\n")
		b.WriteString(w.spinner.View() + " " + st.label.Render("Setting up your profile..."))
		return b.String()
	}

	// Step indicator.
	var stepLine strings.Builder
	for s := onboarding.StepStage; s <= onboarding.StepBatch; s++ {
		if s == w.session.Step() {
			stepLine.WriteString(st.active.Render(fmt.Sprintf("[%s]", s)))
		} else {
			stepLine.WriteString(st.dim.Render(fmt.Sprintf(" %s ", s)))
		}
		if s < onboarding.StepBatch {
			stepLine.WriteString(st.dim.Render(" > "))
		}
	}
	b.WriteString(stepLine.String())
	b.WriteString("\n")
	b.WriteString(w.progress.ViewAs(w.session.Progress()))
	b.WriteString(st.dim.Render(fmt.Sprintf(" %.0f%%", w.session.ProgressPercent())))
	b.WriteString("\n\n")

	sel := w.session.Selection()
	switch w.session.Step() {
	case onboarding.StepStage:
		b.WriteString(st.label.Render("Where are you in your service year?"))
		b.WriteString("\n\n")
		stages := onboarding.Stages()
		start, end := listWindow(w.cursor, len(stages), maxListRows)
		for i := start; i < end; i++ {
			s := stages[i]
			desc := truncateWidth(s.Description, max(10, w.textWidth()-runewidth.StringWidth(s.Label)-8))
			b.WriteString(w.renderOption(i, s.Label, s.ID == sel.Stage, desc))
		}

	case onboarding.StepState:
		b.WriteString(st.label.Render("Which state are you deployed to?"))
		b.WriteString("\n")
		b.WriteString(w.search.View())
		b.WriteString("\n\n")
		visible := w.session.VisibleStates()
		if len(visible) == 0 {
			b.WriteString(st.dim.Render("  No matching states."))
			b.WriteString("\n")
		}
		start, end := listWindow(w.cursor, len(visible), maxListRows)
		for i := start; i < end; i++ {
			b.WriteString(w.renderOption(i, string(visible[i]), visible[i] == sel.State, ""))
		}

	case onboarding.StepBatch:
		b.WriteString(st.label.Render("Which batch are you in?"))
		b.WriteString("\n\n")
		batches := onboarding.Batches()
		start, end := listWindow(w.cursor, len(batches), maxListRows)
		for i := start; i < end; i++ {
			b.WriteString(w.renderOption(i, string(batches[i]), batches[i] == sel.Batch, ""))
		}
	}

	b.WriteString("\n")
	b.WriteString(w.renderAction())
	b.WriteString("\n")
	b.WriteString(w.help.View(onboardingHelp{
		keys:      w.keys,
		search:    w.session.Step() == onboarding.StepState,
		searching: w.search.Focused(),
		first:     w.session.Step() == onboarding.StepStage,
	}))
	return b.String()
}

func (w OnboardingModel) renderOption(i int, label string, chosen bool, desc string) string {
	cursor := "  "
	style := w.styles.label
	if i == w.cursor {
		cursor = "> "
		style = w.styles.selected
	}
	mark := "    "
	if chosen {
		mark = w.styles.active.Render(" (*)")
	}
	line := cursor + style.Render(label) + mark
	if desc != "" {
		line += w.styles.dim.Render(" - " + desc)
	}
	return line + "\n"
}

// renderAction shows the advance action, dimmed while its guard fails.
func (w OnboardingModel) renderAction() string {
	label := "tab: next"
	if w.session.Step() == onboarding.StepBatch {
		label = "tab: complete setup"
	}
	if w.session.CanAdvance() {
		return w.styles.active.Render(label)
	}
	return w.styles.dim.Render(label + " (choose an option first)")
}

func (w OnboardingModel) textWidth() int {
	if w.width > 0 && w.width-12 < popupWidth-6 {
		return max(20, w.width-12)
	}
	return popupWidth - 6
}

// listWindow returns the [start, end) slice of a list of n rows that keeps
// cursor visible with at most rows entries.
func listWindow(cursor, n, rows int) (int, int) {
	if n <= rows {
		return 0, n
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}

// truncateWidth shortens s to at most w terminal cells.
func truncateWidth(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}
