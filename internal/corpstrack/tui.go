package corpstrack

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Colors shared by every view. The accent comes from config.
var (
	dimColor   = lipgloss.Color("#555555")
	textColor  = lipgloss.Color("#ffffff")
	labelColor = lipgloss.Color("#aaaaaa")
)

type styles struct {
	accent   lipgloss.Color
	title    lipgloss.Style
	label    lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	active   lipgloss.Style
	popup    lipgloss.Style
}

func newStyles(theme ThemeConfig) styles {
	accent := lipgloss.Color(theme.Accent)
	if theme.Accent == "" {
		accent = lipgloss.Color("#008751")
	}
	return styles{
		accent:   accent,
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		label:    lipgloss.NewStyle().Foreground(labelColor),
		selected: lipgloss.NewStyle().Bold(true).Foreground(textColor),
		dim:      lipgloss.NewStyle().Foreground(dimColor),
		active:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		popup: lipgloss.NewStyle().
			Width(popupWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
	}
}

const popupWidth = 64

// ViewState controls which screen is active.
type ViewState int

const (
	ViewOnboarding ViewState = iota
	ViewHome
)

// Model is the top-level Bubble Tea model. It routes between the onboarding
// wizard and the home view and is the wizard's Navigator.
type Model struct {
	cfg        *Config
	logger     *Logger
	styles     styles
	keys       keyMap
	activeView ViewState
	onboarding OnboardingModel
	home       HomeModel
	width      int
	height     int
	quitting   bool
}

// NewModel creates the TUI model with a freshly mounted onboarding wizard.
func NewModel(cfg *Config, logger *Logger) *Model {
	m := &Model{
		cfg:    cfg,
		logger: logger,
		styles: newStyles(cfg.Theme),
		keys:   defaultKeyMap(),
	}
	m.mountOnboarding()
	return m
}

// mountOnboarding discards any previous wizard and starts a new one on step 1.
func (m *Model) mountOnboarding() {
	m.onboarding = NewOnboardingModel(m, m.cfg.FinishDelay(), m.styles, m.keys, m.logger)
	m.onboarding = m.onboarding.resize(m.width)
	m.activeView = ViewOnboarding
}

// ProceedToMain switches to the home view. It is called once per wizard,
// when the finishing delay has elapsed.
func (m *Model) ProceedToMain() {
	sel := m.onboarding.Selection()
	m.logger.Info("proceeding to main application (wizard=%s)", m.onboarding.ID())
	m.home = NewHomeModel(sel, m.styles, m.keys).resize(m.width)
	m.activeView = ViewHome
}

// ActiveView returns the screen currently shown.
func (m *Model) ActiveView() ViewState { return m.activeView }

// Init starts the TUI.
func (m *Model) Init() tea.Cmd {
	return m.onboarding.Init()
}

// Update handles messages for whichever view is active.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.onboarding = m.onboarding.resize(msg.Width)
		m.home = m.home.resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQ) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Quit) && !(m.activeView == ViewOnboarding && m.onboarding.Typing()) {
			m.quitting = true
			return m, tea.Quit
		}

	case restartOnboardingMsg:
		m.logger.Info("onboarding restarted from home view")
		m.mountOnboarding()
		return m, m.onboarding.Init()
	}

	switch m.activeView {
	case ViewHome:
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		return m, cmd
	default:
		// The handoff may call ProceedToMain from inside Update.
		updated, cmd := m.onboarding.Update(msg)
		m.onboarding = updated
		return m, cmd
	}
}

// View renders the active screen centred in the terminal.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width < 40 {
		width = 80
	}
	height := m.height
	if height < 10 {
		height = 24
	}

	var content string
	switch m.activeView {
	case ViewHome:
		content = m.home.View()
	default:
		content = m.onboarding.View()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.styles.popup.Render(content))
}
