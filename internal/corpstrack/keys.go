package corpstrack

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding used by the onboarding and home views.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Next    key.Binding
	Back    key.Binding
	Search  key.Binding
	Leave   key.Binding
	Restart key.Binding
	Quit    key.Binding
	ForceQ  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("shift+tab", "b"),
			key.WithHelp("shift+tab", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "done searching"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "redo onboarding"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQ: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// onboardingHelp adapts keyMap to help.KeyMap for one wizard step.
type onboardingHelp struct {
	keys      keyMap
	search    bool // step 2 offers the search box
	searching bool // search box has focus
	first     bool // no back on step 1
}

func (h onboardingHelp) ShortHelp() []key.Binding {
	if h.searching {
		return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Leave}
	}
	b := []key.Binding{h.keys.Up, h.keys.Down, h.keys.Select}
	if h.search {
		b = append(b, h.keys.Search)
	}
	if !h.first {
		b = append(b, h.keys.Back)
	}
	return append(b, h.keys.Quit)
}

func (h onboardingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// homeHelp adapts keyMap to help.KeyMap for the home view.
type homeHelp struct{ keys keyMap }

func (h homeHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Restart, h.keys.Quit}
}

func (h homeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
