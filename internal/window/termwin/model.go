package termwin

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeRows is the number of terminal rows used by the header and help line.
const chromeRows = 2

type frameMsg struct {
	view   string
	frames int
}

// model is the bubbletea side of the window. It only displays frames
// rendered elsewhere and reports the exit key and terminal size back to
// the Window through shared state.
type model struct {
	title  string
	frame  string
	frames int
	width  int
	height int

	keys  keyMap
	help  help.Model
	state *sharedState
}

func newModel(title string, state *sharedState) model {
	return model{
		title: title,
		keys:  defaultKeys,
		help:  help.New(),
		state: state,
	}
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.state.exit.Store(true)
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.setSize(msg.Width, max(msg.Height-chromeRows, 1))
		return m, nil

	case frameMsg:
		m.frame = msg.view
		m.frames = msg.frames
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	header := titleStyle.Render(m.title) + "  " + statusStyle.Render(fmt.Sprintf("frame %d", m.frames))
	return header + "\n" + m.frame + "\n" + m.help.View(m.keys)
}
