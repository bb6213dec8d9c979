// Package tui implements the terminal image picker behind `galleray pick`:
// browse the scanned image set with the keyboard and print the chosen path.
package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Home:   key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		End:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Home, k.End}, {k.Choose, k.Quit}}
}

// Model is the picker state: the scanned image set and a cursor into it.
type Model struct {
	files  []string
	cursor int
	choice string
	keys   keyMap
	help   help.Model
	height int
}

// New builds a picker over an already scanned image set
func New(files []string) Model {
	return Model{
		files: files,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

// Choice returns the selected path, empty if the picker was cancelled
func (m Model) Choice() string {
	return m.choice
}

// Cursor returns the current cursor index, used by tests
func (m Model) Cursor() int {
	return m.cursor
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
		case key.Matches(msg, m.keys.End):
			if len(m.files) > 0 {
				m.cursor = len(m.files) - 1
			}
		case key.Matches(msg, m.keys.Choose):
			if len(m.files) > 0 {
				m.choice = m.files[m.cursor]
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if len(m.files) == 0 {
		return titleStyle.Render("Galleray") + "\n\n" + dimStyle.Render("No images to pick from.") + "\n"
	}

	s := titleStyle.Render("Galleray") + dimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.files))) + "\n\n"

	start, end := m.viewport()
	for i := start; i < end; i++ {
		name := filepath.Base(m.files[i])
		if i == m.cursor {
			s += selectedStyle.Render("> "+name) + "\n"
		} else {
			s += "  " + name + "\n"
		}
	}

	return s + "\n" + m.help.View(m.keys)
}

// viewport clamps the visible slice around the cursor so long sets scroll.
func (m Model) viewport() (int, int) {
	visible := len(m.files)
	if m.height > 6 && m.height-6 < visible {
		visible = m.height - 6
	}
	start := m.cursor - visible/2
	if start+visible > len(m.files) {
		start = len(m.files) - visible
	}
	if start < 0 {
		start = 0
	}
	return start, start + visible
}

// Pick runs the picker and returns the chosen path, empty on cancel.
func Pick(files []string) (string, error) {
	p := tea.NewProgram(New(files))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(Model).Choice(), nil
}
