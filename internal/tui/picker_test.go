package tui

import (
	"strings"
	"testing"

	alsrt "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestPickerNavigation(t *testing.T) {
	m := New([]string{"/pics/a.png", "/pics/b.png", "/pics/c.png"})
	alsrt.Equal(t, 0, m.Cursor())

	m = update(m, keyMsg("j"))
	alsrt.Equal(t, 1, m.Cursor())

	m = update(m, keyMsg("j"))
	m = update(m, keyMsg("j")) // clamped at the last entry
	alsrt.Equal(t, 2, m.Cursor())

	m = update(m, keyMsg("k"))
	alsrt.Equal(t, 1, m.Cursor())

	m = update(m, keyMsg("g"))
	alsrt.Equal(t, 0, m.Cursor())
	m = update(m, keyMsg("k")) // clamped at the first entry
	alsrt.Equal(t, 0, m.Cursor())

	m = update(m, keyMsg("G"))
	alsrt.Equal(t, 2, m.Cursor())
}

func TestPickerChoose(t *testing.T) {
	m := New([]string{"/pics/a.png", "/pics/b.png"})
	m = update(m, keyMsg("j"))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	alsrt.Equal(t, "/pics/b.png", m.Choice())
	alsrt.NotNil(t, cmd, "choosing must quit the program")
}

func TestPickerCancel(t *testing.T) {
	m := New([]string{"/pics/a.png"})

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)

	alsrt.Equal(t, "", m.Choice())
	alsrt.NotNil(t, cmd)
}

func TestPickerEmptySet(t *testing.T) {
	m := New(nil)

	m = update(m, keyMsg("j"))
	alsrt.Equal(t, 0, m.Cursor())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	alsrt.Equal(t, "", m.Choice())

	alsrt.True(t, strings.Contains(m.View(), "No images"))
}

func TestPickerViewShowsSelection(t *testing.T) {
	m := New([]string{"/pics/a.png", "/pics/b.png"})
	m = update(m, keyMsg("j"))

	view := m.View()
	alsrt.True(t, strings.Contains(view, "b.png"))
	alsrt.True(t, strings.Contains(view, "2/2"))
}
