package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuEntry is one line of the start menu. The key is the digit the
// line-based entry menu uses for the same collection.
type menuEntry struct {
	key    string
	label  string
	screen Screen
	quit   bool
}

var menuEntries = []menuEntry{
	{key: "1", label: "📚 Bücher", screen: BooksScreen},
	{key: "2", label: "🥫 Lebensmittel/Getränke", screen: FoodsScreen},
	{key: "0", label: "🚪 Beenden", quit: true},
}

type MenuModel struct {
	cursor int
	width  int
	height int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *MenuModel) Cursor() int {
	return m.cursor
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, len(menuEntries)-1)
	case "enter", " ":
		return m, menuEntries[m.cursor].open()
	default:
		for i, entry := range menuEntries {
			if entry.key == key {
				m.cursor = i
				return m, entry.open()
			}
		}
	}
	return m, nil
}

func (e menuEntry) open() tea.Cmd {
	if e.quit {
		return tea.Quit
	}
	return ChangeScreen(e.screen)
}

func (m *MenuModel) View() string {
	titleStyle, _, helpStyle := GetAdaptiveStyles(m.width, m.height)

	var lines strings.Builder
	for i, entry := range menuEntries {
		style := menuItemStyle
		marker := "  "
		if i == m.cursor {
			style = selectedMenuItemStyle
			marker = "> "
		}
		lines.WriteString(marker + labelStyle.Render(entry.key) + style.Render(entry.label) + "\n")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render("🗂️  Produktliste"),
		lines.String(),
		helpStyle.Render("↑/↓ oder 0-2: Auswahl • Enter: Öffnen • q: Beenden"),
	)
	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
