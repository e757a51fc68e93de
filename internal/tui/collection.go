package tui

import (
	"fmt"

	"produktmanager/internal/models"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var bookColumns = []table.Column{
	{Title: "Titel", Width: 28},
	{Title: "Band", Width: 6},
	{Title: "Autor", Width: 20},
	{Title: "Verlag", Width: 16},
	{Title: "Jahr", Width: 6},
	{Title: "ISBN", Width: 17},
	{Title: "Preis", Width: 8},
}

var foodColumns = []table.Column{
	{Title: "Markenname", Width: 18},
	{Title: "Verkehrsbezeichnung", Width: 24},
	{Title: "Art", Width: 13},
	{Title: "Menge", Width: 8},
	{Title: "Strichcode", Width: 14},
	{Title: "Nutri-Score", Width: 11},
}

// RecordsLoadedMsg carries the rows of one collection screen.
type RecordsLoadedMsg struct {
	Screen Screen
	Rows   []table.Row
	Err    error
}

// CollectionModel shows one collection as a scrollable table.
type CollectionModel struct {
	screen Screen
	title  string
	table  table.Model
	err    error
	width  int
	height int
}

func newCollectionModel(screen Screen, title string, columns []table.Column) *CollectionModel {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(tableStyles()),
	)
	return &CollectionModel{screen: screen, title: title, table: t}
}

func NewBooksModel() *CollectionModel {
	return newCollectionModel(BooksScreen, "📚 Bücher", bookColumns)
}

func NewFoodsModel() *CollectionModel {
	return newCollectionModel(FoodsScreen, "🥫 Lebensmittel/Getränke", foodColumns)
}

func (m *CollectionModel) Init() tea.Cmd {
	return nil
}

func (m *CollectionModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// title, frame and help take about ten lines
	if height > 14 {
		m.table.SetHeight(height - 10)
	}
}

func (m *CollectionModel) Rows() []table.Row {
	return m.table.Rows()
}

func (m *CollectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RecordsLoadedMsg:
		if msg.Screen != m.screen {
			return m, nil
		}
		m.err = msg.Err
		m.table.SetRows(msg.Rows)
		m.table.GotoTop()
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *CollectionModel) View() string {
	adaptiveTitleStyle, adaptiveFrameStyle, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := adaptiveTitleStyle.Render(m.title)

	var body string
	switch {
	case m.err != nil:
		body = errorStyle.Render(fmt.Sprintf("Fehler: %v", m.err))
	case len(m.table.Rows()) == 0:
		body = warningStyle.Render("Keine Einträge vorhanden")
	default:
		count := labelStyle.Render(fmt.Sprintf("%d Einträge", len(m.table.Rows())))
		body = lipgloss.JoinVertical(lipgloss.Left, count, adaptiveFrameStyle.Render(m.table.View()))
	}

	help := adaptiveHelpStyle.Render("↑/↓: Blättern • Esc: Zurück zum Menü • q: Beenden")

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, help)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Top,
			content,
		)
	}
	return content
}

// BookRows renders books as table rows in collection order.
func BookRows(books []models.Book) []table.Row {
	rows := make([]table.Row, 0, len(books))
	for _, b := range books {
		rows = append(rows, table.Row{
			models.Deref(b.Title),
			models.Deref(b.Volume),
			models.Deref(b.Author),
			models.Deref(b.Publisher),
			number(b.Year),
			models.Deref(b.ISBN),
			number(b.Price),
		})
	}
	return rows
}

// FoodRows renders foods as table rows in collection order.
func FoodRows(foods []models.Food) []table.Row {
	rows := make([]table.Row, 0, len(foods))
	for _, f := range foods {
		quantity := number(f.Quantity)
		if quantity != "" {
			quantity += " " + unitSymbol(f.Unit)
		}
		rows = append(rows, table.Row{
			models.Deref(f.Brand),
			models.Deref(f.TradeName),
			string(f.Kind),
			quantity,
			models.Deref(f.Barcode),
			models.Deref(f.NutriScore),
		})
	}
	return rows
}

func number(n *models.Number) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func unitSymbol(unit string) string {
	switch unit {
	case "Kilogramm":
		return "kg"
	case "Liter":
		return "l"
	}
	return unit
}
