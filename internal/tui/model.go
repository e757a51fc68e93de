package tui

import (
	"produktmanager/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	MenuScreen Screen = iota
	BooksScreen
	FoodsScreen
)

// Source provides the collections to browse.
type Source interface {
	Books() ([]models.Book, error)
	Foods() ([]models.Food, error)
}

type Model struct {
	source        Source
	currentScreen Screen
	menuModel     *MenuModel
	booksModel    *CollectionModel
	foodsModel    *CollectionModel
	quitting      bool
	width         int
	height        int
}

func NewModel(source Source) Model {
	return Model{
		source:        source,
		currentScreen: MenuScreen,
		menuModel:     NewMenuModel(),
		booksModel:    NewBooksModel(),
		foodsModel:    NewFoodsModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Screen() Screen {
	return m.currentScreen
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menuModel.SetSize(msg.Width, msg.Height)
		m.booksModel.SetSize(msg.Width, msg.Height)
		m.foodsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.currentScreen != MenuScreen {
				m.currentScreen = MenuScreen
				return m, nil
			}
		}

	case ScreenChangeMsg:
		m.currentScreen = msg.Screen
		return m, m.load(msg.Screen)

	case RecordsLoadedMsg:
		switch msg.Screen {
		case BooksScreen:
			newBooksModel, _ := m.booksModel.Update(msg)
			m.booksModel = newBooksModel.(*CollectionModel)
		case FoodsScreen:
			newFoodsModel, _ := m.foodsModel.Update(msg)
			m.foodsModel = newFoodsModel.(*CollectionModel)
		}
		return m, nil
	}

	switch m.currentScreen {
	case MenuScreen:
		newMenuModel, cmd := m.menuModel.Update(msg)
		m.menuModel = newMenuModel.(*MenuModel)
		return m, cmd
	case BooksScreen:
		newBooksModel, cmd := m.booksModel.Update(msg)
		m.booksModel = newBooksModel.(*CollectionModel)
		return m, cmd
	case FoodsScreen:
		newFoodsModel, cmd := m.foodsModel.Update(msg)
		m.foodsModel = newFoodsModel.(*CollectionModel)
		return m, cmd
	}

	return m, cmd
}

func (m Model) load(screen Screen) tea.Cmd {
	switch screen {
	case BooksScreen:
		return LoadBooks(m.source)
	case FoodsScreen:
		return LoadFoods(m.source)
	}
	return nil
}

func (m Model) View() string {
	if m.quitting {
		return "Auf Wiedersehen! 👋\n"
	}

	var content string
	switch m.currentScreen {
	case MenuScreen:
		content = m.menuModel.View()
	case BooksScreen:
		content = m.booksModel.View()
	case FoodsScreen:
		content = m.foodsModel.View()
	}

	return content
}

type ScreenChangeMsg struct {
	Screen Screen
}

func ChangeScreen(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenChangeMsg{Screen: screen}
	}
}

// LoadBooks reads the book collection in the background.
func LoadBooks(source Source) tea.Cmd {
	return func() tea.Msg {
		books, err := source.Books()
		if err != nil {
			return RecordsLoadedMsg{Screen: BooksScreen, Err: err}
		}
		return RecordsLoadedMsg{Screen: BooksScreen, Rows: BookRows(books)}
	}
}

// LoadFoods reads the food/drink collection in the background.
func LoadFoods(source Source) tea.Cmd {
	return func() tea.Msg {
		foods, err := source.Foods()
		if err != nil {
			return RecordsLoadedMsg{Screen: FoodsScreen, Err: err}
		}
		return RecordsLoadedMsg{Screen: FoodsScreen, Rows: FoodRows(foods)}
	}
}
