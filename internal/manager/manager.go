// Package manager runs the menu loop that dispatches to the collectors and
// persists every finished record before the next question is asked.
package manager

import (
	"errors"
	"fmt"
	"io"
	"log"

	"produktmanager/internal/collect"
	"produktmanager/internal/models"
)

type State int

const (
	MenuState State = iota
	CollectBookState
	CollectFoodState
	ExitState
)

func (s State) String() string {
	switch s {
	case MenuState:
		return "menu"
	case CollectBookState:
		return "collect-book"
	case CollectFoodState:
		return "collect-food"
	case ExitState:
		return "exit"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is the prompt channel the loop owns and closes on exit.
type Session interface {
	collect.Prompter
	Close() error
}

// Repository persists finished records.
type Repository interface {
	AppendBook(models.Book) error
	AppendFood(models.Food) error
}

type Manager struct {
	session Session
	repo    Repository
	state   State
}

func New(session Session, repo Repository) *Manager {
	return &Manager{
		session: session,
		repo:    repo,
		state:   MenuState,
	}
}

func (m *Manager) State() State {
	return m.state
}

// Run loops until the user enters 0 or the input ends. Storage errors end
// the loop and are returned; the session is closed in every case.
func (m *Manager) Run() error {
	for m.state != ExitState {
		next, err := m.step()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			log.Printf("Input closed in state %s, ending session", m.state)
			next, err = ExitState, nil
		}
		if err != nil {
			m.session.Close()
			return err
		}
		m.state = next
	}

	m.session.Say("Programm beendet.")
	return m.session.Close()
}

func (m *Manager) step() (State, error) {
	switch m.state {
	case MenuState:
		return m.menu()
	case CollectBookState:
		return MenuState, m.collectBook()
	case CollectFoodState:
		return MenuState, m.collectFood()
	}
	return ExitState, nil
}

func (m *Manager) menu() (State, error) {
	m.session.Say("0 = Beenden")
	m.session.Say("1 = Buch")
	m.session.Say("2 = Lebensmittel/Getränk")
	choice, err := m.session.Ask("Geben Sie eine Zahl ein: ")
	if err != nil {
		return MenuState, err
	}

	switch choice {
	case "0":
		return ExitState, nil
	case "1":
		return CollectBookState, nil
	case "2":
		return CollectFoodState, nil
	}
	m.session.Say("Ungültige Eingabe.\n")
	return MenuState, nil
}

func (m *Manager) collectBook() error {
	book, err := collect.Book(m.session)
	if err != nil {
		return err
	}
	if err := m.repo.AppendBook(book); err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}
	m.session.Say("Daten wurden erfolgreich gespeichert.\n")
	return nil
}

func (m *Manager) collectFood() error {
	food, err := collect.Food(m.session)
	if errors.Is(err, collect.ErrInvalidKind) {
		m.session.Say("Ungültige Eingabe!\n")
		return nil
	}
	if err != nil {
		return err
	}
	if err := m.repo.AppendFood(food); err != nil {
		return fmt.Errorf("failed to save food: %w", err)
	}
	m.session.Say("Daten wurden erfolgreich gespeichert.\n")
	return nil
}
