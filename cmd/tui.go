package cmd

import (
	"fmt"

	"produktmanager/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the collections in a terminal UI",
	Long: `Start a read-only Terminal User Interface listing the books and
foods/drinks. New records are entered with the default interactive menu.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewModel(repo),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
