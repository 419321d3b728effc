package cli

import (
	"fmt"
	"os"

	"github.com/andy/rolodex/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive terminal user interface for rolodex.`,
	Run:   launchTUI,
}

func launchTUI(cmd *cobra.Command, args []string) {
	p := tea.NewProgram(tui.New(appInstance), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run TUI: %v\n", err)
		os.Exit(1)
	}
}
