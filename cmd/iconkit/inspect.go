package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Aeastr/iconkit/internal/tui"
)

func newInspectCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <bundle>",
		Short: "Interactively browse resolved values, cycling appearance and idiom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(root, args[0])
		},
	}

	return cmd
}

func runInspect(root *rootFlags, path string) error {
	bundle, _, err := loadWorkspace(root, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading document: %v\n", err)
		os.Exit(2)
	}

	program := tea.NewProgram(tui.NewModel(bundle), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
