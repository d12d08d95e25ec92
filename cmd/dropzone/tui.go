package main

import (
	"fmt"
	"os"

	"dropzone/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewTuiCmd creates the TUI command
func NewTuiCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "tui [directory]",
		Short: "Preview a directory as a drop zone in the terminal",
		Long:  `List a directory's files with the verdict each would receive if dropped: accepted, rejected, or skipped for lack of a recognizable extension.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := dir
			if target == "" && len(args) > 0 {
				target = args[0]
			}
			if target == "" {
				target = cfg.Directories.Default
			}
			if target == "" {
				var err error
				target, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("error getting current directory: %w", err)
				}
			}

			m, err := tui.New(cfg, target)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "directory", "d", "", "Directory to preview (overrides argument)")

	return cmd
}
