package main

import (
	"fmt"

	"dropzone/internal/gui"

	"github.com/spf13/cobra"
)

// NewGuiCmd creates the GUI command
func NewGuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the drop-target demo window",
		Long:  `Launch a window hosting the drop-target widget. Drop files onto the window or click the target to pick them; verdicts appear in the list below.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			guiApp, err := gui.NewApp(cfg)
			if err != nil {
				return fmt.Errorf("error creating GUI: %w", err)
			}
			guiApp.Run()
			return nil
		},
	}
}
