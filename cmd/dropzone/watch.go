package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dropzone/internal/watch"
	"dropzone/pkg/types"

	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var directories []string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch directories as filesystem drop zones",
		Long: `Watch the configured directories and classify files as they arrive.
Accepted and rejected files are reported; nothing is moved or uploaded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(directories) > 0 {
				cfg.Directories.Watch = directories
			}

			daemon, err := watch.NewDaemon(cfg)
			if err != nil {
				return fmt.Errorf("error creating watch daemon: %w", err)
			}

			daemon.SetCallback(func(path string, verdict types.Verdict) {
				if verdict.Rejected() {
					fmt.Printf("  ✗ %s (%s)\n", path, verdict.Reason)
				} else {
					fmt.Printf("  ✓ %s\n", path)
				}
			})

			if err := daemon.Start(); err != nil {
				return fmt.Errorf("error starting watch daemon: %w", err)
			}

			fmt.Printf("Watching %d drop zone(s). Press Ctrl+C to stop.\n", len(daemon.Status().WatchDirectories))

			// Block until interrupted
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			<-sigChan

			daemon.Stop()

			status := daemon.Status()
			fmt.Printf("\nClassified %d files: %d accepted, %d rejected\n",
				status.FilesSeen, status.FilesAccepted, status.FilesRejected)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&directories, "dir", "d", nil, "Directories to watch (overrides config)")

	return cmd
}
