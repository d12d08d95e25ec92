package main

import (
	"fmt"

	"dropzone/internal/config"
	"dropzone/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dropzone",
		Short:   "File drop-zone component toolkit",
		Long:    `Dropzone classifies candidate upload files against an accept list and hosts the drop-target widget in GUI, TUI and directory-watch form.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				fmt.Printf("Warning: %v\n", configErr)
				fmt.Println("Using default settings.")
				cfg = config.New()
			}

			log.SetDebug(cfg.Settings.Debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dropzone/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewClassifyCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewGuiCmd())
	rootCmd.AddCommand(NewTuiCmd())

	return rootCmd
}
