package main

import (
	"fmt"
	"mime"
	"path/filepath"

	"dropzone/internal/classify"
	"dropzone/pkg/types"

	"github.com/spf13/cobra"
)

// NewClassifyCmd creates the classify command
func NewClassifyCmd() *cobra.Command {
	var (
		acceptEntries []string
		pattern       string
	)

	cmd := &cobra.Command{
		Use:   "classify [files...]",
		Short: "Classify files against the accept list",
		Long: `Classify the named files against the configured accept list and print
each verdict. Files whose names have no recognizable extension are
excluded, matching the component's drop behavior. Exits non-zero when
any file is rejected, so the command can gate scripts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := classify.NewWithConfig(cfg)
			if err != nil {
				return err
			}

			// Flags override the configured accept list and pattern
			if len(acceptEntries) > 0 {
				if err := engine.SetAcceptList(types.AcceptList(acceptEntries)); err != nil {
					return err
				}
			}
			if pattern != "" {
				if err := engine.SetPattern(pattern); err != nil {
					return err
				}
			}

			files := make([]types.FileDescriptor, 0, len(args))
			for _, arg := range args {
				name := filepath.Base(arg)
				files = append(files, types.FileDescriptor{
					Name:     name,
					MIMEType: mime.TypeByExtension(filepath.Ext(name)),
				})
			}

			verdicts := engine.Classify(files)

			rejected := 0
			for _, v := range verdicts {
				if v.Rejected() {
					rejected++
					fmt.Printf("  ✗ %s (%s)\n", v.File.Name, v.Reason)
				} else {
					fmt.Printf("  ✓ %s\n", v.File.Name)
				}
			}
			if skipped := len(files) - len(verdicts); skipped > 0 {
				fmt.Printf("  - %d file(s) skipped (no recognizable extension)\n", skipped)
			}

			if rejected > 0 {
				return fmt.Errorf("%d of %d files rejected", rejected, len(verdicts))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&acceptEntries, "accept", "a", nil, "Accept entries (MIME types, MIME wildcards or .ext tokens); overrides config")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Extension-extraction pattern; overrides config")

	return cmd
}
