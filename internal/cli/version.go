package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilomoco/kilomoco/internal/output"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if IsJSONOutput() {
				return output.PrintJSON(map[string]string{
					"version": Version,
					"commit":  Commit,
					"date":    Date,
				})
			}
			fmt.Printf("kilomoco %s (commit %s, built %s)\n", Version, Commit, Date)
			return nil
		},
	}
}
