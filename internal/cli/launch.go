package cli

import (
	"github.com/spf13/cobra"

	"github.com/kilomoco/kilomoco/internal/launcher"
)

func newLaunchCmd() *cobra.Command {
	var (
		workspace     string
		extensionsDir string
	)

	cmd := &cobra.Command{
		Use:   "launch <profile-id>",
		Short: "Launch VS Code with a profile applied",
		Long: `Launch VS Code against a temporary user-data directory that carries the
profile's mode/model settings, and block until the editor exits.

Examples:
  kilomoco launch lopr
  kilomoco launch hiq --workspace ~/src/myproject`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := launcher.PrepareAndLaunch(args[0], launcher.Options{
				Workspace:     workspace,
				ExtensionsDir: extensionsDir,
				Settings:      cfg,
			})
			if err != nil {
				return profileError(err)
			}
			if code != 0 {
				return &editorExitError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace path to open")
	cmd.Flags().StringVar(&extensionsDir, "extensions-dir", "", "extensions directory to pass to the editor")

	return cmd
}
