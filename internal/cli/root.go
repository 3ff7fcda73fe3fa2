package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cbout22/scaffold/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the top-level `scaffold` command. Invoked without a
// subcommand it writes the placeholder files.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scaffold",
		Short: "Create placeholder source files for the app skeleton",
		Long: `scaffold creates a fixed set of placeholder source files relative to the
working directory. Missing parent directories are created and existing files
are overwritten.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return runScaffold(cmd, settings)
		},
	}

	root.PersistentFlags().String(config.KeyDir, config.DefaultDir, "Directory to create files in (env SCAFFOLD_DIR)")
	root.PersistentFlags().BoolP(config.KeyVerbose, "v", false, "Print each file as it is written (env SCAFFOLD_VERBOSE)")

	root.AddCommand(newListCmd())
	root.AddCommand(newCheckCmd())

	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
