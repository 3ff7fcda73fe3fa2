package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbout22/scaffold/internal/manifest"
)

// newListCmd creates the `list` command.
// Usage: scaffold list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the files scaffold creates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range manifest.Default().Paths() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
