package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cbout22/scaffold/internal/config"
	"github.com/cbout22/scaffold/internal/manifest"
	"github.com/cbout22/scaffold/internal/scaffold"
)

// newCheckCmd creates the `check` command.
// Usage: scaffold check [--strict]
func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether the placeholder files are present and untouched",
		Long: `Reports, for every file scaffold creates, whether it is present with its
placeholder line, missing, or modified since it was written. Never writes.

With --strict, the command exits with a non-zero code if any file is
missing or modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			fw := &scaffold.OSFileWriter{Root: settings.Dir}
			return runCheckWith(manifest.Default().Paths(), fw, cmd.OutOrStdout(), strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with error code if files are missing or modified")

	return cmd
}

func runCheckWith(paths []config.TargetPath, fw scaffold.FileWriter, out io.Writer, strict bool) error {
	results := CheckTargets(paths, fw)

	fmt.Fprintf(out, "🔍 Checking %d file(s)...\n\n", len(results))

	var issues int
	for _, r := range results {
		switch r.Status {
		case CheckOK:
			fmt.Fprintf(out, "  ✅ %s — ok\n", r.Path)
		case CheckMissing:
			fmt.Fprintf(out, "  ❌ %s — missing\n", r.Path)
			issues++
		case CheckModified:
			fmt.Fprintf(out, "  ⚠️  %s — modified\n", r.Path)
			issues++
		case CheckUnreadable:
			fmt.Fprintf(out, "  ❌ %s — unreadable: %s\n", r.Path, r.Err)
			issues++
		}
	}

	fmt.Fprintln(out)
	if issues > 0 {
		msg := fmt.Sprintf("Found %d issue(s). Run 'scaffold' to recreate the files.", issues)
		if strict {
			return fmt.Errorf("%s", msg)
		}
		fmt.Fprintf(out, "⚠️  %s\n", msg)
	} else {
		fmt.Fprintln(out, "✅ All files are in place.")
	}
	return nil
}
