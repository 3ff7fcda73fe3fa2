package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cbout22/scaffold/internal/config"
	"github.com/cbout22/scaffold/internal/manifest"
	"github.com/cbout22/scaffold/internal/scaffold"
)

// CompletionMessage is printed to stdout once every file has been written.
const CompletionMessage = "All files have been created."

func runScaffold(cmd *cobra.Command, settings config.Settings) error {
	fw := &scaffold.OSFileWriter{Root: settings.Dir}
	var progress io.Writer
	if settings.Verbose {
		progress = cmd.ErrOrStderr()
	}
	return runScaffoldWith(manifest.Default().Paths(), fw, cmd.OutOrStdout(), progress)
}

// runScaffoldWith is the testable core of the root command. Progress lines
// go to progress when it is non-nil; the completion message goes to out
// only after every path succeeded.
func runScaffoldWith(paths []config.TargetPath, fw scaffold.FileWriter, out, progress io.Writer) error {
	var opts []scaffold.Option
	if progress != nil {
		opts = append(opts, scaffold.WithProgress(func(p config.TargetPath) {
			fmt.Fprintf(progress, "  ✅ %s\n", p)
		}))
	}

	if err := scaffold.New(fw, opts...).Run(paths); err != nil {
		return err
	}

	fmt.Fprintln(out, CompletionMessage)
	return nil
}
