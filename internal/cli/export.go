package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/compasshq/compass/internal/errors"
	"github.com/compasshq/compass/internal/tui"
)

// AddExportCommand adds the export command to the root command.
func AddExportCommand(root *cobra.Command, flags *GlobalFlags) {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all goals and tasks as JSON",
		Long: `Write the full goal and task state as a versioned JSON document to
stdout, or to a file with --file. The document can later be fed back to
"compass import".

Examples:
  compass export
  compass export --file backup.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			doc, err := app.Backup.Export()
			if err != nil {
				return err
			}

			if outFile == "" {
				fmt.Fprintln(cmd.OutOrStdout(), doc)
				return nil
			}

			if err := os.WriteFile(outFile, []byte(doc+"\n"), 0o600); err != nil {
				return errors.Wrapf(err, "failed to write export to %s", outFile)
			}
			out.Success(fmt.Sprintf("Exported to %s", outFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "write the export to a file instead of stdout")

	root.AddCommand(cmd)
}
