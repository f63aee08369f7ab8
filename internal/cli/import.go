package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/compasshq/compass/internal/errors"
	"github.com/compasshq/compass/internal/tui"
)

// AddImportCommand adds the import command to the root command.
func AddImportCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import goals and tasks from a JSON export",
		Long: `Replace the stored goal and task collections with those from a JSON
export document. Reads from the file argument, or from stdin when no
file is given. Collections absent from the document are left untouched;
a present empty array empties that collection.

The import is all-or-nothing: a document that fails to parse leaves
current state exactly as it was.

Examples:
  compass import backup.json
  cat backup.json | compass import`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			var (
				payload []byte
				err     error
				source  = "stdin"
			)
			if len(args) == 1 {
				source = args[0]
				payload, err = os.ReadFile(args[0])
				if err != nil {
					return errors.Wrapf(err, "failed to read %s", args[0])
				}
			} else {
				payload, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "failed to read stdin")
				}
			}

			if !flags.Yes {
				if err := confirm(fmt.Sprintf("Replace stored goals and tasks with %s?", source)); err != nil {
					return err
				}
			}

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			if !app.Backup.Import(string(payload)) {
				return errors.Wrapf(errors.ErrImportFailed, "document from %s did not parse", source)
			}

			out.Success("Import complete")
			return nil
		},
	}

	root.AddCommand(cmd)
}
