package cli

import (
	"github.com/spf13/cobra"

	"github.com/compasshq/compass/internal/tui"
)

// AddResetCommand adds the reset command to the root command.
func AddResetCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all data to the built-in defaults",
		Long: `Discard every stored goal and task and restore the built-in starter
data, exactly as on first run. This cannot be undone; export first if
you might want the current state back.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			if !flags.Yes {
				if err := confirm("Discard all goals and tasks and restore defaults?"); err != nil {
					return err
				}
			}

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			app.Backup.Reset()
			out.Success("State reset to defaults")
			return nil
		},
	}

	root.AddCommand(cmd)
}
