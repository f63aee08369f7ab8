package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compasshq/compass/internal/errors"
	"github.com/compasshq/compass/internal/tui"
)

// AddProfileCommand adds the profile command to the root command.
func AddProfileCommand(root *cobra.Command, flags *GlobalFlags) {
	var (
		name  string
		focus string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		Long: `Without flags, prints the stored profile. With --name or --focus,
updates those fields first.

Examples:
  compass profile
  compass profile --name "Ada" --focus "Ship the marathon plan"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			if cmd.Flags().Changed("name") {
				if name == "" {
					return errors.Wrap(errors.ErrEmptyValue, "--name cannot be empty")
				}
				app.Profile.SetName(name)
			}
			if cmd.Flags().Changed("focus") {
				app.Profile.SetFocus(focus)
			}

			p := app.Profile.Get()
			if flags.Output == OutputJSON {
				return out.JSON(p)
			}

			out.Info(fmt.Sprintf("Name:  %s", p.Name))
			if p.Focus != "" {
				out.Info(fmt.Sprintf("Focus: %s", p.Focus))
			}
			out.Info(fmt.Sprintf("Since: %s", p.CreatedAt.Format("2006-01-02")))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "set the display name")
	cmd.Flags().StringVar(&focus, "focus", "", "set the current focus statement")

	root.AddCommand(cmd)
}
