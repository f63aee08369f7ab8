package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/errors"
	"github.com/compasshq/compass/internal/recurrence"
	"github.com/compasshq/compass/internal/tui"
)

// AddAgendaCommand adds the agenda command to the root command.
func AddAgendaCommand(root *cobra.Command, flags *GlobalFlags) {
	var (
		fromStr string
		toStr   string
	)

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show scheduled occurrences over a date window",
		Long: `Expand every task's recurrence rule and list the occurrences falling
inside a date window, sorted by date. Without flags the window is today
through seven days from now.

Examples:
  compass agenda
  compass agenda --from 2026-09-01 --to 2026-09-30
  compass agenda --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			now := app.Clock.Now()
			from := now
			to := now.AddDate(0, 0, 7)

			if fromStr != "" {
				from, err = domain.ParseDate(fromStr)
				if err != nil {
					return errors.Wrapf(errors.ErrInvalidDate, "invalid --from date %q", fromStr)
				}
			}
			if toStr != "" {
				to, err = domain.ParseDate(toStr)
				if err != nil {
					return errors.Wrapf(errors.ErrInvalidDate, "invalid --to date %q", toStr)
				}
			}

			instances := recurrence.ExpandWindow(app.Tasks.List(), from, to)
			if flags.Output == OutputJSON {
				return out.JSON(instances)
			}

			if len(instances) == 0 {
				out.Info("Nothing scheduled in this window.")
				return nil
			}

			lastDate := ""
			for _, inst := range instances {
				if inst.DueDate != lastDate {
					lastDate = inst.DueDate
					out.Info(lastDate)
				}
				when := "     "
				if inst.DueTime != "" {
					when = inst.DueTime
				}
				out.Info(fmt.Sprintf("  %s %-2s %s  %s",
					tui.TaskStatusIcon(inst.Status), tui.PriorityIcon(inst.Priority), when, inst.Title))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "window start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&toStr, "to", "", "window end date (YYYY-MM-DD, default today+7)")

	root.AddCommand(cmd)
}
