package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/recurrence"
	"github.com/compasshq/compass/internal/tui"
)

// AddTodayCommand adds the today command to the root command.
func AddTodayCommand(root *cobra.Command, flags *GlobalFlags) {
	var (
		interactive bool
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show everything scheduled for today",
		Long: `Show today's schedule: every stored task due today plus every
occurrence of a recurring task that falls on today's date. Occurrences are
expanded on demand; nothing extra is stored.

With --interactive, opens a terminal UI instead of printing. Adding
--watch makes the UI refresh automatically when another process changes
the data directory (file backend only).

Examples:
  compass today
  compass today --interactive --watch
  compass today --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToday(cmd, interactive, watch, flags)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the interactive agenda view")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "auto-refresh when the data directory changes")

	root.AddCommand(cmd)
}

func runToday(cmd *cobra.Command, interactive, watch bool, flags *GlobalFlags) error {
	tui.CheckNoColor()
	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)
	log := Logger()

	app, err := buildApp(cmd.Context(), flags, log)
	if err != nil {
		return err
	}
	defer app.Close()

	reload := func() []domain.TaskInstance {
		now := app.Clock.Now()
		return recurrence.ExpandWindow(app.Tasks.List(), now, now)
	}

	if !interactive {
		instances := reload()
		if flags.Output == OutputJSON {
			return out.JSON(instances)
		}
		if len(instances) == 0 {
			out.Info("Nothing scheduled for today.")
			return nil
		}
		for _, inst := range instances {
			when := inst.DueDate
			if inst.DueTime != "" {
				when += " " + inst.DueTime
			}
			out.Info(fmt.Sprintf("%s %-2s %-18s %s",
				tui.TaskStatusIcon(inst.Status), tui.PriorityIcon(inst.Priority), when, inst.Title))
		}
		return nil
	}

	model := tui.NewAgendaModel("Today", reload)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if watch {
		if app.DataDir == "" {
			out.Warning("--watch needs the file storage backend; continuing without it")
		} else {
			stop, err := tui.StartWatcher(app.DataDir, program)
			if err != nil {
				log.Warn().Err(err).Msg("failed to start data watcher")
			} else {
				defer stop()
			}
		}
	}

	_, err = program.Run()
	return err
}
