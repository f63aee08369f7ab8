package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/logging"
	"github.com/compasshq/compass/internal/recurrence"
	"github.com/compasshq/compass/internal/tui"
	"github.com/compasshq/compass/internal/vision"
)

// AddTaskCommand adds the task command group to the root command.
func AddTaskCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long:  `Create, list, update, complete, and delete tasks, and inspect their scores and lineage.`,
	}

	cmd.AddCommand(newTaskAddCmd(flags))
	cmd.AddCommand(newTaskListCmd(flags))
	cmd.AddCommand(newTaskUpdateCmd(flags))
	cmd.AddCommand(newTaskDeleteCmd(flags))
	cmd.AddCommand(newTaskCompleteCmd(flags))
	cmd.AddCommand(newTaskScoreCmd(flags))
	cmd.AddCommand(newTaskPathCmd(flags))
	cmd.AddCommand(newTaskConnectCmd(flags))
	cmd.AddCommand(newTaskOccurrencesCmd(flags))

	root.AddCommand(cmd)
}

// taskAddFlags holds the flags for the task add command.
type taskAddFlags struct {
	description string
	goalID      string
	dueDate     string
	dueTime     string
	estimate    int
	priority    string
	granularity string
	connect     bool

	repeat     string
	interval   int
	days       string
	dayOfMonth int
	until      string
	count      int
}

func newTaskAddCmd(flags *GlobalFlags) *cobra.Command {
	add := &taskAddFlags{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a task, optionally linked to a goal and carrying a recurrence rule.

With --connect, a vision connection is inferred from the task's text using
the built-in value keyword table.

Examples:
  compass task add "Morning run" --goal goal-20260115-093005 --due 2026-02-02 \
    --repeat weekly --days 1,3,5
  compass task add "File taxes" --due 2026-04-01 --priority high --connect
  compass task add "Review budget" --repeat monthly --day-of-month 1 --count 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskAdd(cmd, cmd.OutOrStdout(), args[0], add, flags)
		},
	}

	cmd.Flags().StringVarP(&add.description, "description", "d", "", "detail about the work")
	cmd.Flags().StringVarP(&add.goalID, "goal", "g", "", "owning goal ID")
	cmd.Flags().StringVar(&add.dueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&add.dueTime, "time", "", "due time (HH:MM)")
	cmd.Flags().IntVar(&add.estimate, "estimate", 0, "estimated duration in minutes")
	cmd.Flags().StringVarP(&add.priority, "priority", "p", string(constants.TaskPriorityMedium), "priority (high|medium|low)")
	cmd.Flags().StringVar(&add.granularity, "granularity", "", "time granularity tag (e.g. morning)")
	cmd.Flags().BoolVar(&add.connect, "connect", false, "infer a vision connection from the task text")

	cmd.Flags().StringVar(&add.repeat, "repeat", "", "recurrence type (daily|weekly|monthly|custom)")
	cmd.Flags().IntVar(&add.interval, "interval", 1, "recurrence interval")
	cmd.Flags().StringVar(&add.days, "days", "", "weekdays for weekly recurrence (0=Sun..6=Sat, comma-separated)")
	cmd.Flags().IntVar(&add.dayOfMonth, "day-of-month", 0, "anchor day for monthly recurrence")
	cmd.Flags().StringVar(&add.until, "until", "", "last date an occurrence may fall on (YYYY-MM-DD)")
	cmd.Flags().IntVar(&add.count, "count", 0, "maximum number of occurrences")

	return cmd
}

func runTaskAdd(cmd *cobra.Command, w io.Writer, title string, add *taskAddFlags, flags *GlobalFlags) error {
	tui.CheckNoColor()
	out := tui.NewOutput(w, flags.Output)
	log := Logger()

	app, err := buildApp(cmd.Context(), flags, log)
	if err != nil {
		return err
	}
	defer app.Close()

	rule, err := parseRecurrenceFlags(add)
	if err != nil {
		return err
	}

	t := app.Tasks.Add(domain.Task{
		Title:             title,
		Description:       add.description,
		GoalID:            add.goalID,
		DueDate:           add.dueDate,
		DueTime:           add.dueTime,
		EstimatedDuration: add.estimate,
		Priority:          constants.TaskPriority(add.priority),
		TimeGranularity:   add.granularity,
		Recurrence:        rule,
	}, add.connect)

	log.Info().Str("task_id", t.ID).Str("title", logging.SafeValue("title", t.Title)).Msg("task added")

	if flags.Output == OutputJSON {
		return out.JSON(t)
	}
	out.Success(fmt.Sprintf("Added task %s: %s", t.ID, t.Title))
	if t.VisionConnection != nil {
		out.Info(fmt.Sprintf("  connected to values: %s", strings.Join(t.VisionConnection.ValueAlignment, ", ")))
	}
	return nil
}

// parseRecurrenceFlags builds a recurrence rule from the add flags, or nil
// when --repeat was not given.
func parseRecurrenceFlags(add *taskAddFlags) (*domain.Recurrence, error) {
	if add.repeat == "" {
		return nil, nil
	}

	rule := &domain.Recurrence{
		Type:           constants.RecurrenceType(add.repeat),
		Interval:       add.interval,
		DayOfMonth:     add.dayOfMonth,
		EndDate:        add.until,
		MaxOccurrences: add.count,
	}

	if add.days != "" {
		for _, part := range strings.Split(add.days, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 || n > 6 {
				return nil, fmt.Errorf("invalid argument: weekday %q must be 0-6", part)
			}
			rule.DaysOfWeek = append(rule.DaysOfWeek, time.Weekday(n))
		}
	}

	return rule, nil
}

func newTaskListCmd(flags *GlobalFlags) *cobra.Command {
	var withVision bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			tasks := app.Tasks.List()
			if withVision {
				tasks = app.Tasks.WithVisionConnection()
			}

			if flags.Output == OutputJSON {
				return out.JSON(tasks)
			}
			if len(tasks) == 0 {
				out.Info("No tasks.")
				return nil
			}
			for _, t := range tasks {
				line := fmt.Sprintf("%-26s %s %-2s %-10s %s",
					t.ID, tui.TaskStatusIcon(t.Status), tui.PriorityIcon(t.Priority), t.DueDate, t.Title)
				if t.IsRecurring() {
					line += " ↻"
				}
				out.Info(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withVision, "with-vision", false, "only tasks carrying a vision connection")

	return cmd
}

func newTaskUpdateCmd(flags *GlobalFlags) *cobra.Command {
	var (
		title       string
		description string
		goalID      string
		dueDate     string
		dueTime     string
		estimate    int
		actual      int
		priority    string
		status      string
		granularity string
	)

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update fields on a task",
		Long: `Update a task with a partial set of fields. Only the flags you pass
change; updating an unknown ID is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("goal") {
				patch.GoalID = &goalID
			}
			if cmd.Flags().Changed("due") {
				patch.DueDate = &dueDate
			}
			if cmd.Flags().Changed("time") {
				patch.DueTime = &dueTime
			}
			if cmd.Flags().Changed("estimate") {
				patch.EstimatedDuration = &estimate
			}
			if cmd.Flags().Changed("actual") {
				patch.ActualDuration = &actual
			}
			if cmd.Flags().Changed("priority") {
				p := constants.TaskPriority(priority)
				patch.Priority = &p
			}
			if cmd.Flags().Changed("status") {
				s := constants.TaskStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("granularity") {
				patch.TimeGranularity = &granularity
			}

			t, ok := app.Tasks.Update(args[0], patch)
			if !ok {
				out.Warning(fmt.Sprintf("No task with ID %s", args[0]))
				return nil
			}
			if flags.Output == OutputJSON {
				return out.JSON(t)
			}
			out.Success(fmt.Sprintf("Updated task %s", t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&goalID, "goal", "g", "", "new owning goal ID")
	cmd.Flags().StringVar(&dueDate, "due", "", "new due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dueTime, "time", "", "new due time (HH:MM)")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "estimated duration in minutes")
	cmd.Flags().IntVar(&actual, "actual", 0, "actual duration in minutes")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "priority (high|medium|low)")
	cmd.Flags().StringVar(&status, "status", "", "status (pending|in-progress|completed)")
	cmd.Flags().StringVar(&granularity, "granularity", "", "time granularity tag")

	return cmd
}

func newTaskDeleteCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			if !app.Tasks.Delete(args[0]) {
				out.Warning(fmt.Sprintf("No task with ID %s", args[0]))
				return nil
			}
			out.Success(fmt.Sprintf("Deleted task %s", args[0]))
			return nil
		},
	}
}

func newTaskCompleteCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			status := constants.TaskStatusCompleted
			t, ok := app.Tasks.Update(args[0], domain.TaskPatch{Status: &status})
			if !ok {
				out.Warning(fmt.Sprintf("No task with ID %s", args[0]))
				return nil
			}
			if flags.Output == OutputJSON {
				return out.JSON(t)
			}
			out.Success(fmt.Sprintf("Completed %s", t.Title))
			return nil
		},
	}
}

func newTaskScoreCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "score <task-id>",
		Short: "Show a task's impact score",
		Long: `Show the derived 0-10 impact score for a task. Tasks without a vision
connection always score 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			t, ok := app.Tasks.Get(args[0])
			if !ok {
				out.Warning(fmt.Sprintf("No task with ID %s", args[0]))
				return nil
			}

			score := app.Tasks.ImpactScore(t)
			if flags.Output == OutputJSON {
				return out.JSON(map[string]any{"task_id": t.ID, "impact_score": score})
			}
			out.Info(fmt.Sprintf("%s — impact %d/10", t.Title, score))
			return nil
		},
	}
}

func newTaskPathCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path <task-id>",
		Short: "Show a task's vision → goal → task lineage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			path := app.Tasks.HierarchyPath(args[0])
			if flags.Output == OutputJSON {
				return out.JSON(path)
			}
			out.Info(fmt.Sprintf("%s → %s → %s", orDash(path.Vision), orDash(path.Goal), orDash(path.Task)))
			return nil
		},
	}
}

func newTaskConnectCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "connect <task-id>",
		Short: "Infer and attach a vision connection",
		Long: `Run the value keyword table over the task's title and description and
attach the resulting vision connection. Reports when nothing matches.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			t, ok := app.Tasks.Get(args[0])
			if !ok {
				out.Warning(fmt.Sprintf("No task with ID %s", args[0]))
				return nil
			}

			conn := vision.Infer(t.Title, t.Description)
			if conn == nil {
				out.Warning("No value keywords matched; task left unconnected")
				return nil
			}
			app.Tasks.UpdateVisionConnection(t.ID, conn)

			if flags.Output == OutputJSON {
				return out.JSON(conn)
			}
			out.Success(fmt.Sprintf("Connected to values: %s", strings.Join(conn.ValueAlignment, ", ")))
			return nil
		},
	}
}

func newTaskOccurrencesCmd(flags *GlobalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "occurrences <task-id>",
		Short: "Expand a task's recurrence rule into dated occurrences",
		Long: `Expand a task's recurrence rule and print the resulting instances in
chronological order. Instances are computed on demand and never stored.

Examples:
  compass task occurrences task-20260201-080000
  compass task occurrences task-20260201-080000 --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			t, ok := app.Tasks.Get(args[0])
			if !ok {
				out.Warning(fmt.Sprintf("No task with ID %s", args[0]))
				return nil
			}

			instances := recurrence.Expand(&t)
			if limit > 0 && len(instances) > limit {
				instances = instances[:limit]
			}

			if flags.Output == OutputJSON {
				return out.JSON(instances)
			}
			for _, inst := range instances {
				when := inst.DueDate
				if inst.DueTime != "" {
					when += " " + inst.DueTime
				}
				out.Info(fmt.Sprintf("%-30s #%d  %s", inst.ID, inst.InstanceNumber, when))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many occurrences")

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
