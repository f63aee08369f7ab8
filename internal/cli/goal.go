package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/errors"
	"github.com/compasshq/compass/internal/logging"
	"github.com/compasshq/compass/internal/tui"
)

// AddGoalCommand adds the goal command group to the root command.
func AddGoalCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
		Long:  `Create, list, update, and delete goals, and inspect the goal hierarchy.`,
	}

	cmd.AddCommand(newGoalAddCmd(flags))
	cmd.AddCommand(newGoalListCmd(flags))
	cmd.AddCommand(newGoalUpdateCmd(flags))
	cmd.AddCommand(newGoalDeleteCmd(flags))
	cmd.AddCommand(newGoalTreeCmd(flags))

	root.AddCommand(cmd)
}

// goalAddFlags holds the flags for the goal add command.
type goalAddFlags struct {
	description string
	level       int
	parentID    string
	goalType    string
	startDate   string
	endDate     string
}

func newGoalAddCmd(flags *GlobalFlags) *cobra.Command {
	add := &goalAddFlags{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new goal",
		Long: `Add a new goal to the hierarchy.

Examples:
  compass goal add "Run a marathon" --level 2 --type long-term --parent goal-20260101-080000
  compass goal add "Live deliberately" --level 1 --type vision`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoalAdd(cmd, cmd.OutOrStdout(), args[0], add, flags)
		},
	}

	cmd.Flags().StringVarP(&add.description, "description", "d", "", "what achieving the goal looks like")
	cmd.Flags().IntVarP(&add.level, "level", "l", 1, "hierarchy depth (1 = top)")
	cmd.Flags().StringVarP(&add.parentID, "parent", "p", "", "parent goal ID")
	cmd.Flags().StringVarP(&add.goalType, "type", "t", string(constants.GoalTypeShortTerm), "goal type (vision|long-term|mid-term|short-term)")
	cmd.Flags().StringVar(&add.startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&add.endDate, "end", "", "end date (YYYY-MM-DD)")

	return cmd
}

func runGoalAdd(cmd *cobra.Command, w io.Writer, title string, add *goalAddFlags, flags *GlobalFlags) error {
	tui.CheckNoColor()
	out := tui.NewOutput(w, flags.Output)
	log := Logger()

	app, err := buildApp(cmd.Context(), flags, log)
	if err != nil {
		return err
	}
	defer app.Close()

	g := app.Goals.Add(domain.Goal{
		Title:       title,
		Description: add.description,
		Level:       add.level,
		ParentID:    add.parentID,
		StartDate:   add.startDate,
		EndDate:     add.endDate,
		Type:        constants.GoalType(add.goalType),
		Status:      constants.GoalStatusActive,
	})

	log.Info().Str("goal_id", g.ID).Str("title", logging.SafeValue("title", g.Title)).Msg("goal added")

	if flags.Output == OutputJSON {
		return out.JSON(g)
	}
	out.Success(fmt.Sprintf("Added goal %s: %s", g.ID, g.Title))
	return nil
}

func newGoalListCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			goals := app.Goals.List()
			if flags.Output == OutputJSON {
				return out.JSON(goals)
			}
			if len(goals) == 0 {
				out.Info("No goals yet.")
				return nil
			}
			for _, g := range goals {
				out.Info(fmt.Sprintf("%-26s L%d %-10s %3d%%  %s", g.ID, g.Level, g.Type, g.Progress, g.Title))
			}
			return nil
		},
	}
}

func newGoalUpdateCmd(flags *GlobalFlags) *cobra.Command {
	var (
		title       string
		description string
		level       int
		parentID    string
		progress    int
		status      string
		goalType    string
		startDate   string
		endDate     string
	)

	cmd := &cobra.Command{
		Use:   "update <goal-id>",
		Short: "Update fields on a goal",
		Long: `Update a goal with a partial set of fields. Only the flags you pass
change; everything else is left as-is. Updating an unknown ID is a no-op.

Examples:
  compass goal update goal-20260115-093005 --progress 40
  compass goal update goal-20260115-093005 --status paused`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			var patch domain.GoalPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("level") {
				patch.Level = &level
			}
			if cmd.Flags().Changed("parent") {
				patch.ParentID = &parentID
			}
			if cmd.Flags().Changed("progress") {
				patch.Progress = &progress
			}
			if cmd.Flags().Changed("status") {
				s := constants.GoalStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("type") {
				t := constants.GoalType(goalType)
				patch.Type = &t
			}
			if cmd.Flags().Changed("start") {
				patch.StartDate = &startDate
			}
			if cmd.Flags().Changed("end") {
				patch.EndDate = &endDate
			}

			g, ok := app.Goals.Update(args[0], patch)
			if !ok {
				out.Warning(fmt.Sprintf("No goal with ID %s", args[0]))
				return nil
			}
			if flags.Output == OutputJSON {
				return out.JSON(g)
			}
			out.Success(fmt.Sprintf("Updated goal %s", g.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().IntVarP(&level, "level", "l", 0, "new hierarchy level")
	cmd.Flags().StringVarP(&parentID, "parent", "p", "", "new parent goal ID")
	cmd.Flags().IntVar(&progress, "progress", 0, "completion percentage 0-100")
	cmd.Flags().StringVar(&status, "status", "", "goal status (active|completed|paused)")
	cmd.Flags().StringVarP(&goalType, "type", "t", "", "goal type")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")

	return cmd
}

func newGoalDeleteCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete a goal and every task that references it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			if !flags.Yes {
				if err := confirm(fmt.Sprintf("Delete goal %s and its tasks?", args[0])); err != nil {
					return err
				}
			}

			if !app.Goals.Delete(args[0]) {
				out.Warning(fmt.Sprintf("No goal with ID %s", args[0]))
				return nil
			}
			out.Success(fmt.Sprintf("Deleted goal %s", args[0]))
			return nil
		},
	}
}

func newGoalTreeCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [goal-id]",
		Short: "Show the goal hierarchy",
		Long: `Without arguments, prints the full goal tree. With a goal ID, prints
the chain from the root down to that goal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.CheckNoColor()
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			app, err := buildApp(cmd.Context(), flags, Logger())
			if err != nil {
				return err
			}
			defer app.Close()

			if len(args) == 1 {
				chain, err := app.Goals.Hierarchy(args[0])
				if err != nil {
					return err
				}
				if flags.Output == OutputJSON {
					return out.JSON(chain)
				}
				for depth, g := range chain {
					out.Info(fmt.Sprintf("%s%s (%s)", strings.Repeat("  ", depth), g.Title, g.ID))
				}
				return nil
			}

			goals := app.Goals.List()
			if flags.Output == OutputJSON {
				return out.JSON(goals)
			}
			printGoalTree(out, goals)
			return nil
		},
	}
}

// printGoalTree renders the whole collection as an indented tree. Goals
// whose parent is missing are treated as roots so nothing disappears from
// the listing; a visited set keeps cyclic parent links from recursing.
func printGoalTree(out tui.Output, goals []domain.Goal) {
	byParent := make(map[string][]domain.Goal)
	known := make(map[string]bool, len(goals))
	for _, g := range goals {
		known[g.ID] = true
	}
	for _, g := range goals {
		parent := g.ParentID
		if parent != "" && !known[parent] {
			parent = ""
		}
		byParent[parent] = append(byParent[parent], g)
	}

	visited := make(map[string]bool)
	var walk func(parent string, depth int)
	walk = func(parent string, depth int) {
		for _, g := range byParent[parent] {
			if visited[g.ID] {
				continue
			}
			visited[g.ID] = true
			out.Info(fmt.Sprintf("%s%s (%s, %d%%)", strings.Repeat("  ", depth), g.Title, g.Type, g.Progress))
			walk(g.ID, depth+1)
		}
	}
	walk("", 0)
}

// confirm presents an interactive yes/no form and returns ErrAborted when
// declined.
func confirm(title string) error {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&ok),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if !ok {
		return errors.ErrAborted
	}
	return nil
}
