// Package recurrence expands a task's recurrence rule into the ordered
// sequence of concrete, dated instances it represents.
//
// Instances are ephemeral display records: they are computed on read for
// calendar and list views and never persisted. The engine never mutates
// the source task.
package recurrence

import (
	"fmt"
	"sort"
	"time"

	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
)

// Expand generates the ordered, chronological sequence of instances for one
// task.
//
// A task without an effective recurrence rule (no rule, type "none", or a
// due date that does not parse) is its own sole instance, returned
// unchanged under its original ID. For recurring tasks the cursor starts at
// the task's due date and walks forward one candidate day at a time:
//
//   - daily (and the custom placeholder, and any unrecognized type):
//     every visited day is an occurrence; the cursor jumps interval days.
//   - weekly with a non-empty weekday set: a day is an occurrence when its
//     weekday is in the set; the cursor scans day by day, so every matching
//     weekday is emitted in chronological order.
//   - weekly with an empty set: every visited day is an occurrence and the
//     cursor jumps 7*interval days, i.e. "same weekday as the start".
//   - monthly: a day is an occurrence when its day-of-month equals the
//     rule's anchor (default 1); on a match the cursor jumps interval
//     months, otherwise it scans forward one day to re-test.
//
// Expansion stops when the rule's end date is passed, when its occurrence
// cap is reached, or unconditionally after 1000 occurrences. The last stop
// is a silent safety valve, not a reported condition.
func Expand(task *domain.Task) []domain.TaskInstance {
	if !task.IsRecurring() {
		return []domain.TaskInstance{soleInstance(task)}
	}

	start, err := domain.ParseDate(task.DueDate)
	if err != nil {
		return []domain.TaskInstance{soleInstance(task)}
	}

	rule := task.Recurrence
	interval := rule.EffectiveInterval()

	var end time.Time
	hasEnd := false
	if rule.EndDate != "" {
		if e, err := domain.ParseDate(rule.EndDate); err == nil {
			end = e
			hasEnd = true
		}
	}

	maxOccurrences := rule.MaxOccurrences

	instances := make([]domain.TaskInstance, 0)
	cursor := start
	count := 0

	for iter := 0; iter < constants.MaxExpansionIterations; iter++ {
		if hasEnd && cursor.After(end) {
			break
		}
		if maxOccurrences > 0 && count >= maxOccurrences {
			break
		}
		if count >= constants.MaxOccurrences {
			break
		}

		include := false
		var next time.Time

		switch rule.Type {
		case constants.RecurrenceWeekly:
			if len(rule.DaysOfWeek) > 0 {
				include = rule.MatchesWeekday(cursor)
				next = cursor.AddDate(0, 0, 1)
			} else {
				include = true
				next = cursor.AddDate(0, 0, 7*interval)
			}
		case constants.RecurrenceMonthly:
			include = cursor.Day() == rule.EffectiveDayOfMonth()
			if include {
				next = cursor.AddDate(0, interval, 0)
			} else {
				next = cursor.AddDate(0, 0, 1)
			}
		default:
			// daily, custom, and anything unrecognized: unconditional.
			include = true
			next = cursor.AddDate(0, 0, interval)
		}

		if include {
			instances = append(instances, makeInstance(task, cursor, count))
			count++
		}
		cursor = next
	}

	return instances
}

// ExpandAll expands every task and concatenates the results in stored
// order. This is how display lists materialize their visible rows.
func ExpandAll(tasks []domain.Task) []domain.TaskInstance {
	var all []domain.TaskInstance
	for i := range tasks {
		all = append(all, Expand(&tasks[i])...)
	}
	return all
}

// ExpandWindow expands every task and keeps only the instances whose date
// falls inside [from, to], compared by calendar date. The result is sorted
// chronologically, with ties broken by original task ID and instance
// number, which makes agenda output stable.
func ExpandWindow(tasks []domain.Task, from, to time.Time) []domain.TaskInstance {
	fromDay := domain.StartOfDay(from)
	toDay := domain.StartOfDay(to)

	var window []domain.TaskInstance
	for _, inst := range ExpandAll(tasks) {
		day, err := domain.ParseDate(inst.DueDate)
		if err != nil {
			continue
		}
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		window = append(window, inst)
	}

	sort.Slice(window, func(i, j int) bool {
		if window[i].DueDate != window[j].DueDate {
			return window[i].DueDate < window[j].DueDate
		}
		if window[i].OriginalTaskID != window[j].OriginalTaskID {
			return window[i].OriginalTaskID < window[j].OriginalTaskID
		}
		return window[i].InstanceNumber < window[j].InstanceNumber
	})
	return window
}

// soleInstance wraps a non-recurring task as its own single occurrence.
func soleInstance(task *domain.Task) domain.TaskInstance {
	return domain.TaskInstance{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		GoalID:         task.GoalID,
		DueDate:        task.DueDate,
		DueTime:        task.DueTime,
		Priority:       task.Priority,
		Status:         task.Status,
		OriginalTaskID: task.ID,
		InstanceNumber: 1,
	}
}

// makeInstance synthesizes the occurrence at index for the given day.
func makeInstance(task *domain.Task, day time.Time, index int) domain.TaskInstance {
	dueTime := task.DueTime
	if task.Recurrence.Type == constants.RecurrenceWeekly {
		if override, ok := task.Recurrence.WeeklyTimes[day.Weekday()]; ok && override != "" {
			dueTime = override
		}
	}

	return domain.TaskInstance{
		ID:             fmt.Sprintf("%s_%d", task.ID, index),
		Title:          task.Title,
		Description:    task.Description,
		GoalID:         task.GoalID,
		DueDate:        domain.FormatDate(day),
		DueTime:        dueTime,
		Priority:       task.Priority,
		Status:         task.Status,
		OriginalTaskID: task.ID,
		InstanceNumber: index + 1,
	}
}
