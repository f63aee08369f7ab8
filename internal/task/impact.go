package task

import (
	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
)

// Impact score weights. The score is a plain additive sum capped at maxScore;
// it is not normalized.
const (
	maxScore = 10

	priorityHighPoints   = 3
	priorityMediumPoints = 2
	priorityLowPoints    = 1

	urgencyDuePoints      = 5 // due today or past
	urgencySoonPoints     = 4 // within 3 days
	urgencyThisWeekPoints = 3 // within 7 days
	urgencyThisMonth      = 2 // within 30 days
	urgencyLaterPoints    = 1
)

// ImpactScore computes the task's derived 0-10 urgency/importance metric.
//
// A task without a vision connection scores 0: the metric is meaningless
// without a vision link. Otherwise the score adds the priority weight, the
// connection's own impact score verbatim, and an urgency bonus from the
// number of days until the due date, then caps the sum at 10.
func (s *Store) ImpactScore(t domain.Task) int {
	if t.VisionConnection == nil {
		return 0
	}

	score := priorityPoints(t.Priority)
	score += t.VisionConnection.ImpactScore
	score += s.urgencyBonus(t)

	if score > maxScore {
		score = maxScore
	}
	return score
}

func priorityPoints(p constants.TaskPriority) int {
	switch p {
	case constants.TaskPriorityHigh:
		return priorityHighPoints
	case constants.TaskPriorityMedium:
		return priorityMediumPoints
	case constants.TaskPriorityLow:
		return priorityLowPoints
	default:
		return 0
	}
}

// urgencyBonus scores how close the due date is. A missing or malformed
// due date contributes nothing.
func (s *Store) urgencyBonus(t domain.Task) int {
	due, err := domain.ParseDate(t.DueDate)
	if err != nil {
		return 0
	}
	days := domain.DaysUntil(s.clock.Now(), due)
	switch {
	case days <= 0:
		return urgencyDuePoints
	case days <= 3:
		return urgencySoonPoints
	case days <= 7:
		return urgencyThisWeekPoints
	case days <= 30:
		return urgencyThisMonth
	default:
		return urgencyLaterPoints
	}
}
