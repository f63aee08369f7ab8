package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
)

// testNow in store_test.go pins "today" at 2025-06-15.

func TestImpactScore(t *testing.T) {
	s := setupTestStore(t)

	tests := []struct {
		name string
		task domain.Task
		want int
	}{
		{
			name: "no vision connection scores zero",
			task: domain.Task{
				Priority: constants.TaskPriorityHigh,
				DueDate:  "2025-06-15",
			},
			want: 0,
		},
		{
			name: "due today",
			task: domain.Task{
				Priority:         constants.TaskPriorityLow,
				DueDate:          "2025-06-15",
				VisionConnection: &domain.VisionConnection{ImpactScore: 2},
			},
			want: 1 + 2 + 5,
		},
		{
			name: "overdue counts as due",
			task: domain.Task{
				Priority:         constants.TaskPriorityLow,
				DueDate:          "2025-06-01",
				VisionConnection: &domain.VisionConnection{ImpactScore: 1},
			},
			want: 1 + 1 + 5,
		},
		{
			name: "due within three days",
			task: domain.Task{
				Priority:         constants.TaskPriorityLow,
				DueDate:          "2025-06-18",
				VisionConnection: &domain.VisionConnection{ImpactScore: 1},
			},
			want: 1 + 1 + 4,
		},
		{
			name: "due within a week",
			task: domain.Task{
				Priority:         constants.TaskPriorityLow,
				DueDate:          "2025-06-22",
				VisionConnection: &domain.VisionConnection{ImpactScore: 1},
			},
			want: 1 + 1 + 3,
		},
		{
			name: "due within a month",
			task: domain.Task{
				Priority:         constants.TaskPriorityLow,
				DueDate:          "2025-07-10",
				VisionConnection: &domain.VisionConnection{ImpactScore: 1},
			},
			want: 1 + 1 + 2,
		},
		{
			name: "due far out",
			task: domain.Task{
				Priority:         constants.TaskPriorityLow,
				DueDate:          "2026-01-01",
				VisionConnection: &domain.VisionConnection{ImpactScore: 1},
			},
			want: 1 + 1 + 1,
		},
		{
			name: "malformed due date adds no urgency",
			task: domain.Task{
				Priority:         constants.TaskPriorityMedium,
				DueDate:          "whenever",
				VisionConnection: &domain.VisionConnection{ImpactScore: 3},
			},
			want: 2 + 3,
		},
		{
			name: "sum is capped at ten",
			task: domain.Task{
				Priority:         constants.TaskPriorityHigh,
				DueDate:          "2025-06-15",
				VisionConnection: &domain.VisionConnection{ImpactScore: 10},
			},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ImpactScore(tt.task))
		})
	}
}

func TestImpactScorePriorityMonotonic(t *testing.T) {
	s := setupTestStore(t)

	base := domain.Task{
		DueDate:          "2026-01-01",
		VisionConnection: &domain.VisionConnection{ImpactScore: 2},
	}

	low := base
	low.Priority = constants.TaskPriorityLow
	medium := base
	medium.Priority = constants.TaskPriorityMedium
	high := base
	high.Priority = constants.TaskPriorityHigh

	assert.Less(t, s.ImpactScore(low), s.ImpactScore(medium))
	assert.Less(t, s.ImpactScore(medium), s.ImpactScore(high))
}
