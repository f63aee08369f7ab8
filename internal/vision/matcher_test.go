package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantValues  []string
		wantImpact  int
	}{
		{
			name:       "single value match",
			title:      "Morning run",
			wantValues: []string{"health"},
			wantImpact: 4,
		},
		{
			name:        "keyword in description",
			title:       "Block an hour",
			description: "Study for the calculus exam",
			wantValues:  []string{"growth"},
			wantImpact:  4,
		},
		{
			name:       "multiple values stack impact",
			title:      "Run with a friend",
			wantValues: []string{"health", "relationships"},
			wantImpact: 6,
		},
		{
			name:       "case insensitive",
			title:      "GYM SESSION",
			wantValues: []string{"health"},
			wantImpact: 4,
		},
		{
			name:       "impact capped at ten",
			title:      "Run, read, call family, work on the budget",
			wantValues: []string{"health", "growth", "relationships", "career", "financial"},
			wantImpact: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := Infer(tt.title, tt.description)
			require.NotNil(t, conn)
			assert.Equal(t, tt.wantValues, conn.ValueAlignment)
			assert.Equal(t, tt.wantImpact, conn.ImpactScore)
			assert.NotEmpty(t, conn.CoreVisionRelevance)
			assert.NotEmpty(t, conn.WhyStatement)
		})
	}
}

func TestInferNoMatch(t *testing.T) {
	assert.Nil(t, Infer("Defrost the freezer", ""))
	assert.Nil(t, Infer("", ""))
}

func TestInferDeterministic(t *testing.T) {
	a := Infer("Morning run and journal", "")
	b := Infer("Morning run and journal", "")
	require.NotNil(t, a)
	assert.Equal(t, a, b)
}

func TestInferWhyStatementJoins(t *testing.T) {
	two := Infer("Run with a friend", "")
	require.NotNil(t, two)
	assert.Equal(t, "It supports your health and relationships values.", two.WhyStatement)

	one := Infer("Morning run", "")
	require.NotNil(t, one)
	assert.Equal(t, "It supports your health values.", one.WhyStatement)
}
