package saga

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestExecution_Status(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []Outcome
		want     Status
	}{
		{
			name: "no steps yet",
			want: StatusStarted,
		},
		{
			name:     "all ok",
			outcomes: []Outcome{OutcomeOK, OutcomeOK},
			want:     StatusCompleted,
		},
		{
			name:     "degraded steps still complete",
			outcomes: []Outcome{OutcomeOK, OutcomeDegraded, OutcomeOK},
			want:     StatusCompleted,
		},
		{
			name:     "any failed step fails the execution",
			outcomes: []Outcome{OutcomeOK, OutcomeFailed, OutcomeSkipped},
			want:     StatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := NewExecution("workflow")
			for _, outcome := range tt.outcomes {
				exec.Record("step", outcome, nil)
			}
			assert.Equal(t, tt.want, exec.Status())
		})
	}
}

func TestExecution_RecordKeepsOrderAndError(t *testing.T) {
	exec := NewExecution("create_reservation")
	exec.Record("rented_count", OutcomeOK, nil)
	exec.Record("stars", OutcomeDegraded, errors.New("rating unavailable"))
	exec.Record("eligibility_gate", OutcomeFailed, errors.New("rental limit exceeded"))

	assert.Len(t, exec.Steps, 3)
	assert.Equal(t, "rented_count", exec.Steps[0].Name)
	assert.Empty(t, exec.Steps[0].Error)
	assert.Equal(t, "rating unavailable", exec.Steps[1].Error)
	assert.Equal(t,
		"create_reservation[failed]: rented_count=ok stars=degraded eligibility_gate=failed",
		exec.String(),
	)
}

func TestNewExecution_AssignsUniqueIDs(t *testing.T) {
	a := NewExecution("workflow")
	b := NewExecution("workflow")
	assert.NotEqual(t, a.ID.String(), b.ID.String())
}
