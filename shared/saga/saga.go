package saga

// This package tracks the outcome of each step of a cross-service workflow.
// There is no compensation here: the gateway's workflows are best-effort and
// synchronous, so the execution record exists for observability and as the
// seam where a retry/compensation layer could attach later.

import (
	"fmt"
	"strings"
	"time"

	"github.com/readspace/library-system/shared/models"
)

// Status represents the current status of a workflow execution
type Status string

const (
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Outcome is the result of a single workflow step
type Outcome string

const (
	// OutcomeOK means the step ran and succeeded.
	OutcomeOK Outcome = "ok"
	// OutcomeFailed means the step ran and failed, aborting the workflow.
	OutcomeFailed Outcome = "failed"
	// OutcomeDegraded means the step failed but the workflow continued with
	// a fallback value.
	OutcomeDegraded Outcome = "degraded"
	// OutcomeSkipped means the workflow aborted before reaching the step.
	OutcomeSkipped Outcome = "skipped"
)

// Step is one recorded step of an execution
type Step struct {
	Name    string
	Outcome Outcome
	Error   string
	At      time.Time
}

// Execution is an ordered record of workflow steps and their outcomes
type Execution struct {
	ID        models.ID
	Name      string
	Steps     []Step
	StartedAt time.Time
}

// NewExecution starts a new execution record for the named workflow
func NewExecution(name string) *Execution {
	return &Execution{
		ID:        models.GenerateUUID(),
		Name:      name,
		StartedAt: time.Now(),
	}
}

// Record appends a step outcome to the execution
func (e *Execution) Record(step string, outcome Outcome, err error) {
	s := Step{
		Name:    step,
		Outcome: outcome,
		At:      time.Now(),
	}
	if err != nil {
		s.Error = err.Error()
	}
	e.Steps = append(e.Steps, s)
}

// Status derives the execution status from the recorded steps
func (e *Execution) Status() Status {
	if len(e.Steps) == 0 {
		return StatusStarted
	}
	for _, s := range e.Steps {
		if s.Outcome == OutcomeFailed {
			return StatusFailed
		}
	}
	return StatusCompleted
}

// String renders a compact one-line summary, e.g.
// "create_reservation[completed]: rented_count=ok stars=ok ..."
func (e *Execution) String() string {
	parts := make([]string, 0, len(e.Steps))
	for _, s := range e.Steps {
		parts = append(parts, fmt.Sprintf("%s=%s", s.Name, s.Outcome))
	}
	return fmt.Sprintf("%s[%s]: %s", e.Name, e.Status(), strings.Join(parts, " "))
}
