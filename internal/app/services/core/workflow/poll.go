package workflow

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/exceptions"

	"golang.org/x/time/rate"
)

// PollUntilTerminal calls PollStatus once per limiter token until the state
// is terminal, ctx ends or a non-recoverable error is returned. Network and
// server errors are passed to onState and polling continues.
func PollUntilTerminal(ctx context.Context, workflow contracts.WorkflowOrchestrator, limiter *rate.Limiter, onState func(state models.ReportState, err error)) (models.ReportState, error) {
	for {
		if err := limiter.Wait(ctx); err != nil {
			return workflow.State(), err
		}

		state, err := workflow.PollStatus(ctx)
		if onState != nil {
			onState(state, err)
		}
		if state.IsTerminal() {
			return state, nil
		}
		if err != nil && !IsRecoverable(err) {
			return state, err
		}
	}
}

// IsRecoverable reports whether polling continues after err.
func IsRecoverable(err error) bool {
	switch exceptions.KindOf(err) {
	case exceptions.KindNetworkUnreachable, exceptions.KindServerError:
		return true
	}
	return false
}
