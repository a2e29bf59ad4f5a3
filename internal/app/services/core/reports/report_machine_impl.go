package reports

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/app/services/shared/metrics"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TransitionListener is called, outside the machine's lock, after every
// committed state change.
type TransitionListener func(ctx context.Context, previous, current models.ReportState)

// reportMachine applies poll and fetch results as independent events. The
// lock is never held across a network call; every result is checked
// against the epoch it was issued under so answers for an earlier
// submission are dropped.
type reportMachine struct {
	mu           sync.Mutex
	state        models.ReportState
	epoch        uint64
	fetchClaimed bool

	Client         contracts.ReportClient
	FailureMarkers []string
	Log            *zap.Logger
	listener       TransitionListener
	now            func() time.Time
}

func NewReportMachine(client contracts.ReportClient, failureMarkers []string, logger *zap.Logger, listener TransitionListener) contracts.ReportMachine {
	return &reportMachine{
		state:          Uninitialized(time.Now()),
		Client:         client,
		FailureMarkers: failureMarkers,
		Log:            logger,
		listener:       listener,
		now:            time.Now,
	}
}

func (m *reportMachine) State() models.ReportState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *reportMachine) Begin(ctx context.Context, submissionID models.SubmissionID) models.ReportState {
	m.mu.Lock()
	previous := m.state
	m.epoch++
	m.fetchClaimed = false
	m.state = Begin(submissionID, m.now())
	current := m.state
	m.mu.Unlock()

	m.Log.Info("reportMachine.Begin succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
	)
	m.commit(ctx, previous, current)
	return current
}

func (m *reportMachine) Reset(ctx context.Context) models.ReportState {
	m.mu.Lock()
	previous := m.state
	m.epoch++
	m.fetchClaimed = false
	m.state = Uninitialized(m.now())
	current := m.state
	m.mu.Unlock()

	m.commit(ctx, previous, current)
	return current
}

// PollOnce performs one status check. It makes no network call when there
// is no submission or the state is already terminal. Observing complete
// triggers exactly one follow-up report fetch.
func (m *reportMachine) PollOnce(ctx context.Context) (models.ReportState, error) {
	requestID := utils.GetRequestID(ctx)

	m.mu.Lock()
	state := m.state
	epoch := m.epoch

	if state.SubmissionID.IsZero() {
		previous := state
		if state.Status != models.ReportStatusNotFound {
			m.state = MissingSubmission(m.now())
		}
		current := m.state
		m.mu.Unlock()
		m.commit(ctx, previous, current)
		return current, nil
	}

	if !isInFlight(state) {
		claim := state.Status == models.ReportStatusComplete && state.AwaitingReport && !m.fetchClaimed
		if claim {
			m.fetchClaimed = true
		}
		m.mu.Unlock()
		if claim {
			return m.fetch(ctx, epoch, state.SubmissionID, true)
		}
		return state, nil
	}
	m.mu.Unlock()

	m.Log.Debug("reportMachine.PollOnce called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, state.SubmissionID.String()),
		zap.String(constvars.LoggingReportStatusKey, state.Status.String()),
	)

	status, err := m.Client.FetchStatus(ctx, state.SubmissionID)

	m.mu.Lock()
	if m.epoch != epoch {
		current := m.state
		m.mu.Unlock()
		m.Log.Debug("reportMachine.PollOnce dropped result for a previous submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, state.SubmissionID.String()),
		)
		return current, nil
	}
	previous := m.state
	if err != nil {
		m.state = ApplyPollError(m.state, err, m.now())
	} else {
		m.state = ApplyStatus(m.state, status, m.now())
	}
	current := m.state
	claim := current.Status == models.ReportStatusComplete && current.AwaitingReport && !m.fetchClaimed
	if claim {
		m.fetchClaimed = true
	}
	m.mu.Unlock()

	m.commit(ctx, previous, current)

	if err != nil {
		metrics.ReportPollCounter.WithLabelValues(string(exceptions.KindOf(err))).Inc()
		if exceptions.IsKind(err, exceptions.KindNotFound) {
			return current, nil
		}
		m.Log.Error("reportMachine.PollOnce error fetching status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, state.SubmissionID.String()),
			zap.Error(err),
		)
		return current, err
	}
	metrics.ReportPollCounter.WithLabelValues(status.String()).Inc()

	if claim {
		return m.fetch(ctx, epoch, current.SubmissionID, true)
	}
	return current, nil
}

// FetchReport fetches the report body on demand. A complete report is
// served from the state; failed and not_found make no network call.
func (m *reportMachine) FetchReport(ctx context.Context) (models.ReportState, error) {
	m.mu.Lock()
	state := m.state
	epoch := m.epoch

	if state.SubmissionID.IsZero() {
		previous := state
		if state.Status != models.ReportStatusNotFound {
			m.state = MissingSubmission(m.now())
		}
		current := m.state
		m.mu.Unlock()
		m.commit(ctx, previous, current)
		return current, nil
	}

	if !acceptsReport(state) {
		m.mu.Unlock()
		return state, nil
	}

	claim := false
	if state.AwaitingReport {
		if m.fetchClaimed {
			m.mu.Unlock()
			return state, nil
		}
		m.fetchClaimed = true
		claim = true
	}
	m.mu.Unlock()

	return m.fetch(ctx, epoch, state.SubmissionID, claim)
}

func (m *reportMachine) fetch(ctx context.Context, epoch uint64, submissionID models.SubmissionID, claimed bool) (models.ReportState, error) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Debug("reportMachine.fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
	)

	result, err := m.Client.FetchReport(ctx, submissionID)

	m.mu.Lock()
	if m.epoch != epoch {
		current := m.state
		m.mu.Unlock()
		return current, nil
	}
	previous := m.state
	if err != nil {
		m.state = ApplyReportError(m.state, err, m.now())
	} else {
		m.state = ApplyReport(m.state, result, m.FailureMarkers, m.now())
	}
	if claimed {
		m.fetchClaimed = false
	}
	current := m.state
	m.mu.Unlock()

	m.commit(ctx, previous, current)

	if err != nil && !exceptions.IsKind(err, exceptions.KindNotFound) {
		m.Log.Error("reportMachine.fetch error fetching report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
			zap.Error(err),
		)
		return current, err
	}
	return current, nil
}

func (m *reportMachine) commit(ctx context.Context, previous, current models.ReportState) {
	if !changed(previous, current) {
		return
	}
	if previous.Status != current.Status {
		metrics.ReportTransitionCounter.WithLabelValues(previous.Status.String(), current.Status.String()).Inc()
		m.Log.Info("reportMachine transition",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSubmissionIDKey, current.SubmissionID.String()),
			zap.String(constvars.LoggingPreviousStatusKey, previous.Status.String()),
			zap.String(constvars.LoggingReportStatusKey, current.Status.String()),
		)
	}
	if m.listener != nil {
		m.listener(ctx, previous, current)
	}
}

func changed(previous, current models.ReportState) bool {
	return previous.Status != current.Status ||
		previous.SubmissionID != current.SubmissionID ||
		previous.AwaitingReport != current.AwaitingReport ||
		(previous.Report == nil) != (current.Report == nil)
}
