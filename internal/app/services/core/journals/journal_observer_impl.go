package journals

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
)

// journalObserver records every accepted submission and keeps its status
// current as the report state changes.
type journalObserver struct {
	JournalRepository contracts.JournalRepository
	CredentialStore   contracts.CredentialStore
}

// NewJournalObserver returns a report observer writing to repository.
// credentialStore may be nil; it only contributes the subject.
func NewJournalObserver(repository contracts.JournalRepository, credentialStore contracts.CredentialStore) contracts.ReportObserver {
	return &journalObserver{
		JournalRepository: repository,
		CredentialStore:   credentialStore,
	}
}

func (o *journalObserver) SubmissionAccepted(ctx context.Context, draft *models.AssessmentDraft, state models.ReportState) error {
	record := &models.SubmissionRecord{
		SubmissionID: state.SubmissionID,
		Status:       state.Status,
		Message:      state.Message,
	}
	if draft != nil {
		record.ScaleType = draft.ScaleType
		record.AnswerCount = len(draft.Answers)
		record.HasAttachment = draft.Attachment.Size() > 0
	}
	if o.CredentialStore != nil {
		record.Subject = o.CredentialStore.Identity().Subject
	}
	return o.JournalRepository.Insert(ctx, record)
}

func (o *journalObserver) ReportStateChanged(ctx context.Context, previous, current models.ReportState) error {
	if current.SubmissionID.IsZero() || current.SubmissionID != previous.SubmissionID {
		return nil
	}
	if previous.Status == current.Status && previous.Message == current.Message {
		return nil
	}
	return o.JournalRepository.UpdateStatus(ctx, current.SubmissionID, current.Status, current.Message)
}
