package controllers

import (
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/dto/responses"
)

func toDraftResponse(draft *models.AssessmentDraft) *responses.Draft {
	return &responses.Draft{
		BasicInfo:      draft.BasicInfo,
		ScaleType:      draft.ScaleType,
		Answers:        draft.Answers,
		Attachment:     draft.Attachment,
		AttachmentSize: draft.Attachment.Size(),
	}
}

func toIdentityResponse(identity *models.Identity) *responses.Identity {
	if identity == nil {
		return &responses.Identity{}
	}
	return &responses.Identity{
		Authenticated: true,
		Subject:       identity.Subject,
		User:          identity.User,
	}
}
