package responses

import "psychology-assessment-client/internal/app/models"

type Draft struct {
	BasicInfo      models.BasicInfo   `json:"basic_info"`
	ScaleType      string             `json:"scale_type,omitempty"`
	Answers        map[int]string     `json:"answers"`
	Attachment     *models.Attachment `json:"attachment,omitempty"`
	AttachmentSize int                `json:"attachment_size"`
}

type ScaleQuestions struct {
	ScaleCode string                 `json:"scale_code"`
	Questions []models.ScaleQuestion `json:"questions"`
}

type Submissions struct {
	Submissions []models.SubmissionRecord `json:"submissions"`
}
