package requests

import "psychology-assessment-client/internal/app/models"

type UpdateBasicInfo struct {
	models.BasicInfo
}

type SelectScale struct {
	ScaleType string `json:"scale_type" validate:"required,max=50"`
}

type SetAnswer struct {
	Ordinal int    `json:"-" validate:"gt=0"`
	Answer  string `json:"answer" validate:"required,max=500"`
}

type SetAttachment struct {
	FileName    string `validate:"required"`
	ContentType string `validate:"required,oneof=image/png image/jpeg image/gif image/webp"`
	Data        []byte `validate:"required"`
}

type ListSubmissions struct {
	Limit int64 `validate:"gte=1,lte=100"`
}
