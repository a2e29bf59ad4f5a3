package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	LoginSuccess             = "successfully login"
	LogoutSuccess            = "successfully logout"
	RegisterSuccess          = "user registered successfully"
	ProfileGetSuccess        = "get profile successfully"
	GetScalesSuccess         = "get scales successfully"
	GetScaleQuestionsSuccess = "get scale questions successfully"
	GetDraftSuccess          = "get draft successfully"
	UpdateDraftSuccess       = "draft updated successfully"
	SubmitAssessmentSuccess  = "assessment submitted, analysis pending"
	GetReportStatusSuccess   = "get report status successfully"
	GetReportSuccess         = "get report successfully"
	ResetAssessmentSuccess   = "assessment reset successfully"
	GetSubmissionsSuccess    = "get submissions successfully"
)
