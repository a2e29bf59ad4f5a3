package constvars

// Multi-part field names understood by the analysis backend.
const (
	FormFieldScaleType    = "scale_type"
	FormFieldImage        = "image"
	FormFieldAnswerPrefix = "q"
)

// Basic info field names, in the order they are serialized.
const (
	BasicInfoName          = "name"
	BasicInfoGender        = "gender"
	BasicInfoAge           = "age"
	BasicInfoIDCard        = "id_card"
	BasicInfoOccupation    = "occupation"
	BasicInfoCaseName      = "case_name"
	BasicInfoCaseType      = "case_type"
	BasicInfoIdentityType  = "identity_type"
	BasicInfoPersonType    = "person_type"
	BasicInfoMaritalStatus = "marital_status"
	BasicInfoChildrenInfo  = "children_info"
	BasicInfoCriminal      = "criminal_record"
	BasicInfoHealthStatus  = "health_status"
	BasicInfoPhoneNumber   = "phone_number"
	BasicInfoDomicile      = "domicile"
)

var BasicInfoFieldOrder = []string{
	BasicInfoName,
	BasicInfoGender,
	BasicInfoAge,
	BasicInfoIDCard,
	BasicInfoOccupation,
	BasicInfoCaseName,
	BasicInfoCaseType,
	BasicInfoIdentityType,
	BasicInfoPersonType,
	BasicInfoMaritalStatus,
	BasicInfoChildrenInfo,
	BasicInfoCriminal,
	BasicInfoHealthStatus,
	BasicInfoPhoneNumber,
	BasicInfoDomicile,
}

const (
	DefaultCredentialStorageKey = "token"
	DefaultReportFailureMarkers = "失败,failed,failure"
	DefaultAttachmentFileName   = "attachment"
)

// Report artifact paths (gjson syntax).
const (
	ReportTextPath  = "report_text"
	ErrorDetailPath = "detail"
)
