package models

import (
	"psychology-assessment-client/internal/pkg/constvars"
	"strconv"
)

// BasicInfo holds the subject's demographic and case fields. Empty strings
// and nil numbers mean "not provided".
type BasicInfo struct {
	Name           string `json:"name,omitempty" validate:"omitempty,max=100"`
	Gender         string `json:"gender,omitempty" validate:"omitempty,max=20"`
	Age            *int   `json:"age,omitempty" validate:"omitempty,gt=0,lte=150"`
	IDCard         string `json:"id_card,omitempty" validate:"omitempty,max=32"`
	Occupation     string `json:"occupation,omitempty" validate:"omitempty,max=100"`
	CaseName       string `json:"case_name,omitempty" validate:"omitempty,max=200"`
	CaseType       string `json:"case_type,omitempty" validate:"omitempty,max=100"`
	IdentityType   string `json:"identity_type,omitempty" validate:"omitempty,max=100"`
	PersonType     string `json:"person_type,omitempty" validate:"omitempty,max=100"`
	MaritalStatus  string `json:"marital_status,omitempty" validate:"omitempty,max=50"`
	ChildrenInfo   string `json:"children_info,omitempty" validate:"omitempty,max=200"`
	CriminalRecord *int   `json:"criminal_record,omitempty" validate:"omitempty,oneof=0 1"`
	HealthStatus   string `json:"health_status,omitempty" validate:"omitempty,max=200"`
	PhoneNumber    string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	Domicile       string `json:"domicile,omitempty" validate:"omitempty,max=200"`
}

// Values maps every basic info field name to its serialized value, using ""
// for fields that were not provided.
func (b BasicInfo) Values() map[string]string {
	return map[string]string{
		constvars.BasicInfoName:          b.Name,
		constvars.BasicInfoGender:        b.Gender,
		constvars.BasicInfoAge:           formatOptionalInt(b.Age),
		constvars.BasicInfoIDCard:        b.IDCard,
		constvars.BasicInfoOccupation:    b.Occupation,
		constvars.BasicInfoCaseName:      b.CaseName,
		constvars.BasicInfoCaseType:      b.CaseType,
		constvars.BasicInfoIdentityType:  b.IdentityType,
		constvars.BasicInfoPersonType:    b.PersonType,
		constvars.BasicInfoMaritalStatus: b.MaritalStatus,
		constvars.BasicInfoChildrenInfo:  b.ChildrenInfo,
		constvars.BasicInfoCriminal:      formatOptionalInt(b.CriminalRecord),
		constvars.BasicInfoHealthStatus:  b.HealthStatus,
		constvars.BasicInfoPhoneNumber:   b.PhoneNumber,
		constvars.BasicInfoDomicile:      b.Domicile,
	}
}

// Merge overwrites the fields that are set in update and keeps the rest.
func (b *BasicInfo) Merge(update BasicInfo) {
	mergeString(&b.Name, update.Name)
	mergeString(&b.Gender, update.Gender)
	mergeInt(&b.Age, update.Age)
	mergeString(&b.IDCard, update.IDCard)
	mergeString(&b.Occupation, update.Occupation)
	mergeString(&b.CaseName, update.CaseName)
	mergeString(&b.CaseType, update.CaseType)
	mergeString(&b.IdentityType, update.IdentityType)
	mergeString(&b.PersonType, update.PersonType)
	mergeString(&b.MaritalStatus, update.MaritalStatus)
	mergeString(&b.ChildrenInfo, update.ChildrenInfo)
	mergeInt(&b.CriminalRecord, update.CriminalRecord)
	mergeString(&b.HealthStatus, update.HealthStatus)
	mergeString(&b.PhoneNumber, update.PhoneNumber)
	mergeString(&b.Domicile, update.Domicile)
}

// Attachment is the single binary image a draft may carry.
type Attachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

func (a *Attachment) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}

// AssessmentDraft is the user-populated, not yet submitted assessment.
type AssessmentDraft struct {
	BasicInfo  BasicInfo      `json:"basic_info"`
	ScaleType  string         `json:"scale_type,omitempty"`
	Answers    map[int]string `json:"answers"`
	Attachment *Attachment    `json:"attachment,omitempty"`
}

func NewAssessmentDraft() *AssessmentDraft {
	return &AssessmentDraft{
		Answers: make(map[int]string),
	}
}

// Reset returns every field to its initial empty value.
func (d *AssessmentDraft) Reset() {
	d.BasicInfo = BasicInfo{}
	d.ScaleType = ""
	d.Answers = make(map[int]string)
	d.Attachment = nil
}

func (d *AssessmentDraft) SetAnswer(ordinal int, answer string) {
	if d.Answers == nil {
		d.Answers = make(map[int]string)
	}
	d.Answers[ordinal] = answer
}

// SetAttachment replaces the attachment wholesale; nil removes it.
func (d *AssessmentDraft) SetAttachment(attachment *Attachment) {
	if attachment == nil {
		d.Attachment = nil
		return
	}
	data := make([]byte, len(attachment.Data))
	copy(data, attachment.Data)
	d.Attachment = &Attachment{
		FileName:    attachment.FileName,
		ContentType: attachment.ContentType,
		Data:        data,
	}
}

// Clone returns a deep copy so the caller can read it without holding the
// owner's lock.
func (d *AssessmentDraft) Clone() *AssessmentDraft {
	clone := &AssessmentDraft{
		BasicInfo: d.BasicInfo,
		ScaleType: d.ScaleType,
		Answers:   make(map[int]string, len(d.Answers)),
	}
	clone.BasicInfo.Age = cloneInt(d.BasicInfo.Age)
	clone.BasicInfo.CriminalRecord = cloneInt(d.BasicInfo.CriminalRecord)
	for ordinal, answer := range d.Answers {
		clone.Answers[ordinal] = answer
	}
	clone.SetAttachment(d.Attachment)
	return clone
}

func formatOptionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func mergeString(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func mergeInt(target **int, value *int) {
	if value != nil {
		*target = cloneInt(value)
	}
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
