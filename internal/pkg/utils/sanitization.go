package utils

import (
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)
}

// SanitizeBasicInfo trims every text field so whitespace-only values count
// as not provided.
func SanitizeBasicInfo(input *models.BasicInfo) {
	fields := []*string{
		&input.Name,
		&input.Gender,
		&input.IDCard,
		&input.Occupation,
		&input.CaseName,
		&input.CaseType,
		&input.IdentityType,
		&input.PersonType,
		&input.MaritalStatus,
		&input.ChildrenInfo,
		&input.HealthStatus,
		&input.PhoneNumber,
		&input.Domicile,
	}
	for _, field := range fields {
		*field = strings.TrimSpace(*field)
	}
}

func SanitizeScaleType(scaleType string) string {
	return strings.TrimSpace(scaleType)
}
