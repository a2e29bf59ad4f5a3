package utils

import (
	"fmt"
	"psychology-assessment-client/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateReportObjectName names the archived artifact of a submission,
// e.g. reports/42/20240101_120000.000000000.json.
func GenerateReportObjectName(submissionID string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("reports/%s/%s.json", submissionID, timestamp)
}
