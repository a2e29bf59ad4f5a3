package responses

import "psychology-assessment-client/internal/app/models"

type Identity struct {
	Authenticated bool         `json:"authenticated"`
	Subject       string       `json:"subject,omitempty"`
	User          *models.User `json:"user,omitempty"`
}
