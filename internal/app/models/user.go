package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}

// User is the profile the analysis backend returns for the current credential.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Identity is what the session knows about who is logged in. Subject comes
// from the bearer token claims, User from the profile endpoint.
type Identity struct {
	Subject string `json:"subject,omitempty"`
	User    *User  `json:"user,omitempty"`
}
