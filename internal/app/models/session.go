package models

import (
	"medbook-service/internal/pkg/constvars"
	"time"
)

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	DoctorID  string    `json:"doctor_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.RoleAdmin
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.RoleDoctor
}

func (s *Session) IsPatient() bool {
	return s.Role == constvars.RolePatient
}
