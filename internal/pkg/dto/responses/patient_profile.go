package responses

import "time"

type PatientProfile struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	Relationship    string    `json:"relationship"`
	Gender          string    `json:"gender,omitempty"`
	DateOfBirth     string    `json:"date_of_birth,omitempty"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	InsuranceNumber string    `json:"insurance_number,omitempty"`
	Address         string    `json:"address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
