package requests

type CreatePatientProfile struct {
	FullName        string `json:"full_name" validate:"required,min=2,max=100"`
	Relationship    string `json:"relationship" validate:"required,oneof=self child parent spouse relative other"`
	Gender          string `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth     string `json:"date_of_birth" validate:"omitempty,iso_date"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	InsuranceNumber string `json:"insurance_number" validate:"omitempty,max=50"`
	Address         string `json:"address" validate:"omitempty,max=255"`
}

type UpdatePatientProfile struct {
	FullName        *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Relationship    *string `json:"relationship" validate:"omitempty,oneof=self child parent spouse relative other"`
	Gender          *string `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth     *string `json:"date_of_birth" validate:"omitempty,iso_date"`
	PhoneNumber     *string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	InsuranceNumber *string `json:"insurance_number" validate:"omitempty,max=50"`
	Address         *string `json:"address" validate:"omitempty,max=255"`
}
