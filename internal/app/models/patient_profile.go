package models

import (
	"medbook-service/internal/pkg/dto/responses"
	"medbook-service/internal/pkg/utils"
	"time"
)

type PatientProfile struct {
	ID              string
	UserID          string
	FullName        string
	Relationship    string
	Gender          string
	DateOfBirth     *time.Time
	PhoneNumber     string
	InsuranceNumber string
	Address         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p *PatientProfile) ConvertIntoResponse() responses.PatientProfile {
	response := responses.PatientProfile{
		ID:              p.ID,
		FullName:        p.FullName,
		Relationship:    p.Relationship,
		Gender:          p.Gender,
		PhoneNumber:     p.PhoneNumber,
		InsuranceNumber: p.InsuranceNumber,
		Address:         p.Address,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.DateOfBirth != nil {
		response.DateOfBirth = utils.FormatDate(*p.DateOfBirth)
	}
	return response
}
