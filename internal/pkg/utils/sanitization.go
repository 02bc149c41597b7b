package utils

import (
	"medbook-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterRequest(request *requests.Register) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.FullName = strings.TrimSpace(request.FullName)
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeUpdateProfileRequest(request *requests.UpdateProfile) {
	trimPtr(request.FullName)
	trimPtr(request.PhoneNumber)
	trimPtr(request.Address)
	lowerPtr(request.Gender)
}

func SanitizeCreatePatientProfileRequest(request *requests.CreatePatientProfile) {
	request.FullName = strings.TrimSpace(request.FullName)
	request.Relationship = strings.ToLower(strings.TrimSpace(request.Relationship))
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.InsuranceNumber = strings.TrimSpace(request.InsuranceNumber)
	request.Address = strings.TrimSpace(request.Address)
}

func SanitizeUpdatePatientProfileRequest(request *requests.UpdatePatientProfile) {
	trimPtr(request.FullName)
	lowerPtr(request.Relationship)
	lowerPtr(request.Gender)
	trimPtr(request.PhoneNumber)
	trimPtr(request.InsuranceNumber)
	trimPtr(request.Address)
}

func SanitizeUpdateAppointmentRequest(request *requests.UpdateAppointment) {
	lowerPtr(request.Status)
	lowerPtr(request.PaymentStatus)
	trimPtr(request.Note)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func lowerPtr(s *string) {
	if s != nil {
		*s = strings.ToLower(strings.TrimSpace(*s))
	}
}
