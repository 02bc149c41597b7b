package models

import (
	"medbook-service/internal/pkg/dto/responses"
	"medbook-service/internal/pkg/utils"
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	PhoneNumber  string
	Gender       string
	DateOfBirth  *time.Time
	Address      string
	AvatarObject string
	Role         string
	DoctorID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) ConvertIntoResponse(avatarURL string) responses.UserProfile {
	response := responses.UserProfile{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Gender:      u.Gender,
		Address:     u.Address,
		AvatarURL:   avatarURL,
		Role:        u.Role,
		DoctorID:    u.DoctorID,
	}
	if u.DateOfBirth != nil {
		response.DateOfBirth = utils.FormatDate(*u.DateOfBirth)
	}
	return response
}
