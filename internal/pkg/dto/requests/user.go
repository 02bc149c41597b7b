package requests

type UpdateProfile struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,iso_date"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

type UploadAvatar struct {
	Data        []byte
	Extension   string
	ContentType string
}
