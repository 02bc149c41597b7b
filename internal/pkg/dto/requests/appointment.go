package requests

type CreateAppointment struct {
	DoctorServiceID  string                `json:"doctor_service_id" validate:"required,uuid"`
	Date             string                `json:"date" validate:"required,iso_date"`
	StartTime        string                `json:"start_time" validate:"required,hhmm"`
	PatientProfileID string                `json:"patient_profile_id" validate:"omitempty,uuid"`
	Patient          *CreatePatientProfile `json:"patient" validate:"omitempty"`
	Note             string                `json:"note" validate:"omitempty,max=500"`
}

// UpdateAppointment is a partial update; nil fields are left untouched.
type UpdateAppointment struct {
	Status        *string `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	PaymentStatus *string `json:"payment_status" validate:"omitempty,oneof=unpaid paid refunded"`
	Note          *string `json:"note" validate:"omitempty,max=500"`
}

type FindAllAppointments struct {
	Page          int
	Limit         int
	Status        string `validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	PaymentStatus string `validate:"omitempty,oneof=unpaid paid refunded"`
	DoctorID      string `validate:"omitempty,uuid"`
	PatientID     string `validate:"omitempty,uuid"`
	DateFrom      string `validate:"omitempty,iso_date"`
	DateTo        string `validate:"omitempty,iso_date"`
}

type DoctorAvailability struct {
	DoctorServiceID string `validate:"required,uuid"`
	Date            string `validate:"required,iso_date"`
}
