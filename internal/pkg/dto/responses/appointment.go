package responses

import "time"

type Appointment struct {
	ID               string    `json:"id"`
	DoctorServiceID  string    `json:"doctor_service_id"`
	DoctorID         string    `json:"doctor_id"`
	DoctorName       string    `json:"doctor_name,omitempty"`
	ServiceName      string    `json:"service_name,omitempty"`
	ClinicName       string    `json:"clinic_name,omitempty"`
	PatientProfileID string    `json:"patient_profile_id"`
	PatientName      string    `json:"patient_name,omitempty"`
	Date             string    `json:"date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	Price            int64     `json:"price"`
	Note             string    `json:"note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type FindAllAppointments struct {
	Appointments []Appointment
	Total        int
	Page         int
	Limit        int
}

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DoctorAvailability struct {
	DoctorServiceID string      `json:"doctor_service_id"`
	DoctorID        string      `json:"doctor_id"`
	Date            string      `json:"date"`
	WorkingHours    TimeRange   `json:"working_hours"`
	Occupied        []TimeRange `json:"occupied"`
}
