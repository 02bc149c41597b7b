package responses

type Clinic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int64  `json:"price"`
}

type Doctor struct {
	ID          string          `json:"id"`
	ClinicID    string          `json:"clinic_id"`
	ClinicName  string          `json:"clinic_name,omitempty"`
	FullName    string          `json:"full_name"`
	Specialty   string          `json:"specialty,omitempty"`
	Description string          `json:"description,omitempty"`
	Services    []DoctorService `json:"services,omitempty"`
}

type WorkingHour struct {
	Weekday string `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type DoctorService struct {
	ID           string        `json:"id"`
	DoctorID     string        `json:"doctor_id"`
	DoctorName   string        `json:"doctor_name,omitempty"`
	Service      Service       `json:"service"`
	Price        int64         `json:"price"`
	WorkingHours []WorkingHour `json:"working_hours,omitempty"`
}
