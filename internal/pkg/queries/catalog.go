package queries

const (
	FindAllClinicsQuery = `
		SELECT id, name, COALESCE(address, ''), COALESCE(phone_number, '')
		FROM clinics
		ORDER BY name ASC
	`

	doctorColumns = `
		d.id, d.clinic_id, c.name, d.full_name, COALESCE(d.specialty, ''), COALESCE(d.description, '')
		FROM doctors d
		JOIN clinics c ON c.id = d.clinic_id
	`

	FindAllDoctorsQuery = `SELECT ` + doctorColumns + ` ORDER BY d.full_name ASC`

	FindDoctorsByClinicIDQuery = `SELECT ` + doctorColumns + ` WHERE d.clinic_id = $1 ORDER BY d.full_name ASC`

	FindDoctorByIDQuery = `SELECT ` + doctorColumns + ` WHERE d.id = $1`

	FindAllServicesQuery = `
		SELECT id, name, COALESCE(description, ''), duration_minutes, price
		FROM services
		ORDER BY name ASC
	`

	doctorServiceColumns = `
		ds.id, ds.doctor_id, d.full_name, d.clinic_id, ds.price,
		s.id, s.name, COALESCE(s.description, ''), s.duration_minutes, s.price
		FROM doctor_services ds
		JOIN doctors d ON d.id = ds.doctor_id
		JOIN services s ON s.id = ds.service_id
	`

	FindDoctorServiceByIDQuery = `SELECT ` + doctorServiceColumns + ` WHERE ds.id = $1`

	FindDoctorServicesByDoctorIDQuery = `SELECT ` + doctorServiceColumns + ` WHERE ds.doctor_id = $1 ORDER BY s.name ASC`

	FindWorkingHoursByDoctorServiceIDQuery = `
		SELECT doctor_service_id, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM doctor_service_working_hours
		WHERE doctor_service_id = $1
		ORDER BY weekday ASC
	`
)
