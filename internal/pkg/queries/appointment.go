package queries

const (
	TableAppointments = "appointments"

	FindAppointmentByIDQuery = `
		SELECT a.id, a.doctor_service_id, a.doctor_id, a.patient_profile_id, a.booked_by,
			a.appointment_date, to_char(a.start_time, 'HH24:MI'), s.duration_minutes,
			a.status, a.payment_status, a.price, COALESCE(a.note, ''), a.created_at, a.updated_at,
			d.full_name, s.name, c.name, p.full_name, p.user_id
		FROM appointments a
		JOIN doctor_services ds ON ds.id = a.doctor_service_id
		JOIN services s ON s.id = ds.service_id
		JOIN doctors d ON d.id = a.doctor_id
		JOIN clinics c ON c.id = d.clinic_id
		JOIN patient_profiles p ON p.id = a.patient_profile_id
		WHERE a.id = $1
	`

	// Booked slots span every service of the doctor, each with its own duration.
	FindBookedSlotsQuery = `
		SELECT a.id, to_char(a.start_time, 'HH24:MI'), s.duration_minutes, a.status
		FROM appointments a
		JOIN doctor_services ds ON ds.id = a.doctor_service_id
		JOIN services s ON s.id = ds.service_id
		WHERE a.doctor_id = $1 AND a.appointment_date = $2 AND a.status <> 'cancelled'
		ORDER BY a.start_time ASC
	`

	CountAppointmentsByPatientProfileIDQuery = `SELECT COUNT(*) FROM appointments WHERE patient_profile_id = $1`

	InsertAppointmentQuery = `
		INSERT INTO appointments (id, doctor_service_id, doctor_id, patient_profile_id, booked_by,
			appointment_date, start_time, status, payment_status, price, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''))
		RETURNING created_at, updated_at
	`

	DeleteAppointmentQuery = `DELETE FROM appointments WHERE id = $1`

	// PostgresUniqueViolation is the SQLSTATE raised by the slot index.
	PostgresUniqueViolation = "23505"

	// PostgresForeignKeyViolation is raised when a deleted row is still referenced.
	PostgresForeignKeyViolation = "23503"
)
