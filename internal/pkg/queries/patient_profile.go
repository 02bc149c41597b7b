package queries

const (
	patientProfileColumns = `
		id, user_id, full_name, relationship, COALESCE(gender, ''), date_of_birth,
		COALESCE(phone_number, ''), COALESCE(insurance_number, ''), COALESCE(address, ''),
		created_at, updated_at
	`

	FindPatientProfilesByUserIDQuery = `
		SELECT ` + patientProfileColumns + `
		FROM patient_profiles
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	FindPatientProfileByIDQuery = `SELECT ` + patientProfileColumns + ` FROM patient_profiles WHERE id = $1`

	InsertPatientProfileQuery = `
		INSERT INTO patient_profiles (id, user_id, full_name, relationship, gender, date_of_birth, phone_number, insurance_number, address)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
		RETURNING created_at, updated_at
	`

	UpdatePatientProfileQuery = `
		UPDATE patient_profiles
		SET full_name = $1, relationship = $2, gender = NULLIF($3, ''), date_of_birth = $4,
			phone_number = NULLIF($5, ''), insurance_number = NULLIF($6, ''), address = NULLIF($7, ''),
			updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	DeletePatientProfileQuery = `DELETE FROM patient_profiles WHERE id = $1`
)
