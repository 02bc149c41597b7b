package queries

const (
	userColumns = `
		id, email, password_hash, full_name, COALESCE(phone_number, ''), COALESCE(gender, ''),
		date_of_birth, COALESCE(address, ''), COALESCE(avatar_object, ''), role,
		COALESCE(doctor_id::text, ''), created_at, updated_at
	`

	FindUserByIDQuery = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	FindUserByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	InsertUserQuery = `
		INSERT INTO users (id, email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	UpdateUserQuery = `
		UPDATE users
		SET full_name = $1, phone_number = NULLIF($2, ''), gender = NULLIF($3, ''),
			date_of_birth = $4, address = NULLIF($5, ''), updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	UpdateUserAvatarQuery = `
		UPDATE users
		SET avatar_object = $1, updated_at = NOW()
		WHERE id = $2
	`
)
