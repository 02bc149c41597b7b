package requests

type FindAllDoctors struct {
	ClinicID string `validate:"omitempty,uuid"`
}
