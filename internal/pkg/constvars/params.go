package constvars

const (
	URLParamID = "id"
)

const (
	QueryParamPage            = "page"
	QueryParamLimit           = "limit"
	QueryParamStatus          = "status"
	QueryParamPaymentStatus   = "paymentStatus"
	QueryParamDoctorID        = "doctorId"
	QueryParamPatientID       = "patientId"
	QueryParamDateFrom        = "dateFrom"
	QueryParamDateTo          = "dateTo"
	QueryParamDoctorServiceID = "doctorServiceId"
	QueryParamDate            = "date"
	QueryParamClinicID        = "clinicId"
)

const (
	FormFieldAvatarFile = "file"
)
