package constvars

const (
	LoginSuccessMessage    = "Đăng nhập thành công"
	LogoutSuccessMessage   = "Đăng xuất thành công"
	RegisterSuccessMessage = "Đăng ký tài khoản thành công"

	GetProfileSuccessMessage    = "Lấy thông tin hồ sơ thành công"
	UpdateProfileSuccessMessage = "Cập nhật hồ sơ thành công"
	UploadAvatarSuccessMessage  = "Tải ảnh đại diện thành công"

	GetAppointmentsSuccessMessage       = "Lấy danh sách lịch hẹn thành công"
	GetAppointmentSuccessMessage        = "Lấy thông tin lịch hẹn thành công"
	UpdateAppointmentSuccessMessage     = "Cập nhật lịch hẹn thành công"
	DeleteAppointmentSuccessMessage     = "Xóa lịch hẹn thành công"
	CancelAppointmentSuccessMessage     = "Hủy lịch hẹn thành công"
	CompleteAppointmentSuccessMessage   = "Hoàn thành lịch hẹn thành công"
	CreateAppointmentSuccessMessage     = "Đặt lịch hẹn thành công"
	GetDoctorAvailabilitySuccessMessage = "Lấy lịch làm việc của bác sĩ thành công"

	GetPatientProfilesSuccessMessage   = "Lấy danh sách hồ sơ bệnh nhân thành công"
	GetPatientProfileSuccessMessage    = "Lấy hồ sơ bệnh nhân thành công"
	CreatePatientProfileSuccessMessage = "Tạo hồ sơ bệnh nhân thành công"
	UpdatePatientProfileSuccessMessage = "Cập nhật hồ sơ bệnh nhân thành công"
	DeletePatientProfileSuccessMessage = "Xóa hồ sơ bệnh nhân thành công"

	GetClinicsSuccessMessage       = "Lấy danh sách phòng khám thành công"
	GetDoctorsSuccessMessage       = "Lấy danh sách bác sĩ thành công"
	GetDoctorSuccessMessage        = "Lấy thông tin bác sĩ thành công"
	GetServicesSuccessMessage      = "Lấy danh sách dịch vụ thành công"
	GetDoctorServiceSuccessMessage = "Lấy thông tin dịch vụ của bác sĩ thành công"
)
