package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Đã có lỗi xảy ra, vui lòng thử lại sau"
	ErrClientCannotProcessRequest          = "Không thể xử lý yêu cầu"
	ErrClientServerLongRespond             = "Máy chủ phản hồi quá lâu, vui lòng thử lại"
	ErrClientNotAuthorized                 = "Bạn chưa được xác thực"
	ErrClientNotLoggedIn                   = "Phiên đăng nhập không hợp lệ hoặc đã hết hạn"
	ErrClientForbidden                     = "Bạn không có quyền thực hiện thao tác này"
	ErrClientInvalidEmailOrPassword        = "Email hoặc mật khẩu không đúng"
	ErrClientEmailAlreadyExists            = "Email đã được sử dụng"
	ErrClientInvalidImageFormat            = "Định dạng hoặc kích thước ảnh không hợp lệ"
	ErrClientTooManyRequests               = "Bạn thao tác quá nhanh, vui lòng thử lại sau"

	ErrClientUserNotFound                  = "Không tìm thấy người dùng"
	ErrClientDoctorNotFound                = "Không tìm thấy bác sĩ"
	ErrClientDoctorServiceNotFound         = "Không tìm thấy dịch vụ của bác sĩ"
	ErrClientDoctorNotWorkingThisDay       = "Bác sĩ không làm việc vào ngày này"
	ErrClientAppointmentNotFound           = "Không tìm thấy lịch hẹn"
	ErrClientInvalidStatusTransition       = "Không thể chuyển trạng thái lịch hẹn từ %s sang %s"
	ErrClientSlotAlreadyBooked             = "Khung giờ này đã có người đặt"
	ErrClientSlotOutsideWorkingHours       = "Khung giờ đặt lịch nằm ngoài giờ làm việc của bác sĩ"
	ErrClientBookingDateInPast             = "Không thể đặt lịch cho ngày trong quá khứ"
	ErrClientBookingInProgress             = "Khung giờ đang được người khác đặt, vui lòng thử lại"
	ErrClientPatientProfileNotFound        = "Không tìm thấy hồ sơ bệnh nhân"
	ErrClientPatientProfileHasAppointments = "Không thể xóa hồ sơ bệnh nhân đã có lịch hẹn"
	ErrClientPatientProfileRequired        = "Vui lòng chọn hồ sơ bệnh nhân hoặc nhập thông tin bệnh nhân"
	ErrClientInvalidQueryParam             = "Tham số %s không hợp lệ"
)

// Developer-facing messages.
const (
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevURLParamIDValidationFailed = "URL param %s validation failed"
	ErrDevInvalidQueryParam          = "invalid query param %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevMissingRequestID           = "request id not found in context"
	ErrDevMissingSessionData         = "session data not found in context"
	ErrDevCannotParseMultipartForm   = "failed to parse multipart form"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevCannotUnmarshalJSON        = "failed to unmarshal JSON"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevAuthTokenMissing           = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevAuthSigningMethod          = "unexpected token signing method"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevEmailAlreadyExists         = "email already exists"
	ErrDevSessionNotFound            = "session not found"
	ErrDevForbidden                  = "caller is not allowed to perform this action"
	ErrDevTooManyRequests            = "rate limit exceeded for %s"

	ErrDevUserNotFound                  = "user not found"
	ErrDevDoctorNotFound                = "doctor not found"
	ErrDevDoctorServiceNotFound         = "doctor service not found"
	ErrDevDoctorNotWorkingThisDay       = "no working hours configured for weekday %s"
	ErrDevAppointmentNotFound           = "appointment not found"
	ErrDevInvalidStatusTransition       = "invalid appointment status transition %s -> %s"
	ErrDevSlotAlreadyBooked             = "requested slot overlaps an existing appointment"
	ErrDevSlotOutsideWorkingHours       = "requested slot is outside the working window"
	ErrDevBookingDateInPast             = "booking date is in the past"
	ErrDevBookingInProgress             = "booking lock is held by another request"
	ErrDevPatientProfileNotFound        = "patient profile not found"
	ErrDevPatientProfileHasAppointments = "patient profile is referenced by %d appointments"
	ErrDevPatientProfileRequired        = "either patient_profile_id or patient is required"

	ErrDevPostgresDBInsertData = "failed to insert data into postgres"
	ErrDevPostgresDBFindData   = "failed to find data in postgres"
	ErrDevPostgresDBUpdateData = "failed to update data in postgres"
	ErrDevPostgresDBDeleteData = "failed to delete data from postgres"
	ErrDevPostgresDBBeginTx    = "failed to begin postgres transaction"
	ErrDevPostgresDBCommitTx   = "failed to commit postgres transaction"
	ErrDevBuildSQLQuery        = "failed to build SQL query"
	ErrDevRedisSet             = "failed to set redis key"
	ErrDevRedisGet             = "failed to get redis key %s"
	ErrDevRedisDelete          = "failed to delete redis key"
	ErrDevRedisIncrement       = "failed to increment redis key"
	ErrDevRedisUnlock          = "failed to release redis lock"
	ErrDevMinioCreateObject    = "failed to create object in bucket %s"
	ErrDevMinioPresignURL      = "failed to presign object url in bucket %s"
	ErrDevRabbitMQPublish      = "failed to publish message to queue %s"
	ErrDevInvalidWorkingHours  = "invalid working hours configuration"
	ErrDevServerProcess        = "failed to process request"
)

var CustomValidationErrorMessages = map[string]string{
	"required": "là bắt buộc",
	"email":    "phải là email hợp lệ",
	"min":      "phải có ít nhất %s ký tự",
	"max":      "không được vượt quá %s ký tự",
	"oneof":    "phải là một trong các giá trị: %s",
	"uuid4":    "phải là UUID hợp lệ",
	"uuid":     "phải là UUID hợp lệ",
	"gt":       "phải lớn hơn %s",
	"iso_date": "phải có định dạng YYYY-MM-DD",
	"hhmm":     "phải có định dạng HH:MM",
	"password": "phải có ít nhất 8 ký tự, một chữ in hoa và một ký tự đặc biệt",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
}
