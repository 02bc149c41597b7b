package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingUserIDKey             = "user_id"
	LoggingRoleKey               = "role"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingDoctorServiceIDKey    = "doctor_service_id"
	LoggingPatientProfileIDKey   = "patient_profile_id"
	LoggingDateKey               = "date"
	LoggingCountKey              = "count"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingQueueNameKey          = "queue_name"
	LoggingEventKey              = "event"
	LoggingSQLKey                = "sql"
)
