package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&limit=%d"
	AppDefaultPage         = 1
	AppDefaultPageSize     = 10
	AppMaxPageSize         = 100
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

const (
	RedisSessionKeyPrefix       = "session:"
	RedisBookingLockKeyFormat   = "lock:booking:%s:%s"
	LimiterGroupBookingAttempts = "BOOKING"
)

const (
	ObjectAvatarPrefix = "avatars"
)

var ImageAllowedAvatarFormats = []string{".jpg", ".jpeg", ".png", ".webp"}

// ImageAllowedAvatarContentTypes are matched against the sniffed file content.
var ImageAllowedAvatarContentTypes = []string{"image/jpeg", "image/png", "image/webp"}
