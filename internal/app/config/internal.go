package config

import "medbook-service/internal/pkg/utils"

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	Booking  AppBooking
	Metrics  AppMetrics
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	LoginSessionExpiredInHours int
}

type AppJWT struct {
	Secret string
}

type AppMinio struct {
	BucketName                      string
	AvatarMaxUploadSizeInMB         int64
	PreSignedUrlObjectExpiryInHours int
}

type AppRabbitMQ struct {
	NotificationQueue string
}

type AppBooking struct {
	LockExpiryInSeconds    int
	MaxAttemptsPerWindow   int
	AttemptWindowInSeconds int
}

type AppMetrics struct {
	Namespace string
	Path      string
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			LoginSessionExpiredInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "medbook"),
			AvatarMaxUploadSizeInMB:         utils.GetEnvInt64("APP_MINIO_AVATAR_UPLOAD_MAX_SIZE_IN_MB", 2),
			PreSignedUrlObjectExpiryInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "appointment_notifications"),
		},
		Booking: AppBooking{
			LockExpiryInSeconds:    utils.GetEnvInt("APP_BOOKING_LOCK_EXPIRY_IN_SECONDS", 10),
			MaxAttemptsPerWindow:   utils.GetEnvInt("APP_BOOKING_MAX_ATTEMPTS_PER_WINDOW", 10),
			AttemptWindowInSeconds: utils.GetEnvInt("APP_BOOKING_ATTEMPT_WINDOW_IN_SECONDS", 60),
		},
		Metrics: AppMetrics{
			Namespace: utils.GetEnvString("APP_METRICS_NAMESPACE", "medbook"),
			Path:      utils.GetEnvString("APP_METRICS_PATH", "/metrics"),
		},
	}
}
