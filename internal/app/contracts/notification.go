package contracts

import (
	"context"
	"medbook-service/internal/app/models"
)

type NotificationPublisher interface {
	Publish(ctx context.Context, event *models.NotificationEvent) error
}
