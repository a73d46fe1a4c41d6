package repository

import (
	"context"

	"github.com/ace-ify/Blud-Dona/domain"
)

type NotificationRepository interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
}
