package gateway

import (
	"context"
	"net/url"

	"github.com/ace-ify/Blud-Dona/domain"
	gatewayInfra "github.com/ace-ify/Blud-Dona/internal/infrastructure/gateway"
	"github.com/ace-ify/Blud-Dona/repository"
)

type notificationRepository struct {
	client *gatewayInfra.Client
}

// NewNotificationRepository instantiates a gateway-backed notification repository.
func NewNotificationRepository(client *gatewayInfra.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	if userID == "" {
		return nil, domain.ErrInvalidPayload
	}
	var notifications []domain.Notification
	path := "/api/v1/users/" + url.PathEscape(userID) + "/notifications"
	if err := r.client.Get(ctx, path, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
