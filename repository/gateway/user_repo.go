package gateway

import (
	"context"
	"net/url"

	"github.com/ace-ify/Blud-Dona/domain"
	gatewayInfra "github.com/ace-ify/Blud-Dona/internal/infrastructure/gateway"
	"github.com/ace-ify/Blud-Dona/repository"
)

type userRepository struct {
	client *gatewayInfra.Client
}

// NewUserRepository instantiates a gateway-backed user repository. It also
// serves the session provider contract: resolving a user id to its record.
func NewUserRepository(client *gatewayInfra.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrInvalidPayload
	}
	var user domain.User
	if err := r.client.Get(ctx, r.path(id), &user); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id string, patch repository.UserPatch) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrInvalidPayload
	}
	var updated domain.User
	if err := r.client.Patch(ctx, r.path(id), patch, &updated); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *userRepository) path(id string) string {
	return "/api/v1/users/" + url.PathEscape(id)
}
