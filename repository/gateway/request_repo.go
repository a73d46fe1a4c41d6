package gateway

import (
	"context"

	"github.com/ace-ify/Blud-Dona/domain"
	gatewayInfra "github.com/ace-ify/Blud-Dona/internal/infrastructure/gateway"
	"github.com/ace-ify/Blud-Dona/repository"
)

type requestRepository struct {
	client *gatewayInfra.Client
}

// NewRequestRepository instantiates a gateway-backed blood request repository.
func NewRequestRepository(client *gatewayInfra.Client) repository.RequestRepository {
	return &requestRepository{client: client}
}

func (r *requestRepository) List(ctx context.Context) ([]domain.BloodRequest, error) {
	var requests []domain.BloodRequest
	if err := r.client.Get(ctx, "/api/v1/requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) Create(ctx context.Context, request *domain.BloodRequest) (*domain.BloodRequest, error) {
	if request == nil {
		return nil, domain.ErrInvalidPayload
	}
	var created domain.BloodRequest
	if err := r.client.Post(ctx, "/api/v1/requests", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
