package repository

import (
	"context"

	"github.com/ace-ify/Blud-Dona/domain"
)

type RequestRepository interface {
	List(ctx context.Context) ([]domain.BloodRequest, error)
	Create(ctx context.Context, request *domain.BloodRequest) (*domain.BloodRequest, error)
}
