package repository

import (
	"context"

	"github.com/ace-ify/Blud-Dona/domain"
)

// UserPatch carries the partial fields accepted by the gateway's user
// update operation. Zero-valued fields are omitted from the wire payload.
type UserPatch struct {
	Name      string           `json:"name,omitempty"`
	Email     string           `json:"email,omitempty"`
	Phone     string           `json:"phone,omitempty"`
	BloodType domain.BloodType `json:"blood_type,omitempty"`
	Location  *domain.Location `json:"location,omitempty"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
}
