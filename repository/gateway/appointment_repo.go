package gateway

import (
	"context"

	"github.com/ace-ify/Blud-Dona/domain"
	gatewayInfra "github.com/ace-ify/Blud-Dona/internal/infrastructure/gateway"
	"github.com/ace-ify/Blud-Dona/repository"
)

type appointmentRepository struct {
	client *gatewayInfra.Client
}

// NewAppointmentRepository instantiates a gateway-backed appointment repository.
func NewAppointmentRepository(client *gatewayInfra.Client) repository.AppointmentRepository {
	return &appointmentRepository{client: client}
}

func (r *appointmentRepository) List(ctx context.Context) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := r.client.Get(ctx, "/api/v1/appointments", &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
