package repository

import (
	"context"

	"github.com/ace-ify/Blud-Dona/domain"
)

type AppointmentRepository interface {
	List(ctx context.Context) ([]domain.Appointment, error)
}
