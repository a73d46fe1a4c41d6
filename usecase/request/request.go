package request

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ace-ify/Blud-Dona/domain"
	appValidator "github.com/ace-ify/Blud-Dona/internal/validator"
	"github.com/ace-ify/Blud-Dona/repository"
	"github.com/ace-ify/Blud-Dona/usecase/view"
)

// Form is the request-creation schema. ExpiresAt accepts any well-formed
// RFC3339 timestamp; the earliest-useful bound (tomorrow) is surfaced to
// the client as an input hint only.
type Form struct {
	BloodType string `json:"blood_type" validate:"required,blood_type"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=10"`
	Urgency   string `json:"urgency" validate:"required,urgency"`
	Notes     string `json:"notes" validate:"omitempty,max=500"`
	ExpiresAt string `json:"expires_at" validate:"omitempty"`
}

// UseCase is the request-creation form controller.
type UseCase struct {
	requests  repository.RequestRepository
	validator *appValidator.Validator
	logger    *zap.Logger
}

func New(requests repository.RequestRepository, v *appValidator.Validator, logger *zap.Logger) *UseCase {
	if v == nil {
		v = appValidator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		requests:  requests,
		validator: v,
		logger:    logger,
	}
}

// Submit validates the form and forwards exactly one create call to the
// gateway. Invalid input returns FieldErrors without touching the gateway;
// a gateway failure is returned as-is so the client keeps its form state.
func (uc *UseCase) Submit(ctx context.Context, user *domain.User, form Form) (*domain.BloodRequest, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.Validate(form); err != nil {
		return nil, err
	}

	var expires *time.Time
	if form.ExpiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, form.ExpiresAt)
		if err != nil {
			return nil, appValidator.FieldErrors{"expires_at": "must be an RFC3339 timestamp"}
		}
		expires = &parsed
	}

	payload := &domain.BloodRequest{
		RequesterID:   user.ID,
		RequesterName: user.Name,
		BloodType:     domain.BloodType(form.BloodType),
		Quantity:      form.Quantity,
		Urgency:       domain.Urgency(form.Urgency),
		Status:        domain.RequestPending,
		Location:      user.RequestLocation(),
		Notes:         form.Notes,
		ExpiresAt:     expires,
	}

	created, err := uc.requests.Create(ctx, payload)
	if err != nil {
		uc.logger.Error("blood request creation failed",
			zap.String("requester_id", user.ID),
			zap.Error(err),
		)
		return nil, err
	}
	return created, nil
}

// Visible returns the request listing for the user's role, the screen the
// client navigates to after a successful submit.
func (uc *UseCase) Visible(ctx context.Context, user *domain.User) ([]domain.BloodRequest, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	requests, err := uc.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.For(user.Role).VisibleRequests(user, requests), nil
}
