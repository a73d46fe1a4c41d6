package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/ace-ify/Blud-Dona/domain"
	appValidator "github.com/ace-ify/Blud-Dona/internal/validator"
	"github.com/ace-ify/Blud-Dona/repository"
)

// Form is the profile-edit schema.
type Form struct {
	Name      string `json:"name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Address   string `json:"address" validate:"omitempty,max=200"`
	City      string `json:"city" validate:"omitempty,max=100"`
	State     string `json:"state" validate:"omitempty,max=100"`
	Zip       string `json:"zip" validate:"omitempty,max=20"`
	Country   string `json:"country" validate:"omitempty,max=100"`
	BloodType string `json:"blood_type" validate:"omitempty,blood_type"`
}

// UseCase is the profile-edit form controller.
type UseCase struct {
	users     repository.UserRepository
	validator *appValidator.Validator
	logger    *zap.Logger
}

func New(users repository.UserRepository, v *appValidator.Validator, logger *zap.Logger) *UseCase {
	if v == nil {
		v = appValidator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:     users,
		validator: v,
		logger:    logger,
	}
}

// Submit validates the form, merges it into the existing user and forwards
// exactly one update call carrying only the schema's fields. Address edits
// keep the stored coordinates. The cached session user is left as-is, so
// other screens may serve the pre-update snapshot until the cache expires.
func (uc *UseCase) Submit(ctx context.Context, user *domain.User, form Form) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.Validate(form); err != nil {
		return nil, err
	}

	patch := repository.UserPatch{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		BloodType: domain.BloodType(form.BloodType),
	}
	if location := mergedLocation(user, form); location != nil {
		patch.Location = location
	}

	updated, err := uc.users.Update(ctx, user.ID, patch)
	if err != nil {
		uc.logger.Error("profile update failed",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return nil, err
	}
	return updated, nil
}

// mergedLocation overlays the form's address fields on the user's stored
// location, preserving coordinates. Nil means the patch carries no location.
func mergedLocation(user *domain.User, form Form) *domain.Location {
	location := domain.Location{}
	if user.Location != nil {
		location = *user.Location
	}
	location.Address = form.Address
	location.City = form.City
	location.State = form.State
	location.Zip = form.Zip
	location.Country = form.Country

	if user.Location == nil && location.IsZero() {
		return nil
	}
	return &location
}
