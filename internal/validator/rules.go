package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/ace-ify/Blud-Dona/domain"
)

// registerRules installs the domain-specific validation tags. Registration
// failures abort startup.
func registerRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register validation tag %q: %v", tag, err)
		}
	}

	mustRegister("blood_type", validateBloodType)
	mustRegister("urgency", validateUrgency)
}

func validateBloodType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// emptiness is the concern of the required tag
		return true
	}
	return domain.BloodType(value).Valid()
}

func validateUrgency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return domain.Urgency(value).Valid()
}
