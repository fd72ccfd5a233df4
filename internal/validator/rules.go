package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/models"
)

// registerCustomRules installs the domain-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-entity-kind", validateEntityKind)
	mustRegister("is-vacancy-status", validateVacancyStatus)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-invitation-status", validateInvitationStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	return auth.ValidateRole(auth.Role(value)) == nil
}

func validateEntityKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidEntityKind(models.EntityKind(value))
}

func validateVacancyStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.VacancyStatus(value) {
	case models.VacancyStatusOpen, models.VacancyStatusClosed:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusDeclined:
		return true
	default:
		return false
	}
}

func validateInvitationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.InvitationStatus(value) {
	case models.InvitationStatusPending, models.InvitationStatusAccepted, models.InvitationStatusDeclined:
		return true
	default:
		return false
	}
}
