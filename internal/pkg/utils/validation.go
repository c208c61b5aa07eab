package utils

import (
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/slots"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	numericRegex = regexp.MustCompile(constvars.RegexNumeric)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("digits", validateDigits)
	validate.RegisterValidation("status", validateAppointmentStatus)
	validate.RegisterValidation("date", validateDate)
	validate.RegisterValidation("clock", validateClock)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDigits(fl validator.FieldLevel) bool {
	return numericRegex.MatchString(fl.Field().String())
}

func validateAppointmentStatus(fl validator.FieldLevel) bool {
	return IsAppointmentStatus(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	return slots.IsDate(fl.Field().String())
}

func validateClock(fl validator.FieldLevel) bool {
	return slots.IsClock(fl.Field().String())
}

func IsAppointmentStatus(status string) bool {
	return slices.Contains(constvars.AppointmentStatuses, status)
}

func IsSupportedLanguage(language string) bool {
	return language == constvars.LanguagePortuguese || language == constvars.LanguageEnglish
}
