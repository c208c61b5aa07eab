package utils

import (
	"pilates-vision-service/internal/pkg/slots"
	"time"
)

// CalculateAge returns the completed years between dateOfBirth (YYYY-MM-DD)
// and now. It returns -1 for an unparsable date.
func CalculateAge(dateOfBirth string, now time.Time) int {
	birth, err := slots.ParseDate(dateOfBirth)
	if err != nil {
		return -1
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
