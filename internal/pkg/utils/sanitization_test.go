package utils

import (
	"pilates-vision-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateStudentRequest(t *testing.T) {
	request := &requests.CreateStudent{
		Name:        "  Ana Souza ",
		TaxIDCPF:    "123.456.789-01",
		DateOfBirth: " 1990-04-12 ",
		Phone:       "(11) 99999-0000",
	}

	SanitizeCreateStudentRequest(request)

	assert.Equal(t, "Ana Souza", request.Name)
	assert.Equal(t, "12345678901", request.TaxIDCPF, "cpf punctuation should be dropped")
	assert.Equal(t, "1990-04-12", request.DateOfBirth)
	assert.Equal(t, "11999990000", request.Phone)
}

func TestSanitizeUpdateStudentRequest(t *testing.T) {
	t.Run("Only provided fields are touched", func(t *testing.T) {
		name := "  Bia  "
		request := &requests.UpdateStudent{Name: &name}

		SanitizeUpdateStudentRequest(request)

		assert.Equal(t, "Bia", *request.Name)
		assert.Nil(t, request.TaxIDCPF)
		assert.Nil(t, request.Phone)
	})

	t.Run("CPF punctuation", func(t *testing.T) {
		cpf := "987.654.321-00"
		request := &requests.UpdateStudent{TaxIDCPF: &cpf}

		SanitizeUpdateStudentRequest(request)

		assert.Equal(t, "98765432100", *request.TaxIDCPF)
	})
}

func TestSanitizeInstructorRequests(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.CreateInstructor{Email: "  CARLA@Studio.COM  ", Phone: "+55 11 98888-7777"}

		SanitizeCreateInstructorRequest(request)

		assert.Equal(t, "carla@studio.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "5511988887777", request.Phone)
	})

	t.Run("Update email", func(t *testing.T) {
		email := " Team@Studio.com"
		request := &requests.UpdateInstructor{Email: &email}

		SanitizeUpdateInstructorRequest(request)

		assert.Equal(t, "team@studio.com", *request.Email)
	})
}

func TestSanitizeAppointmentRequests(t *testing.T) {
	request := &requests.CreateAppointment{StartTime: " 2024-06-03T09:00:00", Status: " Booked "}

	SanitizeCreateAppointmentRequest(request)

	assert.Equal(t, "2024-06-03T09:00:00", request.StartTime)
	assert.Equal(t, "booked", request.Status)

	status := "COMPLETED"
	update := &requests.UpdateAppointment{Status: &status}
	SanitizeUpdateAppointmentRequest(update)
	assert.Equal(t, "completed", *update.Status)
}
