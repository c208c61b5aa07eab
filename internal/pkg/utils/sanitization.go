package utils

import (
	"pilates-vision-service/internal/pkg/dto/requests"
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

func trimOptional(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

// onlyDigits drops the punctuation people type in CPFs and phone numbers.
func onlyDigits(value string) string {
	return nonDigitRegex.ReplaceAllString(value, "")
}

func SanitizeCreateStudentRequest(input *requests.CreateStudent) {
	input.Name = strings.TrimSpace(input.Name)
	input.TaxIDCPF = onlyDigits(input.TaxIDCPF)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Phone = onlyDigits(input.Phone)
	input.MedicalNotes = strings.TrimSpace(input.MedicalNotes)
	input.Goals = strings.TrimSpace(input.Goals)
}

func SanitizeUpdateStudentRequest(input *requests.UpdateStudent) {
	trimOptional(input.Name)
	trimOptional(input.DateOfBirth)
	trimOptional(input.MedicalNotes)
	trimOptional(input.Goals)
	if input.TaxIDCPF != nil {
		*input.TaxIDCPF = onlyDigits(*input.TaxIDCPF)
	}
	if input.Phone != nil {
		*input.Phone = onlyDigits(*input.Phone)
	}
}

func SanitizeCreateInstructorRequest(input *requests.CreateInstructor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = onlyDigits(input.Phone)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUpdateInstructorRequest(input *requests.UpdateInstructor) {
	trimOptional(input.Name)
	trimOptional(input.Specialty)
	trimOptional(input.Notes)
	if input.Phone != nil {
		*input.Phone = onlyDigits(*input.Phone)
	}
	if input.Email != nil {
		*input.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.StudentID = strings.TrimSpace(input.StudentID)
	input.InstructorID = strings.TrimSpace(input.InstructorID)
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUpdateAppointmentRequest(input *requests.UpdateAppointment) {
	trimOptional(input.StudentID)
	trimOptional(input.InstructorID)
	trimOptional(input.StartTime)
	trimOptional(input.EndTime)
	trimOptional(input.Notes)
	if input.Status != nil {
		*input.Status = strings.ToLower(strings.TrimSpace(*input.Status))
	}
}
