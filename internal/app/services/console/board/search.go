package board

import (
	"pilates-vision-service/internal/pkg/dto/responses"
	"strings"
)

const searchResultLimit = 8

// filterStudents matches term case-insensitively against name, tax id and
// phone and keeps the first eight hits. A blank term keeps the first eight students.
func filterStudents(students []responses.Student, term string) []responses.Student {
	term = strings.ToLower(strings.TrimSpace(term))

	result := make([]responses.Student, 0, searchResultLimit)
	for _, student := range students {
		if len(result) == searchResultLimit {
			break
		}
		if term == "" || matchesStudent(student, term) {
			result = append(result, student)
		}
	}
	return result
}

func matchesStudent(student responses.Student, term string) bool {
	return strings.Contains(strings.ToLower(student.Name), term) ||
		strings.Contains(strings.ToLower(student.TaxIDCPF), term) ||
		strings.Contains(strings.ToLower(student.Phone), term)
}
