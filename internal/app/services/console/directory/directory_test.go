package directory

import (
	"pilates-vision-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	students := []responses.Student{{ID: "s1", Name: "Ana"}}
	instructors := []responses.Instructor{{ID: "i1", Name: "Bia"}}

	t.Run("Indexes appointments by minute precision slot key", func(t *testing.T) {
		appointments := []responses.Appointment{
			{ID: "a1", StudentID: "s1", InstructorID: "i1", StartTime: "2024-06-03T09:00:00", Status: "booked"},
		}

		dir := Build(appointments, students, instructors)

		found, ok := dir.AppointmentAt("2024-06-03T09:00")
		assert.True(t, ok)
		assert.Equal(t, "a1", found.ID)
		assert.Equal(t, 1, dir.Len())
	})

	t.Run("Later appointment wins a shared slot", func(t *testing.T) {
		appointments := []responses.Appointment{
			{ID: "first", StartTime: "2024-06-03T10:00:00"},
			{ID: "second", StartTime: "2024-06-03T10:00:00"},
		}

		dir := Build(appointments, students, instructors)

		found, ok := dir.AppointmentAt("2024-06-03T10:00")
		assert.True(t, ok)
		assert.Equal(t, "second", found.ID)
		assert.Equal(t, 1, dir.Len())
	})

	t.Run("Empty slot is not found", func(t *testing.T) {
		dir := Build(nil, nil, nil)

		_, ok := dir.AppointmentAt("2024-06-03T08:00")
		assert.False(t, ok)
	})
}

func TestNames(t *testing.T) {
	dir := Build(nil,
		[]responses.Student{{ID: "s1", Name: "Ana"}},
		[]responses.Instructor{{ID: "i1", Name: "Bia"}},
	)

	assert.Equal(t, "Ana", dir.StudentName("s1"))
	assert.Equal(t, "Bia", dir.InstructorName("i1"))
	assert.Equal(t, FallbackStudentName, dir.StudentName("missing"))
	assert.Equal(t, FallbackInstructorName, dir.InstructorName("missing"))
}
