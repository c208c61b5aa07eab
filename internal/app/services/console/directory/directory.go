// Package directory indexes one loaded week of appointments by slot and
// resolves display names for the scheduling board.
package directory

import (
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/slots"
)

const (
	FallbackStudentName    = "Student"
	FallbackInstructorName = "Instructor"
)

// Directory is immutable once built. Reloads build a new one.
type Directory struct {
	bySlot      map[string]responses.Appointment
	students    map[string]responses.Student
	instructors map[string]responses.Instructor
}

// Build indexes the loaded lists. When two appointments share a slot key the
// later one in the list wins.
func Build(appointments []responses.Appointment, students []responses.Student, instructors []responses.Instructor) *Directory {
	dir := &Directory{
		bySlot:      make(map[string]responses.Appointment, len(appointments)),
		students:    make(map[string]responses.Student, len(students)),
		instructors: make(map[string]responses.Instructor, len(instructors)),
	}
	for _, appointment := range appointments {
		dir.bySlot[slots.SlotKey(appointment.StartTime)] = appointment
	}
	for _, student := range students {
		dir.students[student.ID] = student
	}
	for _, instructor := range instructors {
		dir.instructors[instructor.ID] = instructor
	}
	return dir
}

// AppointmentAt returns the appointment occupying the given slot key.
func (d *Directory) AppointmentAt(slotKey string) (responses.Appointment, bool) {
	appointment, ok := d.bySlot[slotKey]
	return appointment, ok
}

func (d *Directory) Student(id string) (responses.Student, bool) {
	student, ok := d.students[id]
	return student, ok
}

func (d *Directory) Instructor(id string) (responses.Instructor, bool) {
	instructor, ok := d.instructors[id]
	return instructor, ok
}

func (d *Directory) StudentName(id string) string {
	if student, ok := d.students[id]; ok {
		return student.Name
	}
	return FallbackStudentName
}

func (d *Directory) InstructorName(id string) string {
	if instructor, ok := d.instructors[id]; ok {
		return instructor.Name
	}
	return FallbackInstructorName
}

// Len is the number of occupied slots.
func (d *Directory) Len() int {
	return len(d.bySlot)
}
