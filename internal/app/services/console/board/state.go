package board

import "pilates-vision-service/internal/pkg/dto/responses"

type Mode int

const (
	ModeIdle Mode = iota
	ModeBooking
	ModeDetail
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeBooking:
		return "booking"
	case ModeDetail:
		return "detail"
	case ModeEditing:
		return "editing"
	default:
		return "idle"
	}
}

// State is exactly one of Idle, Booking, Detail or Editing.
type State interface {
	Mode() Mode
}

type Idle struct{}

// Booking is the form for an empty slot.
type Booking struct {
	Date         string
	Time         string
	SearchText   string
	StudentID    string
	InstructorID string
}

// EditForm holds the editable fields of an occupied slot.
type EditForm struct {
	Date   string
	Time   string
	Status string
}

// Detail shows an appointment with its edit form read only.
type Detail struct {
	Appointment responses.Appointment
	Form        EditForm
}

// Editing is Detail with the form enabled.
type Editing struct {
	Appointment responses.Appointment
	Form        EditForm
}

func (Idle) Mode() Mode    { return ModeIdle }
func (Booking) Mode() Mode { return ModeBooking }
func (Detail) Mode() Mode  { return ModeDetail }
func (Editing) Mode() Mode { return ModeEditing }
