package console

import (
	"fmt"
	"pilates-vision-service/internal/app/services/console/board"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/slots"
	"text/tabwriter"
)

var weekdayLabels = map[string][]string{
	constvars.LanguageEnglish:    {"Mon", "Tue", "Wed", "Thu", "Fri"},
	constvars.LanguagePortuguese: {"Seg", "Ter", "Qua", "Qui", "Sex"},
}

const freeCell = "·"

func (c *Console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

func (c *Console) renderGrid() {
	grid := c.board.Grid()
	labels, ok := weekdayLabels[c.preferences.Language]
	if !ok {
		labels = weekdayLabels[constvars.LanguageEnglish]
	}

	w := c.table()
	fmt.Fprint(w, "\t")
	if len(grid) > 0 {
		for day, cell := range grid[0] {
			fmt.Fprintf(w, "%d %s %s\t", day+1, labels[day], cell.Date[len(cell.Date)-5:])
		}
	}
	fmt.Fprintln(w)

	for _, row := range grid {
		fmt.Fprintf(w, "%s\t", row[0].Time)
		for _, cell := range row {
			fmt.Fprintf(w, "%s\t", cellLabel(cell))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func cellLabel(cell board.Cell) string {
	if !cell.Occupied() {
		return freeCell
	}
	if cell.Appointment.Status != constvars.AppointmentStatusBooked {
		return fmt.Sprintf("%s (%s)", cell.StudentName, cell.Appointment.Status)
	}
	return cell.StudentName
}

func (c *Console) renderState() {
	directory := c.board.Directory()

	switch state := c.board.State().(type) {
	case board.Booking:
		w := c.table()
		fmt.Fprintf(w, "New booking\t%s %s-%s\n", state.Date, state.Time, slots.AddOneHour(state.Time))
		student, instructor := "-", "-"
		if state.StudentID != "" {
			student = directory.StudentName(state.StudentID)
		}
		if state.InstructorID != "" {
			instructor = directory.InstructorName(state.InstructorID)
		}
		fmt.Fprintf(w, "Student\t%s\n", student)
		fmt.Fprintf(w, "Instructor\t%s\n", instructor)
		w.Flush()
	case board.Detail:
		c.renderAppointment(state.Appointment, state.Form, false)
	case board.Editing:
		c.renderAppointment(state.Appointment, state.Form, true)
	}
}

func (c *Console) renderAppointment(appointment responses.Appointment, form board.EditForm, editing bool) {
	directory := c.board.Directory()
	w := c.table()
	fmt.Fprintf(w, "Student\t%s\n", directory.StudentName(appointment.StudentID))
	fmt.Fprintf(w, "Instructor\t%s\n", directory.InstructorName(appointment.InstructorID))
	fmt.Fprintf(w, "Start\t%s\n", appointment.StartTime)
	fmt.Fprintf(w, "End\t%s\n", appointment.EndTime)
	fmt.Fprintf(w, "Notes\t%s\n", orDash(appointment.Notes))
	if editing {
		fmt.Fprintf(w, "Edit date\t%s\n", form.Date)
		fmt.Fprintf(w, "Edit time\t%s\n", form.Time)
		fmt.Fprintf(w, "Edit status\t%s\n", form.Status)
	} else {
		fmt.Fprintf(w, "Status\t%s\n", form.Status)
	}
	w.Flush()
}

func (c *Console) renderStudents(students []responses.Student) {
	w := c.table()
	fmt.Fprintln(w, "#\tID\tName\tCPF\tPhone")
	for i, student := range students {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, student.ID, student.Name, student.TaxIDCPF, student.Phone)
	}
	w.Flush()
}

func (c *Console) renderInstructors(instructors []responses.Instructor) {
	w := c.table()
	fmt.Fprintln(w, "#\tID\tName\tEmail\tSpecialty")
	for i, instructor := range instructors {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, instructor.ID, instructor.Name, instructor.Email, orDash(instructor.Specialty))
	}
	w.Flush()
}

func (c *Console) renderAnalysis(result *responses.PostureAnalysis) {
	w := c.table()
	fmt.Fprintf(w, "Status\t%s\n", result.Status)
	if len(result.DetectedDeviations) == 0 {
		fmt.Fprintf(w, "Deviations\t%s\n", "-")
	}
	for i, deviation := range result.DetectedDeviations {
		label := ""
		if i == 0 {
			label = "Deviations"
		}
		fmt.Fprintf(w, "%s\t%s\n", label, deviation)
	}
	fmt.Fprintf(w, "Clinical analysis\t%s\n", orDash(result.ClinicalAnalysis))
	if result.AssessmentID != "" {
		fmt.Fprintf(w, "Assessment\t%s\n", result.AssessmentID)
	}
	w.Flush()
}

func (c *Console) renderPlan(plan *responses.WorkoutPlan) {
	w := c.table()
	fmt.Fprintln(w, "#\tExercise\tSets\tReps\tReason")
	for i, exercise := range plan.WorkoutPlan {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, exercise.ExerciseName, exercise.Sets, exercise.Reps, exercise.ClinicalReason)
	}
	w.Flush()
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
