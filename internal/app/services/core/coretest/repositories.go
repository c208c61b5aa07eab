// Package coretest provides in-memory stand-ins for the studio repositories
// and remote services, for use in usecase and controller tests.
package coretest

import (
	"context"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/exceptions"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBNotObjectID(err)
	}
	return objectID, nil
}

type Students struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]models.Student
	// Err, when set, is returned by every call.
	Err error
}

func NewStudents(students ...models.Student) *Students {
	repo := &Students{items: make(map[primitive.ObjectID]models.Student)}
	for _, student := range students {
		repo.Create(context.Background(), &student)
	}
	return repo
}

func (r *Students) Create(ctx context.Context, student *models.Student) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	r.items[student.ID] = *student
	return student.ID.Hex(), nil
}

func (r *Students) FindAll(ctx context.Context, search string) ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	needle := strings.ToLower(search)
	result := make([]models.Student, 0)
	for _, student := range r.items {
		if needle == "" ||
			strings.Contains(strings.ToLower(student.Name), needle) ||
			strings.Contains(strings.ToLower(student.TaxIDCPF), needle) ||
			strings.Contains(strings.ToLower(student.Phone), needle) {
			result = append(result, student)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID.Hex() > result[j].ID.Hex() })
	return result, nil
}

func (r *Students) FindByID(ctx context.Context, studentID string) (*models.Student, error) {
	objectID, err := parseID(studentID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	student, ok := r.items[objectID]
	if !ok {
		return nil, nil
	}
	return &student, nil
}

func (r *Students) FindByTaxID(ctx context.Context, taxID string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, student := range r.items {
		if student.TaxIDCPF == taxID {
			return &student, nil
		}
	}
	return nil, nil
}

func (r *Students) Update(ctx context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.items[student.ID] = *student
	return nil
}

func (r *Students) UpdateLatestAnalysis(ctx context.Context, studentID string, deviations []string, clinicalAnalysis string) error {
	return r.modify(studentID, func(student *models.Student) {
		student.LatestDetectedDeviations = deviations
		student.LatestClinicalAnalysis = clinicalAnalysis
	})
}

func (r *Students) UpdateLatestWorkoutPlan(ctx context.Context, studentID string, plan []models.WorkoutExercise) error {
	return r.modify(studentID, func(student *models.Student) {
		student.LatestWorkoutPlan = plan
	})
}

func (r *Students) modify(studentID string, change func(*models.Student)) error {
	objectID, err := parseID(studentID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	student, ok := r.items[objectID]
	if !ok {
		return nil
	}
	change(&student)
	r.items[objectID] = student
	return nil
}

func (r *Students) Delete(ctx context.Context, studentID string) error {
	objectID, err := parseID(studentID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.items, objectID)
	return nil
}

// Get returns the stored copy, for assertions.
func (r *Students) Get(studentID string) (models.Student, bool) {
	objectID, _ := primitive.ObjectIDFromHex(studentID)
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.items[objectID]
	return student, ok
}

type Instructors struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]models.Instructor
	Err   error
	// FindAllCalls counts repository list reads, to observe caching.
	FindAllCalls int
}

func NewInstructors(instructors ...models.Instructor) *Instructors {
	repo := &Instructors{items: make(map[primitive.ObjectID]models.Instructor)}
	for _, instructor := range instructors {
		repo.Create(context.Background(), &instructor)
	}
	return repo
}

func (r *Instructors) Create(ctx context.Context, instructor *models.Instructor) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	if instructor.ID.IsZero() {
		instructor.ID = primitive.NewObjectID()
	}
	r.items[instructor.ID] = *instructor
	return instructor.ID.Hex(), nil
}

func (r *Instructors) FindAll(ctx context.Context) ([]models.Instructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.FindAllCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]models.Instructor, 0, len(r.items))
	for _, instructor := range r.items {
		result = append(result, instructor)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *Instructors) FindByID(ctx context.Context, instructorID string) (*models.Instructor, error) {
	objectID, err := parseID(instructorID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	instructor, ok := r.items[objectID]
	if !ok {
		return nil, nil
	}
	return &instructor, nil
}

func (r *Instructors) FindByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, instructor := range r.items {
		if instructor.Email == email {
			return &instructor, nil
		}
	}
	return nil, nil
}

func (r *Instructors) Update(ctx context.Context, instructor *models.Instructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.items[instructor.ID] = *instructor
	return nil
}

func (r *Instructors) Delete(ctx context.Context, instructorID string) error {
	objectID, err := parseID(instructorID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.items, objectID)
	return nil
}

type Appointments struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]models.Appointment
	Err   error
}

func NewAppointments(appointments ...models.Appointment) *Appointments {
	repo := &Appointments{items: make(map[primitive.ObjectID]models.Appointment)}
	for _, appointment := range appointments {
		repo.Create(context.Background(), &appointment)
	}
	return repo
}

func (r *Appointments) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	r.items[appointment.ID] = *appointment
	return appointment.ID.Hex(), nil
}

func (r *Appointments) FindAll(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return r.filter(func(appointment models.Appointment) bool {
		if from.IsZero() {
			return true
		}
		return !appointment.StartTime.Before(from) && appointment.StartTime.Before(to)
	})
}

func (r *Appointments) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := parseID(appointmentID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	appointment, ok := r.items[objectID]
	if !ok {
		return nil, nil
	}
	return &appointment, nil
}

func (r *Appointments) FindOverlapping(ctx context.Context, instructorID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	return r.filter(func(appointment models.Appointment) bool {
		return appointment.InstructorID.Hex() == instructorID &&
			appointment.ID.Hex() != excludeID &&
			appointment.Overlaps(start, end)
	})
}

func (r *Appointments) Update(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.items[appointment.ID] = *appointment
	return nil
}

func (r *Appointments) Delete(ctx context.Context, appointmentID string) error {
	objectID, err := parseID(appointmentID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.items, objectID)
	return nil
}

func (r *Appointments) CountByStudentID(ctx context.Context, studentID string) (int64, error) {
	matches, err := r.filter(func(appointment models.Appointment) bool {
		return appointment.StudentID.Hex() == studentID
	})
	return int64(len(matches)), err
}

func (r *Appointments) CountByInstructorID(ctx context.Context, instructorID string) (int64, error) {
	matches, err := r.filter(func(appointment models.Appointment) bool {
		return appointment.InstructorID.Hex() == instructorID
	})
	return int64(len(matches)), err
}

func (r *Appointments) filter(keep func(models.Appointment) bool) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]models.Appointment, 0)
	for _, appointment := range r.items {
		if keep(appointment) {
			result = append(result, appointment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.Before(result[j].StartTime) })
	return result, nil
}

// Len reports how many appointments are stored.
func (r *Appointments) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type Assessments struct {
	mu    sync.Mutex
	Items []models.Assessment
	Err   error
}

func (r *Assessments) Create(ctx context.Context, assessment *models.Assessment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	if assessment.ID.IsZero() {
		assessment.ID = primitive.NewObjectID()
	}
	r.Items = append(r.Items, *assessment)
	return assessment.ID.Hex(), nil
}

func (r *Assessments) CountByStudentID(ctx context.Context, studentID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	var count int64
	for _, assessment := range r.Items {
		if assessment.StudentID.Hex() == studentID {
			count++
		}
	}
	return count, nil
}
