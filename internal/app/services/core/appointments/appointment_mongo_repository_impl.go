package appointments

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{}
	if !from.IsZero() {
		filter["startTime"] = bson.M{"$gte": from, "$lt": to}
	}
	return repo.find(ctx, filter)
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

// FindOverlapping returns the instructor's appointments intersecting
// [start, end), ignoring excludeID when it is set.
func (repo *AppointmentMongoRepository) FindOverlapping(ctx context.Context, instructorID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	instructorObjectID, err := primitive.ObjectIDFromHex(instructorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"instructorId": instructorObjectID,
		"startTime":    bson.M{"$lt": end},
		"endTime":      bson.M{"$gt": start},
	}
	if excludeID != "" {
		excludeObjectID, err := primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["_id"] = bson.M{"$ne": excludeObjectID}
	}
	return repo.find(ctx, filter)
}

func (repo *AppointmentMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	appointments := make([]models.Appointment, 0)
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	update := bson.M{"$set": bson.M{
		"studentId":    appointment.StudentID,
		"instructorId": appointment.InstructorID,
		"startTime":    appointment.StartTime,
		"endTime":      appointment.EndTime,
		"status":       appointment.Status,
		"notes":        appointment.Notes,
		"updatedAt":    appointment.UpdatedAt,
	}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": appointment.ID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) Delete(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) CountByStudentID(ctx context.Context, studentID string) (int64, error) {
	return repo.countByReference(ctx, "studentId", studentID)
}

func (repo *AppointmentMongoRepository) CountByInstructorID(ctx context.Context, instructorID string) (int64, error) {
	return repo.countByReference(ctx, "instructorId", instructorID)
}

func (repo *AppointmentMongoRepository) countByReference(ctx context.Context, field, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}
	count, err := repo.Collection.CountDocuments(ctx, bson.M{field: objectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
