package students

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StudentMongoRepository struct {
	Collection *mongo.Collection
}

func NewStudentMongoRepository(db *mongo.Client, dbName string) contracts.StudentRepository {
	return &StudentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStudents),
	}
}

func (repo *StudentMongoRepository) Create(ctx context.Context, student *models.Student) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, student)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindAll matches search case-insensitively against name, CPF and phone,
// newest students first.
func (repo *StudentMongoRepository) FindAll(ctx context.Context, search string) ([]models.Student, error) {
	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter = bson.M{
			"$or": []bson.M{
				{"name": pattern},
				{"taxIdCpf": pattern},
				{"phone": pattern},
			},
		}
	}

	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	students := make([]models.Student, 0)
	err = cursor.All(ctx, &students)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return students, nil
}

func (repo *StudentMongoRepository) FindByID(ctx context.Context, studentID string) (*models.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.findOne(ctx, bson.M{"_id": objectID})
}

func (repo *StudentMongoRepository) FindByTaxID(ctx context.Context, taxID string) (*models.Student, error) {
	return repo.findOne(ctx, bson.M{"taxIdCpf": taxID})
}

func (repo *StudentMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Student, error) {
	var student models.Student
	err := repo.Collection.FindOne(ctx, filter).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &student, nil
}

func (repo *StudentMongoRepository) Update(ctx context.Context, student *models.Student) error {
	update := bson.M{"$set": bson.M{
		"name":         student.Name,
		"taxIdCpf":     student.TaxIDCPF,
		"dateOfBirth":  student.DateOfBirth,
		"phone":        student.Phone,
		"medicalNotes": student.MedicalNotes,
		"goals":        student.Goals,
		"updatedAt":    student.UpdatedAt,
	}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": student.ID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *StudentMongoRepository) UpdateLatestAnalysis(ctx context.Context, studentID string, deviations []string, clinicalAnalysis string) error {
	return repo.setFields(ctx, studentID, bson.M{
		"latestDetectedDeviations": deviations,
		"latestClinicalAnalysis":   clinicalAnalysis,
	})
}

func (repo *StudentMongoRepository) UpdateLatestWorkoutPlan(ctx context.Context, studentID string, plan []models.WorkoutExercise) error {
	return repo.setFields(ctx, studentID, bson.M{
		"latestWorkoutPlan": plan,
	})
}

func (repo *StudentMongoRepository) setFields(ctx context.Context, studentID string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	fields["updatedAt"] = time.Now()
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *StudentMongoRepository) Delete(ctx context.Context, studentID string) error {
	objectID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
