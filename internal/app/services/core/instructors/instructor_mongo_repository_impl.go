package instructors

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InstructorMongoRepository struct {
	Collection *mongo.Collection
}

func NewInstructorMongoRepository(db *mongo.Client, dbName string) contracts.InstructorRepository {
	return &InstructorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionInstructors),
	}
}

func (repo *InstructorMongoRepository) Create(ctx context.Context, instructor *models.Instructor) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, instructor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *InstructorMongoRepository) FindAll(ctx context.Context) ([]models.Instructor, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	instructors := make([]models.Instructor, 0)
	err = cursor.All(ctx, &instructors)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return instructors, nil
}

func (repo *InstructorMongoRepository) FindByID(ctx context.Context, instructorID string) (*models.Instructor, error) {
	objectID, err := primitive.ObjectIDFromHex(instructorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.findOne(ctx, bson.M{"_id": objectID})
}

func (repo *InstructorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *InstructorMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Instructor, error) {
	var instructor models.Instructor
	err := repo.Collection.FindOne(ctx, filter).Decode(&instructor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &instructor, nil
}

func (repo *InstructorMongoRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	update := bson.M{"$set": bson.M{
		"name":      instructor.Name,
		"phone":     instructor.Phone,
		"email":     instructor.Email,
		"specialty": instructor.Specialty,
		"notes":     instructor.Notes,
		"updatedAt": instructor.UpdatedAt,
	}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": instructor.ID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *InstructorMongoRepository) Delete(ctx context.Context, instructorID string) error {
	objectID, err := primitive.ObjectIDFromHex(instructorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
