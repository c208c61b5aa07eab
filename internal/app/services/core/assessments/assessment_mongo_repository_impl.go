package assessments

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssessmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssessmentMongoRepository(db *mongo.Client, dbName string) contracts.AssessmentRepository {
	return &AssessmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
	}
}

func (repo *AssessmentMongoRepository) Create(ctx context.Context, assessment *models.Assessment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, assessment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AssessmentMongoRepository) CountByStudentID(ctx context.Context, studentID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}
	count, err := repo.Collection.CountDocuments(ctx, bson.M{"studentId": objectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
