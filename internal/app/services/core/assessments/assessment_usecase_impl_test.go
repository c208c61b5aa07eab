package assessments

import (
	"context"
	"errors"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/app/services/core/coretest"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestAssessmentUsecase_Create(t *testing.T) {
	ctx := context.Background()
	student := models.Student{ID: primitive.NewObjectID(), Name: "Ana Souza", TaxIDCPF: "12345678901"}

	t.Run("stores the assessment for an existing student", func(t *testing.T) {
		assessments := &coretest.Assessments{}
		uc := NewAssessmentUsecase(assessments, coretest.NewStudents(student), zap.NewNop())

		created, err := uc.Create(ctx, &requests.CreateAssessment{
			StudentID:     student.ID.Hex(),
			ImageURL:      "posture-images/assessments/a.png",
			PosturalNotes: "Mild kyphosis",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, student.ID.Hex(), created.StudentID)
		assert.Equal(t, "Mild kyphosis", created.PosturalNotes)
		require.Len(t, assessments.Items, 1)
		assert.Equal(t, created.ID, assessments.Items[0].ID.Hex())
	})

	t.Run("unknown student", func(t *testing.T) {
		assessments := &coretest.Assessments{}
		uc := NewAssessmentUsecase(assessments, coretest.NewStudents(student), zap.NewNop())

		_, err := uc.Create(ctx, &requests.CreateAssessment{StudentID: primitive.NewObjectID().Hex(), ImageURL: "x"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Empty(t, assessments.Items)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		failure := errors.New("write failed")
		uc := NewAssessmentUsecase(&coretest.Assessments{Err: failure}, coretest.NewStudents(student), zap.NewNop())

		_, err := uc.Create(ctx, &requests.CreateAssessment{StudentID: student.ID.Hex(), ImageURL: "x"})

		assert.ErrorIs(t, err, failure)
	})
}
