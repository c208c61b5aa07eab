package instructors

import (
	"context"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/app/services/core/coretest"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestInstructorUsecase(t *testing.T) {
	ctx := context.Background()
	carla := models.Instructor{ID: primitive.NewObjectID(), Name: "Carla", Email: "carla@studio.com", Phone: "11977776666"}
	diego := models.Instructor{ID: primitive.NewObjectID(), Name: "Diego", Email: "diego@studio.com", Phone: "11966665555"}

	setup := func(appointments *coretest.Appointments) (*coretest.Instructors, *coretest.Cache, *instructorUsecase) {
		repo := coretest.NewInstructors(carla, diego)
		cache := coretest.NewCache()
		uc := NewInstructorUsecase(repo, appointments, cache, time.Minute, zap.NewNop()).(*instructorUsecase)
		return repo, cache, uc
	}

	t.Run("FindAll is served from the cache after the first read", func(t *testing.T) {
		repo, cache, uc := setup(coretest.NewAppointments())

		first, err := uc.FindAll(ctx)
		require.NoError(t, err)
		second, err := uc.FindAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, second, 2)
		assert.Equal(t, 1, repo.FindAllCalls)
		assert.Equal(t, 1, cache.Hits)
	})

	t.Run("Writes invalidate the cached list", func(t *testing.T) {
		repo, cache, uc := setup(coretest.NewAppointments())
		_, err := uc.FindAll(ctx)
		require.NoError(t, err)

		_, err = uc.Create(ctx, &requests.CreateInstructor{Name: "Elisa", Email: "elisa@studio.com", Phone: "11955554444"})
		require.NoError(t, err)

		assert.False(t, cache.Has(constvars.RedisKeyInstructorList))

		list, err := uc.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 3)
		assert.Equal(t, 2, repo.FindAllCalls)
	})

	t.Run("Create rejects a duplicate email", func(t *testing.T) {
		_, _, uc := setup(coretest.NewAppointments())

		_, err := uc.Create(ctx, &requests.CreateInstructor{Name: "Other", Email: carla.Email})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "An instructor with this email already exists", customErr.ClientMessage)
	})

	t.Run("Update to another instructor's email", func(t *testing.T) {
		_, _, uc := setup(coretest.NewAppointments())
		email := diego.Email

		_, err := uc.Update(ctx, carla.ID.Hex(), &requests.UpdateInstructor{Email: &email})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Update of a missing instructor", func(t *testing.T) {
		_, _, uc := setup(coretest.NewAppointments())
		name := "Ghost"

		_, err := uc.Update(ctx, primitive.NewObjectID().Hex(), &requests.UpdateInstructor{Name: &name})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "Instructor not found", customErr.ClientMessage)
	})

	t.Run("Delete is blocked by appointments", func(t *testing.T) {
		appointments := coretest.NewAppointments(models.Appointment{
			StudentID:    primitive.NewObjectID(),
			InstructorID: carla.ID,
			StartTime:    time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local),
			EndTime:      time.Date(2024, 6, 3, 10, 0, 0, 0, time.Local),
		})
		_, _, uc := setup(appointments)

		err := uc.Delete(ctx, carla.ID.Hex())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, "Cannot delete instructor with linked appointments", customErr.ClientMessage)

		require.NoError(t, uc.Delete(ctx, diego.ID.Hex()))
	})
}
