package repository

import (
	"context"
	"testing"
	"time"

	"github.com/harentsoaR/swasth-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMedicineRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find all decodes every document", func(mt *mtest.T) {
		repo := &MedicineRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Paracetamol"}, {Key: "apolloPrice", Value: 20.0}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Ibuprofen"}},
		))

		medicines, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, medicines, 2)
		assert.Equal(t, "Paracetamol", medicines[0].Name)
		require.NotNil(t, medicines[0].ApolloPrice)
		assert.Equal(t, 20.0, *medicines[0].ApolloPrice)
		assert.Nil(t, medicines[1].ApolloPrice)
	})

	mt.Run("find all on empty collection is an empty slice", func(mt *mtest.T) {
		repo := &MedicineRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		medicines, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, medicines)
		assert.Empty(t, medicines)
	})

	mt.Run("seed inserts into an empty collection", func(mt *mtest.T) {
		repo := &MedicineRepository{Collection: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		inserted, err := repo.SeedIfEmpty(ctx, []models.Medicine{{Name: "Paracetamol"}, {Name: "Ibuprofen"}})
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)
	})

	mt.Run("seed is a no-op when populated", func(mt *mtest.T) {
		repo := &MedicineRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(17)}},
		))

		inserted, err := repo.SeedIfEmpty(ctx, []models.Medicine{{Name: "Paracetamol"}})
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})
}

// sortOf returns the sort document of the first recorded command, which must be a find.
func sortOf(mt *mtest.T) bson.Raw {
	started := mt.GetStartedEvent()
	require.NotNil(mt, started)
	require.Equal(mt, "find", started.CommandName)
	return started.Command.Lookup("sort").Document()
}

func TestDoctorRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find all sorts by name ascending", func(mt *mtest.T) {
		repo := &DoctorRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Dr. Asha Rao"}},
		))

		doctors, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, doctors, 1)

		sort := sortOf(mt)
		assert.Equal(t, int64(1), sort.Lookup("name").AsInt64())
		elems, err := sort.Elements()
		require.NoError(t, err)
		assert.Len(t, elems, 1)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		repo := &DoctorRepository{Collection: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Dr. Asha Rao"}, {Key: "phone", Value: "+911234567890"}},
		))

		doctor, err := repo.FindByID(ctx, id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id, doctor.ID)
		assert.Equal(t, "+911234567890", doctor.Phone)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		repo := &DoctorRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("malformed id never reaches the server", func(mt *mtest.T) {
		repo := &DoctorRepository{Collection: mt.Coll}

		_, err := repo.FindByID(ctx, "not-an-object-id")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("insert assigns an id", func(mt *mtest.T) {
		repo := &DoctorRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		doctor := &models.Doctor{Name: "Dr. Vikram Sen"}
		require.NoError(t, repo.Insert(ctx, doctor))
		assert.False(t, doctor.ID.IsZero())
	})
}

func TestAppointmentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("insert", func(mt *mtest.T) {
		repo := &AppointmentRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		apt := &models.Appointment{PatientName: "Riya", DoctorID: primitive.NewObjectID(), Date: time.Now(), Status: models.AppointmentStatusPending}
		require.NoError(t, repo.Insert(ctx, apt))
		assert.False(t, apt.ID.IsZero())
	})

	mt.Run("find", func(mt *mtest.T) {
		repo := &AppointmentRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "patientName", Value: "Riya"}, {Key: "status", Value: "pending"}},
		))

		appointments, err := repo.Find(ctx, AppointmentFilter{Status: "pending"})
		require.NoError(t, err)
		require.Len(t, appointments, 1)
		assert.Equal(t, "Riya", appointments[0].PatientName)

		assert.Equal(t, int64(1), sortOf(mt).Lookup("date").AsInt64())
	})
}

func TestAppointmentFilterBSON(t *testing.T) {
	doctorID := primitive.NewObjectID()
	from := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	filter := AppointmentFilter{DoctorID: doctorID, Status: "pending", From: from, To: to}.bson()

	assert.Equal(t, doctorID, filter["doctor"])
	assert.Equal(t, "pending", filter["status"])
	assert.Equal(t, bson.M{"$gte": from, "$lt": to}, filter["date"])
	assert.Empty(t, AppointmentFilter{}.bson())
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := &UserRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Insert(ctx, &models.User{Email: "riya@example.com"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := &UserRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "riya@example.com"}, {Key: "role", Value: "patient"}},
		))

		user, err := repo.FindByEmail(ctx, "riya@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.RolePatient, user.Role)
	})
}
