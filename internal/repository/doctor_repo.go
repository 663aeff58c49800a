package repository

import (
	"context"
	"fmt"

	"github.com/harentsoaR/swasth-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorRepository struct {
	Collection *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *DoctorRepository {
	return &DoctorRepository{Collection: db.Collection(DoctorsCollection)}
}

// FindAll lists doctors by name, ascending.
func (r *DoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}

// FindByID looks a doctor up by its hex id. A malformed id can never match,
// so it reports ErrNotFound as well.
func (r *DoctorRepository) FindByID(ctx context.Context, id string) (*models.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doctor models.Doctor
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doctor); err != nil {
		return nil, notFound(err)
	}
	return &doctor, nil
}

// FindByIDs returns the doctors whose ids are listed, keyed by id.
func (r *DoctorRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Doctor, error) {
	doctors := make(map[primitive.ObjectID]models.Doctor, len(ids))
	if len(ids) == 0 {
		return doctors, nil
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var list []models.Doctor
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	for _, d := range list {
		doctors[d.ID] = d
	}
	return doctors, nil
}

func (r *DoctorRepository) Insert(ctx context.Context, doctor *models.Doctor) error {
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	if _, err := r.Collection.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}
