package repository

import (
	"context"
	"fmt"
	"regexp"

	"github.com/harentsoaR/swasth-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MedicineRepository struct {
	Collection *mongo.Collection
}

func NewMedicineRepository(db *mongo.Database) *MedicineRepository {
	return &MedicineRepository{Collection: db.Collection(MedicinesCollection)}
}

// FindAll returns every medicine in insertion order.
func (r *MedicineRepository) FindAll(ctx context.Context) ([]models.Medicine, error) {
	return r.find(ctx, bson.M{})
}

// SearchByName matches medicines whose name contains query, ignoring case.
func (r *MedicineRepository) SearchByName(ctx context.Context, query string) ([]models.Medicine, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	return r.find(ctx, filter)
}

func (r *MedicineRepository) find(ctx context.Context, filter bson.M) ([]models.Medicine, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find medicines: %w", err)
	}
	defer cursor.Close(ctx)

	medicines := make([]models.Medicine, 0)
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, fmt.Errorf("decode medicines: %w", err)
	}
	return medicines, nil
}

// SeedIfEmpty inserts medicines only when the collection holds no documents.
// It returns how many documents were inserted.
func (r *MedicineRepository) SeedIfEmpty(ctx context.Context, medicines []models.Medicine) (int, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count medicines: %w", err)
	}
	if count > 0 || len(medicines) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(medicines))
	for _, m := range medicines {
		docs = append(docs, m)
	}
	res, err := r.Collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert medicines: %w", err)
	}
	return len(res.InsertedIDs), nil
}
