package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	MedicinesCollection    = "medicines"
	DoctorsCollection      = "doctors"
	AppointmentsCollection = "appointments"
	UsersCollection        = "users"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
