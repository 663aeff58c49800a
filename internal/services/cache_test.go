package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/harentsoaR/swasth-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClinicCache(t *testing.T) {
	ctx := context.Background()
	clinics := []models.Clinic{{ID: "node/1", Name: "City Care Clinic", Lat: 23.67, Lon: 86.95, Type: "clinic"}}
	data, err := json.Marshal(clinics)
	require.NoError(t, err)

	t.Run("miss", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet("clinics:a").RedisNil()

		got, ok, err := NewRedisClinicCache(db).GetClinics(ctx, "clinics:a")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet("clinics:a").SetVal(string(data))

		got, ok, err := NewRedisClinicCache(db).GetClinics(ctx, "clinics:a")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, clinics, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet("clinics:a").SetErr(errors.New("connection reset"))

		_, ok, err := NewRedisClinicCache(db).GetClinics(ctx, "clinics:a")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("set with ttl", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSet("clinics:a", data, 10*time.Minute).SetVal("OK")

		require.NoError(t, NewRedisClinicCache(db).SetClinics(ctx, "clinics:a", clinics, 10*time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
