package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/harentsoaR/swasth-api/internal/models"
	"github.com/redis/go-redis/v9"
)

// ClinicCache stores clinic lookups for a short while so repeated map views
// do not hammer the public Overpass instance.
type ClinicCache interface {
	GetClinics(ctx context.Context, key string) ([]models.Clinic, bool, error)
	SetClinics(ctx context.Context, key string, clinics []models.Clinic, ttl time.Duration) error
}

type RedisClinicCache struct {
	Client redis.Cmdable
}

func NewRedisClinicCache(client redis.Cmdable) *RedisClinicCache {
	return &RedisClinicCache{Client: client}
}

func (c *RedisClinicCache) GetClinics(ctx context.Context, key string) ([]models.Clinic, bool, error) {
	data, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var clinics []models.Clinic
	if err := json.Unmarshal(data, &clinics); err != nil {
		return nil, false, err
	}
	return clinics, true, nil
}

func (c *RedisClinicCache) SetClinics(ctx context.Context, key string, clinics []models.Clinic, ttl time.Duration) error {
	data, err := json.Marshal(clinics)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, data, ttl).Err()
}
