// Package redisstore stores the whole reservation collection as one JSON value under
// a single key. Writes use WATCH/MULTI so that the conflict check and the write
// are applied atomically.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"roomBooker/internal/config"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultKey = "room_reservations"

	defaultMaxRetries = 10
)

var ErrContention = errors.New("too many concurrent writers")

type Storage struct {
	client     *redis.Client
	key        string
	maxRetries int
}

func New(ctx context.Context, cfg *config.Redis) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	s := NewWithClient(client, cfg.Key)
	if cfg.MaxRetries > 0 {
		s.maxRetries = cfg.MaxRetries
	}

	return s, nil
}

func NewWithClient(client *redis.Client, key string) *Storage {
	if key == "" {
		key = DefaultKey
	}

	return &Storage{
		client:     client,
		key:        key,
		maxRetries: defaultMaxRetries,
	}
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	const op = "storage.redis.ListReservations"

	rs, err := s.load(ctx, s.client)
	if err != nil {
		return nil, storage.Unavailable(op, err)
	}

	return rs, nil
}

func (s *Storage) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	const op = "storage.redis.CreateReservation"

	var created models.Reservation
	err := s.mutate(ctx, op, func(all []models.Reservation) ([]models.Reservation, error) {
		next, c, err := storage.Insert(all, r)
		created = c
		return next, err
	})
	if err != nil {
		return models.Reservation{}, err
	}

	return created, nil
}

func (s *Storage) UpdateReservation(ctx context.Context, id int, r models.Reservation) (models.Reservation, error) {
	const op = "storage.redis.UpdateReservation"

	var updated models.Reservation
	err := s.mutate(ctx, op, func(all []models.Reservation) ([]models.Reservation, error) {
		next, u, err := storage.Replace(all, id, r)
		updated = u
		return next, err
	})
	if err != nil {
		return models.Reservation{}, err
	}

	return updated, nil
}

func (s *Storage) DeleteReservation(ctx context.Context, id int) error {
	const op = "storage.redis.DeleteReservation"

	return s.mutate(ctx, op, func(all []models.Reservation) ([]models.Reservation, error) {
		return storage.Remove(all, id)
	})
}

func (s *Storage) PurgeBefore(ctx context.Context, date string) (int, error) {
	const op = "storage.redis.PurgeBefore"

	removed := 0
	err := s.mutate(ctx, op, func(all []models.Reservation) ([]models.Reservation, error) {
		kept, n := storage.Before(all, date)
		removed = n
		return kept, nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

func (s *Storage) load(ctx context.Context, c redis.Cmdable) ([]models.Reservation, error) {
	data, err := c.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.Reservation{}, nil
	}
	if err != nil {
		return nil, err
	}

	var rs []models.Reservation
	if err = json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.key, err)
	}

	return rs, nil
}

// mutate applies fn to the current collection inside an optimistic transaction,
// retrying when another writer changes the key between read and write.
// Errors returned by fn are passed through untouched.
func (s *Storage) mutate(ctx context.Context, op string, fn func([]models.Reservation) ([]models.Reservation, error)) error {
	var fnErr error

	txf := func(tx *redis.Tx) error {
		all, err := s.load(ctx, tx)
		if err != nil {
			return err
		}

		next, err := fn(all)
		if err != nil {
			fnErr = err
			return err
		}

		data, err := json.Marshal(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < s.maxRetries; i++ {
		fnErr = nil

		err := s.client.Watch(ctx, txf, s.key)
		switch {
		case err == nil:
			return nil
		case fnErr != nil:
			return fnErr
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return storage.Unavailable(op, err)
		}
	}

	return storage.Unavailable(op, ErrContention)
}
