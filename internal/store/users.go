package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/pinspot/pinspot_api/internal/model"
)

// UpsertUserByDevice creates a user on first sight of a device identifier.
// An existing user only gets its last_active bumped.
func (s *Store) UpsertUserByDevice(ctx context.Context, deviceID string, isAdmin bool) (model.User, error) {
	query := `
        INSERT INTO users (device_id, is_admin)
        VALUES ($1, $2)
        ON CONFLICT (device_id) DO UPDATE SET last_active = NOW()
        RETURNING id, device_id, is_admin, created_at, last_active
    `
	var user model.User
	err := s.pool().QueryRow(ctx, query, deviceID, isAdmin).Scan(
		&user.ID, &user.DeviceID, &user.IsAdmin, &user.CreatedAt, &user.LastActive,
	)
	if err != nil {
		return model.User{}, asStoreErr(err)
	}
	return user, nil
}

// GetUserByDevice looks up a user and bumps last_active.
func (s *Store) GetUserByDevice(ctx context.Context, deviceID string) (model.User, error) {
	query := `
        UPDATE users
        SET last_active = NOW()
        WHERE device_id = $1
        RETURNING id, device_id, is_admin, created_at, last_active
    `
	var user model.User
	err := s.pool().QueryRow(ctx, query, deviceID).Scan(
		&user.ID, &user.DeviceID, &user.IsAdmin, &user.CreatedAt, &user.LastActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	query := `
        UPDATE users
        SET last_active = NOW()
        WHERE id = $1
        RETURNING id, device_id, is_admin, created_at, last_active
    `
	var user model.User
	err := s.pool().QueryRow(ctx, query, id).Scan(
		&user.ID, &user.DeviceID, &user.IsAdmin, &user.CreatedAt, &user.LastActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}
