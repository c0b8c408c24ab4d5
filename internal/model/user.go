package model

import (
	"time"
)

// User is the minimal anonymous identity: one row per device identifier.
type User struct {
	ID         int64     `json:"id"`
	DeviceID   string    `json:"device_id"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}
