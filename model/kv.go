package model

import "time"

// KVEntry is one namespaced key with a JSON-encoded value. Backing table for
// the SQL durable-store backends.
type KVEntry struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     []byte    `json:"value" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}
