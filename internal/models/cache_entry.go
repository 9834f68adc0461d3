package models

import (
	"time"
)

// CacheEntry represents a cached query result stored in the database cache
// backend. A zero ExpiresAt means the entry never expires.
type CacheEntry struct {
	Key       string    `gorm:"primaryKey;size:512"`
	Value     []byte    `gorm:"type:blob"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CacheEntry) TableName() string { return "cache_entries" }
