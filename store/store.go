package store

import "gorm.io/gorm"

// Store exposes explicit data-access functions over the blog records.
// Every mutation runs inside its own transaction so the unit-of-work is
// committed or rolled back on every exit path; lookups read directly
// from the pooled connection.
type Store struct {
	db *gorm.DB
}

// New wraps an initialized gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
