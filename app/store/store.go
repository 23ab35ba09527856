// Package store provides storage implementations for visitor preferences.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("key not found")

// DBType represents the database backend type.
type DBType int

// database backend types
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
)

// Pref is a single stored preference entry.
type Pref struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RWLocker is a subset of sync.RWMutex. Postgres handles concurrent writers itself and gets a no-op one.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
