package database

import (
	"errors"
	"fmt"
)

// ConnectionError means the store could not be opened or reached. Startup must stop.
type ConnectionError struct {
	Driver   string
	Attempts int
	Err      error
}

func (e *ConnectionError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("failed to connect to %s store after %d attempts: %v", e.Driver, e.Attempts, e.Err)
	}
	return fmt.Sprintf("failed to connect to %s store: %v", e.Driver, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SchemaError means a table could not be created. Seeding never runs after one.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("failed to create table %s: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// SeedError is a seeding failure other than a unique-key conflict.
// Step is one of validate, hash, superadmin, restaurant, menu. Key names the row.
type SeedError struct {
	Step string
	Key  string
	Err  error
}

func (e *SeedError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("failed to seed %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("failed to seed %s %q: %v", e.Step, e.Key, e.Err)
}

func (e *SeedError) Unwrap() error { return e.Err }

var (
	ErrInvalidSeed        = errors.New("invalid seed data")
	ErrRestaurantMismatch = errors.New("restaurant id is held by a different admin login id")
)
