package config

import (
	"context"
	"errors"
)

var (
	ErrConfigNotFound = errors.New("config record not found")
	ErrConfigExists   = errors.New("config record already exists")
)

type Store interface {
	// PutConfig creates the singleton config record. Returns ErrConfigExists
	// if one already exists.
	PutConfig(ctx context.Context, record *Record) error

	// GetConfig gets the singleton config record, if it exists.
	GetConfig(ctx context.Context) (*Record, error)

	// SaveConfig updates the existing config record.
	SaveConfig(ctx context.Context, record *Record) error
}
