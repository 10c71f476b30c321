package services

import (
	"errors"

	"studymates_server/store"
)

// Sentinel errors the controllers translate into HTTP status codes
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrForbidden       = errors.New("operation not allowed")
)

// translateStoreErr maps storage sentinels onto service sentinels so callers
// only ever match against the services package
func translateStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
