package gorm

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// translateError maps driver-level errors onto the store sentinels so
// callers never see raw Postgres errors for expected conditions.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	if isUniqueViolation(err) {
		return store.ErrDuplicate
	}
	return err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}
