// Package gorm provides GORM-backed implementations of the store
// interfaces.
package gorm
