// Package store defines the storage contracts the server depends on.
//
// Each concern gets its own narrow interface with a GORM implementation
// in the gorm subpackage. Handlers and services depend on the
// interfaces only, which keeps authorization decisions testable with
// mocks and keeps the persistence technology swappable.
package store
