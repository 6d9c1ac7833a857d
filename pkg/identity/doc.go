// Package identity carries the authenticated user identity through
// request contexts.
package identity
