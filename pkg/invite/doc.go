// Package invite implements the organization invitation lifecycle.
//
// Invitations move through a small state machine: pending invitations
// can be accepted, revoked, or expire; every other transition is
// rejected. Expiry is applied lazily when an invitation is read, there
// is no background sweeper.
package invite
