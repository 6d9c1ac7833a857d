package model

//go:generate go run github.com/dmarkham/enumer -type MemberStatus -trimprefix MemberStatus -transform lower -json -sql -output member_status.gen.go
//go:generate go run github.com/dmarkham/enumer -type InvitationStatus -trimprefix InvitationStatus -transform lower -json -sql -output invitation_status.gen.go

// MemberStatus is the lifecycle status of an organization membership.
type MemberStatus int

const (
	MemberStatusActive MemberStatus = iota
	MemberStatusPending
	MemberStatusSuspended
)

// InvitationStatus is the stored lifecycle status of an invitation.
// A pending invitation past its expiry is treated as expired at read
// time regardless of the stored value.
type InvitationStatus int

const (
	InvitationStatusPending InvitationStatus = iota
	InvitationStatusAccepted
	InvitationStatusExpired
	InvitationStatusCancelled
)
