package mailer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/breeqa/breeqa-server/pkg/model"
)

// Mailer delivers invitation emails. Delivery is best-effort: callers
// log failures and carry on, the invitation record stays the source of
// truth.
type Mailer interface {
	// SendInvitation sends the invitation email to the invited address.
	SendInvitation(ctx context.Context, inv *model.OrganizationInvitation) error
}

// LogMailer is a Mailer that only logs. Used when no email provider is
// configured, e.g. in development and tests.
type LogMailer struct {
	Logger *logrus.Logger
}

// NewLogMailer creates a LogMailer
func NewLogMailer(logger *logrus.Logger) *LogMailer {
	return &LogMailer{Logger: logger}
}

// SendInvitation logs the invitation instead of delivering it
func (m *LogMailer) SendInvitation(_ context.Context, inv *model.OrganizationInvitation) error {
	m.Logger.WithFields(logrus.Fields{
		"email":        inv.Email,
		"organization": inv.OrganizationID,
		"role":         inv.Role.String(),
		"expires_at":   inv.ExpiresAt,
	}).Info("invitation email suppressed (no mail provider configured)")
	return nil
}
