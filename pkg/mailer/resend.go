package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/breeqa/breeqa-server/pkg/model"
)

const defaultResendBaseURL = "https://api.resend.com"

// Ensure ResendMailer implements Mailer
var _ Mailer = (*ResendMailer)(nil)

// ResendMailer delivers email through the Resend HTTP API.
type ResendMailer struct {
	apiKey     string
	baseURL    string
	fromDomain string
	siteURL    string
	client     *http.Client
	templates  *Templates
	logger     *logrus.Logger
}

// ResendConfig configures a ResendMailer
type ResendConfig struct {
	APIKey     string
	BaseURL    string // defaults to the public Resend API
	FromDomain string // domain for the noreply sender address
	SiteURL    string // base URL embedded in invitation links
}

// NewResendMailer creates a ResendMailer
func NewResendMailer(cfg ResendConfig, templates *Templates, logger *logrus.Logger) *ResendMailer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultResendBaseURL
	}
	return &ResendMailer{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		fromDomain: cfg.FromDomain,
		siteURL:    cfg.SiteURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		templates:  templates,
		logger:     logger,
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendInvitation sends the invitation email to the invited address.
func (m *ResendMailer) SendInvitation(ctx context.Context, inv *model.OrganizationInvitation) error {
	orgName := "your organization"
	if inv.Organization != nil && inv.Organization.Name != "" {
		orgName = inv.Organization.Name
	}
	inviterName := "Someone"
	if inv.Inviter != nil {
		if inv.Inviter.FullName != "" {
			inviterName = inv.Inviter.FullName
		} else if inv.Inviter.Email != "" {
			inviterName = inv.Inviter.Email
		}
	}

	html, err := m.templates.RenderInvitation(InvitationData{
		OrganizationName: orgName,
		InviterName:      inviterName,
		Role:             inv.Role.String(),
		InvitationURL:    fmt.Sprintf("%s/invite/%s", m.siteURL, inv.Token),
		ExpiresAt:        FormatExpiry(inv.ExpiresAt),
	})
	if err != nil {
		return err
	}

	payload, err := json.Marshal(resendRequest{
		From:    fmt.Sprintf("%s <noreply@%s>", orgName, m.fromDomain),
		To:      []string{inv.Email},
		Subject: fmt.Sprintf("You're invited to join %s", orgName),
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach mail provider: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mail provider returned %d: %s", resp.StatusCode, string(body))
	}

	m.logger.WithFields(logrus.Fields{
		"email":        inv.Email,
		"organization": inv.OrganizationID,
	}).Debug("invitation email sent")
	return nil
}
