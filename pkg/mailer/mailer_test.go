package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestRenderInvitation(t *testing.T) {
	templates, err := NewTemplates("", testLogger())
	require.NoError(t, err)
	defer func() { _ = templates.Close() }()

	html, err := templates.RenderInvitation(InvitationData{
		OrganizationName: "Acme QA",
		InviterName:      "Alice",
		Role:             "developer",
		InvitationURL:    "https://breeqa.example.com/invite/tok-123",
		ExpiresAt:        "January 2, 2026 15:04 UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Acme QA")
	assert.Contains(t, html, "Alice")
	assert.Contains(t, html, `href="https://breeqa.example.com/invite/tok-123"`)
	assert.Contains(t, html, "<strong>developer</strong>")
}

func TestResendMailerSendInvitation(t *testing.T) {
	var got resendRequest
	var auth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.Equal(t, "/emails", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer ts.Close()

	templates, err := NewTemplates("", testLogger())
	require.NoError(t, err)
	defer func() { _ = templates.Close() }()

	m := NewResendMailer(ResendConfig{
		APIKey:     "re_test_key",
		BaseURL:    ts.URL,
		FromDomain: "breeqa.example.com",
		SiteURL:    "https://app.breeqa.example.com",
	}, templates, testLogger())

	inv := &model.OrganizationInvitation{
		ID:             "inv-1",
		OrganizationID: "org-1",
		Email:          "bob@example.com",
		Role:           rbac.RoleDeveloper,
		Token:          "tok-abc",
		ExpiresAt:      time.Now().Add(7 * 24 * time.Hour),
		Organization:   &model.Organization{ID: "org-1", Name: "Acme QA"},
		Inviter:        &model.UserProfile{ID: "u-1", FullName: "Alice"},
	}

	require.NoError(t, m.SendInvitation(context.Background(), inv))

	assert.Equal(t, "Bearer re_test_key", auth)
	assert.Equal(t, []string{"bob@example.com"}, got.To)
	assert.Equal(t, "You're invited to join Acme QA", got.Subject)
	assert.Contains(t, got.From, "noreply@breeqa.example.com")
	assert.Contains(t, got.HTML, "/invite/tok-abc")
}

func TestResendMailerServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer ts.Close()

	templates, err := NewTemplates("", testLogger())
	require.NoError(t, err)
	defer func() { _ = templates.Close() }()

	m := NewResendMailer(ResendConfig{APIKey: "k", BaseURL: ts.URL, FromDomain: "x.com", SiteURL: "https://x.com"}, templates, testLogger())

	err = m.SendInvitation(context.Background(), &model.OrganizationInvitation{
		Email: "bob@example.com",
		Role:  rbac.RoleViewer,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestLogMailer(t *testing.T) {
	m := NewLogMailer(testLogger())
	err := m.SendInvitation(context.Background(), &model.OrganizationInvitation{
		Email: "bob@example.com",
		Role:  rbac.RoleViewer,
	})
	assert.NoError(t, err)
}
