package mailer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"text/template"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
)

// defaultInvitationTemplate is used when no template directory is
// configured or the file is missing. Authored in Markdown; rendered to
// HTML at send time.
const defaultInvitationTemplate = `# You're invited to join {{.OrganizationName}}

{{.InviterName}} has invited you to join **{{.OrganizationName}}** as a **{{.Role}}**.

[Accept the invitation]({{.InvitationURL}})

This invitation expires on {{.ExpiresAt}}. If you weren't expecting it,
you can ignore this email.
`

const invitationTemplateFile = "invitation.md"

// InvitationData is the template context for invitation emails
type InvitationData struct {
	OrganizationName string
	InviterName      string
	Role             string
	InvitationURL    string
	ExpiresAt        string
}

// Templates renders email bodies from Markdown templates. When a
// template directory is configured the files in it are watched and
// reloaded on change, so template edits don't need a restart.
type Templates struct {
	logger *logrus.Logger

	mu         sync.RWMutex
	invitation *template.Template

	watcher *fsnotify.Watcher
}

// NewTemplates creates a template set. dir may be empty, in which case
// the built-in templates are used and no watcher is started.
func NewTemplates(dir string, logger *logrus.Logger) (*Templates, error) {
	t := &Templates{logger: logger}

	if err := t.load(dir); err != nil {
		return nil, err
	}

	if dir != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("failed to create template watcher: %w", err)
		}
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch template dir %s: %w", dir, err)
		}
		t.watcher = watcher
		go t.watch(dir)
	}

	return t, nil
}

// Close stops the template watcher, if any.
func (t *Templates) Close() error {
	if t.watcher != nil {
		return t.watcher.Close()
	}
	return nil
}

func (t *Templates) load(dir string) error {
	source := defaultInvitationTemplate
	if dir != "" {
		path := filepath.Join(dir, invitationTemplateFile)
		if data, err := os.ReadFile(path); err == nil {
			source = string(data)
		}
	}

	tmpl, err := template.New(invitationTemplateFile).Parse(source)
	if err != nil {
		return fmt.Errorf("failed to parse invitation template: %w", err)
	}

	t.mu.Lock()
	t.invitation = tmpl
	t.mu.Unlock()
	return nil
}

func (t *Templates) watch(dir string) {
	for {
		select {
		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := t.load(dir); err != nil {
				t.logger.WithError(err).Warn("failed to reload email templates")
				continue
			}
			t.logger.WithField("file", event.Name).Info("reloaded email templates")
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			t.logger.WithError(err).Warn("template watcher error")
		}
	}
}

// RenderInvitation produces the HTML body for an invitation email.
func (t *Templates) RenderInvitation(data InvitationData) (string, error) {
	t.mu.RLock()
	tmpl := t.invitation
	t.mu.RUnlock()

	var md bytes.Buffer
	if err := tmpl.Execute(&md, data); err != nil {
		return "", fmt.Errorf("failed to execute invitation template: %w", err)
	}

	var html bytes.Buffer
	if err := goldmark.Convert(md.Bytes(), &html); err != nil {
		return "", fmt.Errorf("failed to render invitation markdown: %w", err)
	}
	return html.String(), nil
}

// FormatExpiry formats an expiry timestamp for email display.
func FormatExpiry(at time.Time) string {
	return at.UTC().Format("January 2, 2006 15:04 MST")
}
