// Package mail renders the transactional email templates and delivers them
// over SMTP.
package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/gowtham404/books-store-api/config"
	"github.com/gowtham404/books-store-api/internal/auth/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mailer renders embedded HTML templates and sends them through SMTP.
type Mailer struct {
	dialer    *gomail.Dialer
	from      string
	fromName  string
	templates *template.Template
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	return &Mailer{
		dialer:    gomail.NewDialer(cfg.MailServer, cfg.MailPort, cfg.MailUsername, cfg.MailPassword),
		from:      cfg.MailFrom,
		fromName:  cfg.MailFromName,
		templates: templates,
	}, nil
}

// Render executes the named template with the message context.
func (m *Mailer) Render(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Send renders and delivers msg synchronously.
func (m *Mailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	body, err := m.Render(msg.Template, msg.Context)
	if err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.from, m.fromName)
	gm.SetHeader("To", msg.Recipients...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
