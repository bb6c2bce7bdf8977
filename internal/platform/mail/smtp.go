// Package mail delivers password-reset instructions over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// SMTPSender sends password-reset emails through an SMTP relay.
type SMTPSender struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

// NewSMTPSender creates an SMTPSender. frontendURL is the base URL of the
// storefront; the reset link points at its /reset-password page.
func NewSMTPSender(host string, port int, username, password, from, frontendURL string) *SMTPSender {
	return &SMTPSender{
		dialer:      gomail.NewDialer(host, port, username, password),
		from:        from,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// SendPasswordReset delivers the reset link for the given token.
// The link expires together with the token.
func (s *SMTPSender) SendPasswordReset(_ context.Context, to, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, url.QueryEscape(token))

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset Request")
	m.SetBody("text/html", fmt.Sprintf(
		`<p>We received a password reset request.</p>
<p>Click this link to reset your password: <a href="%s">%s</a></p>
<p>This link expires in 1 hour.</p>`, resetLink, resetLink))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}
