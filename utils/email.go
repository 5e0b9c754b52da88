package utils

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"

	"github.com/samajconnect/portal-backend/config"
)

var emailCfg *config.Config

// InitEmail stores SMTP settings for the send helpers below.
func InitEmail(cfg *config.Config) {
	emailCfg = cfg
}

func sendEmail(to, subject, body string) error {
	if emailCfg == nil || emailCfg.SMTPHost == "" || emailCfg.SMTPUsername == "" {
		log.Printf("SMTP not configured, skipping email to %s (%s)", to, subject)
		return nil
	}

	from := emailCfg.SMTPFromEmail
	if from == "" {
		from = emailCfg.SMTPUsername
	}

	addr := fmt.Sprintf("%s:%s", emailCfg.SMTPHost, emailCfg.SMTPPort)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: emailCfg.SMTPHost}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	auth := smtp.PlainAuth("", emailCfg.SMTPUsername, emailCfg.SMTPPassword, emailCfg.SMTPHost)
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		emailCfg.SMTPFromName, from, to, subject, body)
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// SendResetLink emails a password reset link for the given token.
func SendResetLink(to, token string) error {
	link := fmt.Sprintf("%s/auth/reset-password?token=%s", emailBaseURL(), token)
	body := fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open the link below to choose a new password. The link expires in 15 minutes.\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.", link)
	return sendEmail(to, "Password reset request", body)
}

// SendApprovalNotice tells a newly approved member they can sign in.
func SendApprovalNotice(to string) error {
	body := "Your account has been approved by an administrator. You can now sign in to the member portal."
	return sendEmail(to, "Account approved", body)
}

func emailBaseURL() string {
	if emailCfg != nil && emailCfg.BaseURL != "" {
		return emailCfg.BaseURL
	}
	return "http://localhost:8080"
}
