package delivery

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/de-tools/fleet-report/pkg/services/config"
)

// Mail sends one HTML document to the configured recipients. Plain SMTP
// without auth, which is what relay hosts inside management networks
// speak.
func Mail(cfg config.MailConfig, body string) error {
	if len(cfg.To) == 0 {
		return fmt.Errorf("delivery: mail: no recipients configured")
	}

	var msg strings.Builder
	msg.WriteString("From: " + cfg.From + "\r\n")
	msg.WriteString("To: " + strings.Join(cfg.To, ", ") + "\r\n")
	msg.WriteString("Subject: " + cfg.Subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	if err := smtp.SendMail(addr, nil, cfg.From, cfg.To, []byte(msg.String())); err != nil {
		return fmt.Errorf("delivery: mail via %s: %w", addr, err)
	}
	return nil
}
