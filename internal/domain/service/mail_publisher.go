package service

import (
	"context"

	"valunds/internal/domain/entity"
)

// MailPublisher hands mail jobs to the mail worker transport.
type MailPublisher interface {
	// PublishMail publishes a mail job for asynchronous delivery
	PublishMail(ctx context.Context, msg *entity.MailMessage) error

	// Close releases any resources held by the publisher
	Close() error
}

// MailSender delivers a rendered message. Implemented by the mail worker's SMTP sender.
type MailSender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// MailRenderer turns a template and its data into a plain-text body.
type MailRenderer interface {
	Render(template entity.MailTemplate, data map[string]string) (string, error)
}
