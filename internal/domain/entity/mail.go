// Package entity contains the core business objects of the project.
package entity

// MailTemplate names a notification template rendered by the mail worker.
type MailTemplate string

const (
	MailVerifyEmail            MailTemplate = "verify_email"
	MailResetPassword          MailTemplate = "reset_password"
	MailPasswordResetRequested MailTemplate = "password_reset_requested"
	MailPasswordChanged        MailTemplate = "password_changed"
	MailEmailChanged           MailTemplate = "email_changed"
	MailAccountLocked          MailTemplate = "account_locked"
	MailNewLoginDetected       MailTemplate = "new_login_detected"
)

// String returns the string representation of the MailTemplate.
func (t MailTemplate) String() string {
	return string(t)
}

// Subject returns the email subject line for the template.
func (t MailTemplate) Subject() string {
	switch t {
	case MailVerifyEmail:
		return "Verify your Valunds account"
	case MailResetPassword:
		return "Reset your Valunds password"
	case MailPasswordResetRequested:
		return "Password reset requested for your Valunds account"
	case MailPasswordChanged:
		return "Your Valunds password has been changed"
	case MailEmailChanged:
		return "Email address change request for your Valunds account"
	case MailAccountLocked:
		return "Your Valunds account has been temporarily locked"
	case MailNewLoginDetected:
		return "New login to your Valunds account"
	default:
		return ""
	}
}

// IsValid checks if the MailTemplate is a valid value.
func (t MailTemplate) IsValid() bool {
	return t.Subject() != ""
}

// MailMessage is the job published for the mail worker.
type MailMessage struct {
	Template  MailTemplate      `json:"template"`
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject"`
	Data      map[string]string `json:"data"`
	RequestID string            `json:"request_id,omitempty"`
}
