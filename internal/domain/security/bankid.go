package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

const defaultBankIDMessage = "Processing BankID authentication..."

var bankIDHintMessages = map[string]string{
	"outstandingTransaction": "Open your BankID app to complete authentication",
	"noClient":               "BankID app not found. Please install BankID.",
	"started":                "Starting BankID...",
	"userSign":               "Enter your security code in the BankID app",
	"userCancel":             "Authentication cancelled by user",
	"userMrtd":               "Scan your passport or ID card in the BankID app",
	"userCallConfirm":        "Confirm the call in your BankID app",
	"expiredTransaction":     "The BankID session expired. Please try again.",
	"certificateErr":         "Your BankID is blocked or too old. Please renew it.",
	"startFailed":            "The BankID app could not be started. Please try again.",
}

// BankIDHintMessage maps a provider hint code to the message shown to the user.
func BankIDHintMessage(hintCode string) string {
	if msg, ok := bankIDHintMessages[hintCode]; ok {
		return msg
	}

	return defaultBankIDMessage
}

// BankIDCancelledHint reports whether the hint means the user aborted in the app.
func BankIDCancelledHint(hintCode string) bool {
	return hintCode == "userCancel"
}

// BankIDQRData builds the animated QR payload for the given elapsed whole seconds.
// The secret only feeds the HMAC and never appears in the output.
func BankIDQRData(qrStartToken, qrStartSecret string, seconds int64) string {
	secs := strconv.FormatInt(seconds, 10)

	mac := hmac.New(sha256.New, []byte(qrStartSecret))
	mac.Write([]byte(secs))

	return "bankid." + qrStartToken + "." + secs + "." + hex.EncodeToString(mac.Sum(nil))
}
