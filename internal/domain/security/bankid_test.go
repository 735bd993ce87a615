package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBankIDHintMessage(t *testing.T) {
	assert.Equal(t, "Open your BankID app to complete authentication", BankIDHintMessage("outstandingTransaction"))
	assert.Equal(t, "Enter your security code in the BankID app", BankIDHintMessage("userSign"))
	assert.Equal(t, "Processing BankID authentication...", BankIDHintMessage("somethingNew"))
	assert.Equal(t, "Processing BankID authentication...", BankIDHintMessage(""))
}

func TestBankIDQRData(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("7"))
	want := "bankid.token.7." + hex.EncodeToString(mac.Sum(nil))

	got := BankIDQRData("token", "secret", 7)

	assert.Equal(t, want, got)
	assert.Equal(t, got, BankIDQRData("token", "secret", 7))
	assert.NotEqual(t, got, BankIDQRData("token", "secret", 8))
	assert.NotContains(t, got, "secret")
	assert.Len(t, strings.Split(got, "."), 4)
}
