// Package entity contains the core business objects of the project.
package entity

import "time"

// BankIDStatus is the provider-reported state of an order.
type BankIDStatus string

const (
	BankIDStatusPending  BankIDStatus = "pending"
	BankIDStatusComplete BankIDStatus = "complete"
	BankIDStatusFailed   BankIDStatus = "failed"
)

// BankIDOrder is the provider response to an auth request.
type BankIDOrder struct {
	OrderRef       string `json:"orderRef"`
	AutoStartToken string `json:"autoStartToken"`
	QRStartToken   string `json:"qrStartToken"`
	QRStartSecret  string `json:"qrStartSecret"`
}

// BankIDUser holds the identity attributes of a completed order.
type BankIDUser struct {
	PersonalNumber string `json:"personalNumber"`
	Name           string `json:"name"`
	GivenName      string `json:"givenName"`
	Surname        string `json:"surname"`
}

// BankIDCollectResult is the provider response to a collect request.
type BankIDCollectResult struct {
	OrderRef       string       `json:"orderRef"`
	Status         BankIDStatus `json:"status"`
	HintCode       string       `json:"hintCode"`
	CompletionUser *BankIDUser  `json:"-"`
}

// BankIDSession is the server-side correlation record of one pending order.
type BankIDSession struct {
	OrderRef       string    `json:"orderRef"`
	AutoStartToken string    `json:"autoStartToken"`
	QRStartToken   string    `json:"qrStartToken"`
	QRStartSecret  string    `json:"qrStartSecret"`
	EndUserIP      string    `json:"endUserIp"`
	StartedAt      time.Time `json:"startedAt"`
}

// BankIDProgress is the outcome of a collect call that did not complete.
type BankIDProgress struct {
	Status   BankIDStatus `json:"status"`
	HintCode string       `json:"hint_code,omitempty"`
	Message  string       `json:"message"`
}
