// Package entity contains the core business objects of the project.
package entity

// OAuthProfile is the subset of the provider profile used to resolve a local account.
type OAuthProfile struct {
	Subject       string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	Name          string
	Picture       string
}
