// Package entity contains the core business objects of the project.
package entity

// UserType represents the marketplace role of an account.
type UserType string

const (
	// UserTypeFreelancer offers services on the marketplace.
	UserTypeFreelancer UserType = "freelancer"
	// UserTypeClient buys services on the marketplace.
	UserTypeClient UserType = "client"
	// UserTypeAdmin operates the marketplace.
	UserTypeAdmin UserType = "admin"
)

// String returns the string representation of the UserType.
func (u UserType) String() string {
	return string(u)
}

// IsValid checks if the UserType is a valid value.
func (u UserType) IsValid() bool {
	switch u {
	case UserTypeFreelancer, UserTypeClient, UserTypeAdmin:
		return true
	default:
		return false
	}
}

// ParseUserType returns the matching UserType, defaulting to freelancer for empty input.
func ParseUserType(s string) (UserType, bool) {
	if s == "" {
		return UserTypeFreelancer, true
	}

	u := UserType(s)

	return u, u.IsValid()
}
