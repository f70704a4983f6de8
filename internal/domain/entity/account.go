// Package entity contains the core business objects of the portal.
package entity

import "time"

// Address is the structured postal address attached to every account.
type Address struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Account is one registered portal user, patient or provider.
//
// The ID is assigned sequentially within the account's role partition
// (1-based, never recycled) and is therefore only unique per role.
// PasswordDigest always holds the hasher's output, never a plaintext
// password, and is excluded from JSON serialization.
type Account struct {
	ID             int       `json:"id"`
	Role           Role      `json:"role"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	Address        Address   `json:"address"`
	ProfileImage   string    `json:"profileImage,omitempty"` // opaque encoded blob, optional
	CreatedAt      time.Time `json:"createdAt"`
}

// FullName returns the display name used on dashboards and reports.
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
