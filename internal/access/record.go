// Package access models the authorization records that decide who may open
// the admin area.
package access

import "strings"

type UserType string

const (
	UserTypeAdmin     UserType = "admin"
	UserTypeModerator UserType = "moderator"
	UserTypeStaff     UserType = "staff"
	UserTypeCustomer  UserType = "customer"
)

// Privileged reports whether the user type belongs to store personnel.
func (t UserType) Privileged() bool {
	switch t {
	case UserTypeAdmin, UserTypeModerator, UserTypeStaff:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Record is one authorization entry. Email is the join key against the
// signed-in identity.
type Record struct {
	Email    string   `json:"email"`
	UserType UserType `json:"usertype"`
	Status   Status   `json:"status"`
}

// Admits is the single admission predicate: a privileged user type with an
// active status. Unknown values never admit.
func Admits(r Record) bool {
	return r.UserType.Privileged() && r.Status == StatusActive
}

// Find returns the first record whose email equals email exactly.
func Find(records []Record, email string) (Record, bool) {
	for _, r := range records {
		if r.Email == email {
			return r, true
		}
	}
	return Record{}, false
}

// Validate checks that a record carries known enum values.
func (r Record) Validate() bool {
	if strings.TrimSpace(r.Email) == "" {
		return false
	}
	switch r.UserType {
	case UserTypeAdmin, UserTypeModerator, UserTypeStaff, UserTypeCustomer:
	default:
		return false
	}
	return r.Status == StatusActive || r.Status == StatusSuspended
}
