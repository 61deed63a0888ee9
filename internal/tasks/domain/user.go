package domain

import (
	"strings"
	"time"
)

// MaxLoginAttempts is the number of failed logins tolerated. One more and
// the account is locked.
const MaxLoginAttempts = 2

type User struct {
	ID            string
	FullName      string
	Username      string
	PasswordHash  string // argon2id PHC, or bcrypt for accounts created before the migration
	Active        bool
	LoginAttempts int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Locked reports whether the account has exceeded MaxLoginAttempts.
func (u User) Locked() bool { return u.LoginAttempts > MaxLoginAttempts }

// Registration is a validated sign-up request. The password is still in
// plaintext and must be hashed before it is stored.
type Registration struct {
	FullName string
	Username string
	Password string
}

type registrationFields struct {
	FullName *string `json:"full_name" validate:"required,min=1,max=255"`
	Username *string `json:"username" validate:"required,min=1,max=255"`
	Password *string `json:"password" validate:"required,min=1,max=255"`
}

var registrationMessages = map[string]string{
	"full_name.required": "Full name field is required",
	"full_name.min":      "Full name cannot be blank",
	"full_name.max":      "Full name cannot be greater than 255 characters",
	"username.required":  "Username field is required",
	"username.min":       "Username cannot be blank",
	"username.max":       "Username cannot be greater than 255 characters",
	"password.required":  "Password field is required",
	"password.min":       "Password cannot be blank",
	"password.max":       "Password cannot be greater than 255 characters",
}

// NewRegistration validates a sign-up request. Nil means the field was not
// supplied. The username is trimmed before validation.
func NewRegistration(fullName, username, password *string) (Registration, error) {
	if username != nil {
		trimmed := strings.TrimSpace(*username)
		username = &trimmed
	}

	fields := registrationFields{FullName: fullName, Username: username, Password: password}
	if err := check(fields, registrationMessages); err != nil {
		return Registration{}, err
	}

	return Registration{FullName: *fullName, Username: *username, Password: *password}, nil
}

// Credentials is a validated login request.
type Credentials struct {
	Username string
	Password string
}

type credentialFields struct {
	Username *string `json:"username" validate:"required,min=1,max=255"`
	Password *string `json:"password" validate:"required,min=1,max=255"`
}

// NewCredentials validates a login request.
func NewCredentials(username, password *string) (Credentials, error) {
	if err := check(credentialFields{Username: username, Password: password}, registrationMessages); err != nil {
		return Credentials{}, err
	}
	return Credentials{Username: *username, Password: *password}, nil
}
