package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/film-vault/models"
)

// Field name constants accepted by [UserValidator].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"

	// FieldOptionalPassword checks the password only when one is given.
	FieldOptionalPassword = "optional_password"
)

// Length limits for account fields, counted in characters.
const (
	MaxUsernameLength = 100
	MaxEmailLength    = 320
	MinPasswordLength = 3
	MaxPasswordLength = 100
)

// UserValidator validates account requests: registration and profile
// updates. All failing fields are reported together as [ValidationErrors].
type UserValidator struct{}

// NewUserValidator constructs a [UserValidator].
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate implements [Validator] for [models.RegisterRequest] and
// [models.UpdateProfileRequest], by value or by pointer.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateAccount(value.Username, value.Email, value.Password, defaultFields(fields, FieldUsername, FieldEmail, FieldPassword))
	case *models.RegisterRequest:
		return v.validateAccount(value.Username, value.Email, value.Password, defaultFields(fields, FieldUsername, FieldEmail, FieldPassword))

	case models.UpdateProfileRequest:
		return v.validateAccount(value.Username, value.Email, value.Password, defaultFields(fields, FieldUsername, FieldEmail, FieldOptionalPassword))
	case *models.UpdateProfileRequest:
		return v.validateAccount(value.Username, value.Email, value.Password, defaultFields(fields, FieldUsername, FieldEmail, FieldOptionalPassword))

	default:
		return ErrUnsupportedType
	}
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func (v *UserValidator) validateAccount(username, email, password string, fields []string) error {
	errs := ValidationErrors{}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if msg := checkUsername(username); msg != "" {
				errs[FieldUsername] = msg
			}
		case FieldEmail:
			if msg := checkEmail(email); msg != "" {
				errs[FieldEmail] = msg
			}
		case FieldPassword:
			if msg := checkPassword(password); msg != "" {
				errs[FieldPassword] = msg
			}
		case FieldOptionalPassword:
			if password == "" {
				continue
			}
			if msg := checkPassword(password); msg != "" {
				errs[FieldPassword] = msg
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

func checkUsername(username string) string {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return "username is required"
	case utf8.RuneCountInString(username) > MaxUsernameLength:
		return fmt.Sprintf("username must be at most %d characters", MaxUsernameLength)
	}
	return ""
}

func checkEmail(email string) string {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return "email is required"
	case utf8.RuneCountInString(email) > MaxEmailLength:
		return fmt.Sprintf("email must be at most %d characters", MaxEmailLength)
	}

	// ParseAddress also accepts "Name <addr>"; only a bare address is allowed.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "email is not a valid address"
	}
	return ""
}

func checkPassword(password string) string {
	switch n := utf8.RuneCountInString(password); {
	case password == "":
		return "password is required"
	case n < MinPasswordLength || n > MaxPasswordLength:
		return fmt.Sprintf("password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)
	}
	return ""
}
