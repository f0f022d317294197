package model

import (
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const maxNameLen = 50

type User struct {
	Base
	FirstName    string `gorm:"size:50;not null" json:"first_name"`
	LastName     string `gorm:"size:50;not null" json:"last_name"`
	Email        string `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
}

func NewUser(firstName, lastName, email, password string, isAdmin bool) (*User, error) {
	u := &User{Base: newBase(), IsAdmin: isAdmin}
	if err := u.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := u.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) SetFirstName(v string) error {
	name, err := validateName("first_name", v)
	if err != nil {
		return err
	}
	u.FirstName = name
	return nil
}

func (u *User) SetLastName(v string) error {
	name, err := validateName("last_name", v)
	if err != nil {
		return err
	}
	u.LastName = name
	return nil
}

// SetEmail normalizes to lowercase so uniqueness checks are
// case-insensitive by construction.
func (u *User) SetEmail(v string) error {
	email := strings.ToLower(strings.TrimSpace(v))
	if email == "" {
		return invalid("email cannot be empty")
	}
	if len(email) > 120 {
		return invalid("email cannot exceed 120 characters")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return invalid("invalid email format")
	}
	u.Email = email
	return nil
}

func (u *User) SetPassword(password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return invalid("password cannot be empty")
	}
	// bcrypt only hashes the first 72 bytes and rejects longer inputs
	if len(password) > 72 {
		return invalid("password cannot exceed 72 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) Attribute(name string) (any, bool) {
	switch name {
	case "first_name":
		return u.FirstName, true
	case "last_name":
		return u.LastName, true
	case "email":
		return u.Email, true
	case "is_admin":
		return u.IsAdmin, true
	default:
		return nil, false
	}
}

func validateName(field, v string) (string, error) {
	name := strings.TrimSpace(v)
	if name == "" {
		return "", invalid("%s cannot be empty", field)
	}
	if len(name) > maxNameLen {
		return "", invalid("%s cannot exceed %d characters", field, maxNameLen)
	}
	return name, nil
}
