// Package auth maps a username and password to the admin flag that
// selects the editable or read-only view.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for an unknown user or a
// wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is one account.
type User struct {
	Name         string `yaml:"name"`
	PasswordHash string `yaml:"password_hash"`
	Admin        bool   `yaml:"admin"`
}

// Directory holds the known accounts.
type Directory struct {
	users map[string]User
}

// builtin are used when no accounts are configured.
var builtin = []struct {
	name, password string
	admin          bool
}{
	{"1", "1", true},
	{"2", "2", false},
}

// NewDirectory indexes users by name. With no users it installs the
// built-in admin "1" and user "2", each with its name as password.
func NewDirectory(users []User) (*Directory, error) {
	d := &Directory{users: make(map[string]User)}
	if len(users) == 0 {
		for _, b := range builtin {
			hash, err := HashPassword(b.password)
			if err != nil {
				return nil, err
			}
			d.users[b.name] = User{Name: b.name, PasswordHash: hash, Admin: b.admin}
		}
		return d, nil
	}
	for _, u := range users {
		if u.Name == "" {
			return nil, errors.New("user without a name")
		}
		if _, dup := d.users[u.Name]; dup {
			return nil, fmt.Errorf("duplicate user %q", u.Name)
		}
		d.users[u.Name] = u
	}
	return d, nil
}

// Login checks the password of name and reports whether the account is an
// admin.
func (d *Directory) Login(name, password string) (bool, error) {
	u, ok := d.users[name]
	if !ok {
		return false, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return false, ErrInvalidCredentials
	}
	return u.Admin, nil
}

// HashPassword returns the bcrypt hash stored in User.PasswordHash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
