package auth

import (
	"errors"
	"testing"
)

func TestBuiltinAccounts(t *testing.T) {
	d, err := NewDirectory(nil)
	if err != nil {
		t.Fatalf("NewDirectory() error = %v", err)
	}
	tests := []struct {
		name, password string
		wantAdmin      bool
		wantErr        error
	}{
		{"1", "1", true, nil},
		{"2", "2", false, nil},
		{"1", "2", false, ErrInvalidCredentials},
		{"3", "3", false, ErrInvalidCredentials},
	}
	for _, tt := range tests {
		admin, err := d.Login(tt.name, tt.password)
		if !errors.Is(err, tt.wantErr) || admin != tt.wantAdmin {
			t.Errorf("Login(%q, %q) = %v, %v, expected %v, %v", tt.name, tt.password, admin, err, tt.wantAdmin, tt.wantErr)
		}
	}
}

func TestConfiguredUsers(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	d, err := NewDirectory([]User{{Name: "ana", PasswordHash: hash, Admin: true}})
	if err != nil {
		t.Fatalf("NewDirectory() error = %v", err)
	}
	if admin, err := d.Login("ana", "secret"); err != nil || !admin {
		t.Errorf("Login(ana) = %v, %v, expected admin", admin, err)
	}
	if _, err := d.Login("1", "1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("built-in account active with configured users: %v", err)
	}

	if _, err := NewDirectory([]User{{Name: "a"}, {Name: "a"}}); err == nil {
		t.Error("NewDirectory() accepted duplicate users")
	}
}
