package models

import "testing"

func TestUserPasswordHashing(t *testing.T) {
	user := User{Password: "hunter2-but-longer"}

	if err := user.HashPassword(); err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if user.PasswordHash == "" {
		t.Fatal("PasswordHash is empty after hashing")
	}
	if user.PasswordHash == "hunter2-but-longer" {
		t.Error("PasswordHash stores the plaintext password")
	}

	if err := user.CheckPassword("hunter2-but-longer"); err != nil {
		t.Errorf("CheckPassword(correct) error = %v, want nil", err)
	}
	if err := user.CheckPassword("wrong"); err == nil {
		t.Error("CheckPassword(wrong) error = nil, want mismatch error")
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := User{Role: UserRoleAdmin}
	if !admin.IsAdmin() {
		t.Error("IsAdmin() = false for admin role, want true")
	}

	client := User{Role: UserRoleClient}
	if client.IsAdmin() {
		t.Error("IsAdmin() = true for client role, want false")
	}
}
