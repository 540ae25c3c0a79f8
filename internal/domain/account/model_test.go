package account_test

import (
	"testing"
	"time"

	"academia/internal/domain/account"
)

// TestAccountValidation tests validation of Account.
func TestAccountValidation(t *testing.T) {
	tests := []struct {
		name    string
		account account.Account
		wantErr bool
	}{
		{
			name:    "valid admin",
			account: account.Account{ID: "a1", Email: "admin@academia.mx", Role: account.RoleAdmin},
			wantErr: false,
		},
		{
			name:    "valid staff",
			account: account.Account{ID: "a1", Email: "staff@academia.mx", Role: account.RoleStaff},
			wantErr: false,
		},
		{
			name:    "empty email",
			account: account.Account{ID: "a1", Role: account.RoleAdmin},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			account: account.Account{ID: "a1", Email: "not-an-email", Role: account.RoleAdmin},
			wantErr: true,
		},
		{
			name:    "invalid role",
			account: account.Account{ID: "a1", Email: "a@b.mx", Role: "coach"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Account.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestPasswordHashing tests SetPassword and CheckPassword.
func TestPasswordHashing(t *testing.T) {
	a := account.Account{Email: "admin@academia.mx", Role: account.RoleAdmin}

	if err := a.SetPassword("short"); err == nil {
		t.Error("SetPassword accepted a short password")
	}
	if err := a.SetPassword(""); err == nil {
		t.Error("SetPassword accepted an empty password")
	}

	if err := a.SetPassword("a long enough password"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	if a.PasswordHash == "" || a.PasswordHash == "a long enough password" {
		t.Error("password was not hashed")
	}
	if err := a.CheckPassword("a long enough password"); err != nil {
		t.Errorf("CheckPassword rejected the correct password: %v", err)
	}
	if err := a.CheckPassword("wrong password!!"); err == nil {
		t.Error("CheckPassword accepted a wrong password")
	}
}

// TestLockout tests the failed-login lockout policy.
func TestLockout(t *testing.T) {
	a := account.Account{Email: "admin@academia.mx", Role: account.RoleAdmin}

	for i := 0; i < account.MaxFailedLogins-1; i++ {
		a.RecordFailedLogin()
	}
	if a.IsLocked() {
		t.Error("account locked before reaching the threshold")
	}

	a.RecordFailedLogin()
	if !a.IsLocked() {
		t.Error("account not locked after reaching the threshold")
	}
	if time.Until(a.LockedUntil) > account.LockoutDuration {
		t.Error("lockout window longer than policy")
	}

	a.ResetFailedLogins()
	if a.IsLocked() || a.FailedLogins != 0 {
		t.Error("reset did not clear the lockout")
	}
}
