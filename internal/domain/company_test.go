package domain

import (
	"testing"
	"time"
)

func TestAccountStateProgression(t *testing.T) {
	hash := "$argon2id$..."

	cases := []struct {
		name    string
		company Company
		want    AccountState
	}{
		{name: "fresh signup", company: Company{}, want: StateUnverified},
		{name: "verified without credential", company: Company{EmailVerified: true}, want: StateVerified},
		{name: "credentialed", company: Company{EmailVerified: true, PasswordHash: &hash}, want: StateCredentialed},
		{name: "credential without verification", company: Company{PasswordHash: &hash}, want: StateUnverified},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.company.State(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			wantAuth := tc.want == StateCredentialed
			if got := tc.company.CanAuthenticate(); got != wantAuth {
				t.Fatalf("CanAuthenticate: expected %v, got %v", wantAuth, got)
			}
		})
	}
}

func TestTokenValidityOverUsedAndExpiry(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		name  string
		token VerificationToken
		want  bool
	}{
		{name: "live", token: VerificationToken{ExpiresAt: now.Add(time.Minute)}, want: true},
		{name: "used", token: VerificationToken{Used: true, ExpiresAt: now.Add(time.Minute)}, want: false},
		{name: "expired", token: VerificationToken{ExpiresAt: now.Add(-time.Second)}, want: false},
		{name: "used and expired", token: VerificationToken{Used: true, ExpiresAt: now.Add(-time.Second)}, want: false},
		{name: "expiry boundary", token: VerificationToken{ExpiresAt: now}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.token.ValidAt(now); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
