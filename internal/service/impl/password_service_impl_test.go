package impl

import (
	"strings"
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	ps := NewPasswordServiceArgon2id()

	encoded, err := ps.Hash("Abc123!")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected encoding: %q", encoded)
	}
	if !ps.Verify("Abc123!", encoded) {
		t.Fatalf("correct password must verify")
	}
	if ps.Verify("Abc123?", encoded) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestPasswordHashUsesFreshSaltPerCall(t *testing.T) {
	ps := NewPasswordServiceArgon2id()

	first, err := ps.Hash("Abc123!")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	second, err := ps.Hash("Abc123!")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !ps.Verify("Abc123!", first) || !ps.Verify("Abc123!", second) {
		t.Fatalf("both encodings must verify")
	}
}

func TestPasswordHashRejectsEmpty(t *testing.T) {
	ps := NewPasswordServiceArgon2id()
	if _, err := ps.Hash(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestPasswordVerifyRejectsMalformedEncoding(t *testing.T) {
	ps := NewPasswordServiceArgon2id()

	cases := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=3,p=1$only-one-part",
		"$bcrypt$whatever",
	}
	for _, encoded := range cases {
		if ps.Verify("Abc123!", encoded) {
			t.Fatalf("malformed encoding %q must not verify", encoded)
		}
	}
}
