package util

import "testing"

func TestValidatePassphrase(t *testing.T) {
	cases := []struct {
		name  string
		pass  string
		valid bool
	}{
		{"too short", "Ab1", false},
		{"no digit", "Password", false},
		{"no upper", "password1", false},
		{"no letter", "12345678", false},
		{"valid", "Passw0rd", true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassphrase(tc.pass)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got error %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected error for %q", tc.pass)
			}
		})
	}
}

func TestHashAndCheckPassphrase(t *testing.T) {
	hash, err := HashPassphrase("Passw0rd")
	if err != nil {
		t.Fatalf("HashPassphrase failed: %v", err)
	}
	if hash == "" || hash == "Passw0rd" {
		t.Fatalf("hash should be a non-empty digest, got %q", hash)
	}
	if !CheckPassphrase(hash, "Passw0rd") {
		t.Fatalf("expected matching passphrase to verify")
	}
	if CheckPassphrase(hash, "wrong") {
		t.Fatalf("expected mismatched passphrase to fail")
	}
}
