package util

import "testing"

func TestParseIntOr(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		fallback int
		want     int
	}{
		{"plain", "42", 0, 42},
		{"padded", "  7 ", 0, 7},
		{"negative", "-3", 0, -3},
		{"empty", "", 5, 5},
		{"garbage", "abc", 5, 5},
		{"float input", "2.5", 5, 5},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseIntOr(tc.in, tc.fallback); got != tc.want {
				t.Fatalf("ParseIntOr(%q, %d) = %d, want %d", tc.in, tc.fallback, got, tc.want)
			}
		})
	}
}

func TestParseFloatOr(t *testing.T) {
	if got := ParseFloatOr("7.5", 0); got != 7.5 {
		t.Fatalf("ParseFloatOr(7.5) = %v", got)
	}
	if got := ParseFloatOr("eight", 1.5); got != 1.5 {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(15, 1, 10); got != 10 {
		t.Fatalf("Clamp high = %d", got)
	}
	if got := Clamp(-2, 1, 10); got != 1 {
		t.Fatalf("Clamp low = %d", got)
	}
	if got := Clamp(4, 1, 10); got != 4 {
		t.Fatalf("Clamp mid = %d", got)
	}
}

func TestPtrDeref(t *testing.T) {
	p := Ptr(9)
	if Deref(p) != 9 {
		t.Fatalf("Deref(Ptr(9)) != 9")
	}
	var nilPtr *int
	if Deref(nilPtr) != 0 {
		t.Fatalf("Deref(nil) should be zero value")
	}
}
