package middleware

import "testing"

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"abc123", "abc123"},
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"  Bearer   abc123  ", "abc123"},
		{"Bearer", "Bearer"},
	}
	for _, tt := range tests {
		if got := NormalizeToken(tt.in); got != tt.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
