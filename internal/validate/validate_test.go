package validate

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ana@minimarket.mx", true},
		{"a.b+c@sub.example.com", true},
		{"", false},
		{"not-an-email", false},
		{"missing@domain", false},
		{"@nouser.com", false},
		{"spaces in@mail.com", false},
		// Domain labels must start and end alphanumeric, so these
		// fail even though a loose form pattern would let them pass.
		{"ana@mail..com", false},
		{"ana@-mail.com", false},
	}

	for _, tt := range tests {
		if got := Email(tt.input); got != tt.want {
			t.Errorf("Email(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
