package notes

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"GREEN", StatusGreen},
		{"green", StatusGreen},
		{" Amber ", StatusAmber},
		{"RED", StatusRed},
		{"", StatusUnspecified},
		{"BLOCKED", StatusUnspecified},
		{"greenish", StatusUnspecified},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
