package memorial

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "דניאל גולן", "דניאל גולן ז״ל"},
		{"already suffixed", "דניאל גולן ז״ל", "דניאל גולן ז״ל"},
		{"empty name", "", " ז״ל"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.in); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayNameIdempotent(t *testing.T) {
	once := DisplayName("שרה לוי")
	twice := DisplayName(once)
	if once != twice {
		t.Fatalf("expected idempotent projection, got %q then %q", once, twice)
	}
}

func TestStorageName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"suffixed name", "דניאל גולן ז״ל", "דניאל גולן"},
		{"plain name", "דניאל גולן", "דניאל גולן"},
		{"suffix only in middle", "ז״ל דניאל", "ז״ל דניאל"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StorageName(tt.in); got != tt.want {
				t.Errorf("StorageName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTripPreservesName(t *testing.T) {
	original := "משה כהן"
	if got := StorageName(DisplayName(original)); got != original {
		t.Fatalf("round trip changed name: %q", got)
	}
}
