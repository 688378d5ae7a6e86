package geo

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  Kombi  ", "Kombi"},
		{"em dash", "Medeu—Shymbulak", "Medeu-Shymbulak"},
		{"en dash", "Medeu–Shymbulak", "Medeu-Shymbulak"},
		{"collapses whitespace", "Left \t Talgar\n Lift", "Left Talgar Lift"},
		{"empty", "", ""},
		{"only whitespace", " \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanName(tt.in)
			if got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := CleanName(got); again != got {
				t.Errorf("CleanName not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestStripAccents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Séxtuple", "Sextuple"},
		{"Teleférico", "Teleferico"},
		{"Río Negro", "Rio Negro"},
		{"Kreuzeckbahn", "Kreuzeckbahn"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripAccents(tt.in); got != tt.want {
			t.Errorf("StripAccents(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
