package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Components", 20, "Components"},
		{"Components", 10, "Components"},
		{"Components", 6, "Compo…"},
		{"Components", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if w := Width(Truncate(tt.in, tt.max)); w > tt.max {
			t.Errorf("Truncate(%q, %d) width %d exceeds max", tt.in, tt.max, w)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("JSX", 6); got != "JSX   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("│ ┌─┐", 7); Width(got) != 7 {
		t.Errorf("PadRight width = %d, want 7", Width(got))
	}
	if got := PadRight("Components", 5); got != "Comp…" {
		t.Errorf("PadRight truncating = %q", got)
	}
}
