package textutil

import "testing"

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"":         "",
		"ana":      "Ana",
		"jOHN DOE": "John doe",
		"ñandú":    "Ñandú",
		"мурка":    "Мурка",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Fatalf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Abyssinian", 20); got != "Abyssinian" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Truncate("Abyssinian", 6); got != "Aby..." {
		t.Fatalf("unexpected %q", got)
	}
	if got := Truncate("Abyssinian", 2); got != ".." {
		t.Fatalf("unexpected %q", got)
	}
}
