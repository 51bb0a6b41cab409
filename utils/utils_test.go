package utils

import "testing"

func TestValidSlug(t *testing.T) {
	valid := []string{"foo", "foo-bar", "foo-bar-2", "a1-b2"}
	for _, s := range valid {
		if !ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "/blog/foo", "Foo_Bar", "foo--bar", "-foo", "foo-", "foo bar", "héllo"}
	for _, s := range invalid {
		if ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = true, want false", s)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Spaced  out  ", "spaced-out"},
		{"Pokémon 101!", "pok-mon-101"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER_case", "upper-case"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	s := GenerateRandomString(16)
	if len(s) != 16 {
		t.Fatalf("expected 16 chars, got %d", len(s))
	}
}
