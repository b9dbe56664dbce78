package storage

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"chair.png", "chair.png"},
		{"my photo (1).jpg", "my-photo--1-.jpg"},
		{"../../etc/passwd", "passwd"},
		{"C:\\Users\\me\\pic.png", "pic.png"},
		{"", "upload"},
		{"..", "upload"},
	}
	for _, c := range cases {
		if got := sanitizeFilename(c.in); got != c.want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
