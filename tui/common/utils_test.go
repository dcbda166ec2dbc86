package common

import "testing"

func TestQuoteExcerpt(t *testing.T) {
	if got := QuoteExcerpt("  hello\n  world  ", 0); got != "hello world" {
		t.Fatalf("whitespace must collapse: %q", got)
	}
	if got := QuoteExcerpt("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestIsSafeExternalURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "https", in: "https://example.com/post/1", want: true},
		{name: "http", in: "http://example.com/post/1", want: true},
		{name: "javascript", in: "javascript:alert(1)", want: false},
		{name: "file", in: "file:///etc/passwd", want: false},
		{name: "relative", in: "/local/path", want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSafeExternalURL(tc.in); got != tc.want {
				t.Fatalf("IsSafeExternalURL(%q) got %v want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize(1, "reply", "replies"); got != "1 reply" {
		t.Fatalf("unexpected singular: %q", got)
	}
	if got := Pluralize(4, "reply", "replies"); got != "4 replies" {
		t.Fatalf("unexpected plural: %q", got)
	}
}
