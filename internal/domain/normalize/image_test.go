package normalize

import "testing"

func TestEnsureDataURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "https rejected", in: "https://example.com/x.png", want: ""},
		{name: "http rejected", in: "HTTP://example.com/x.png", want: ""},
		{name: "file rejected", in: "file:///tmp/x.png", want: ""},
		{name: "data url unchanged", in: "data:image/png;base64,AAAA", want: "data:image/png;base64,AAAA"},
		{name: "raw base64 wrapped", in: "AAAA", want: "data:image/png;base64,AAAA"},
		{name: "whitespace stripped", in: " AA\nAA \t", want: "data:image/png;base64,AAAA"},
		{name: "blank", in: "   \n", want: ""},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EnsureDataURL(tc.in); got != tc.want {
				t.Fatalf("EnsureDataURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestProperCase(t *testing.T) {
	if got := ProperCase("  ali HASSAN "); got != "Ali Hassan" {
		t.Fatalf("unexpected proper case: %q", got)
	}
	if got := ProperCase("abu dhabi - al shamkha"); got != "Abu Dhabi - Al Shamkha" {
		t.Fatalf("unexpected proper case: %q", got)
	}
	if got := NameKey("  Ali "); got != "ali" {
		t.Fatalf("unexpected name key: %q", got)
	}
}
