package normalize

import "testing"

func TestPhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "country code", in: "971501234567", want: "0501234567"},
		{name: "country code formatted", in: "+971 50 123 4567", want: "0501234567"},
		{name: "nine digits", in: "501234567", want: "0501234567"},
		{name: "local ten digits", in: "0501234567", want: "0501234567"},
		{name: "empty", in: "", want: ""},
		{name: "no digits", in: "n/a", want: ""},
		{name: "long fallback", in: "00441234567890", want: "1234567890"},
		{name: "short fallback", in: "12345", want: "12345"},
		{name: "country code landline", in: "97121234567", want: "7121234567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Phone(tc.in); got != tc.want {
				t.Fatalf("Phone(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPhone_Idempotent(t *testing.T) {
	inputs := []string{"971501234567", "501234567", "0501234567", "+971-55-765-4321", "00441234567890", ""}
	for _, in := range inputs {
		once := Phone(in)
		if twice := Phone(once); twice != once {
			t.Fatalf("Phone not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestPhoneLabelMask(t *testing.T) {
	if got := PhoneLabelMask("971501234567"); got != "0501234567 xxxxxxxxxx" {
		t.Fatalf("unexpected mask: %q", got)
	}
	if got := PhoneLabelMask(""); got != "xxxxxxxxxx" {
		t.Fatalf("unexpected empty mask: %q", got)
	}
}

func TestInternationalMobile(t *testing.T) {
	got, ok := InternationalMobile("0501234567")
	if !ok || got != "+971 50 123 4567" {
		t.Fatalf("unexpected format: %q ok=%v", got, ok)
	}
	got, ok = InternationalMobile("501234567")
	if !ok || got != "+971 50 123 4567" {
		t.Fatalf("unexpected format: %q ok=%v", got, ok)
	}
	if _, ok := InternationalMobile("971501234567"); ok {
		t.Fatalf("expected country-code input to be rejected")
	}
	if _, ok := InternationalMobile("0401234567"); ok {
		t.Fatalf("expected non-mobile number to be rejected")
	}
}
