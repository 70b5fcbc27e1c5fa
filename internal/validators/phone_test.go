package validators

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+7 (999) 123-45-67", "+79991234567"},
		{"8 999 123 45 67", "89991234567"},
		{"+79991234567", "+79991234567"},
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"+79991234567",
		"8 (999) 123-45-67",
		"79991234567",
	}
	for _, p := range valid {
		if !IsPhoneValid(p) {
			t.Fatalf("expected %q to be valid", p)
		}
	}

	invalid := []string{
		"",
		"12345",
		"+7999123456789012345",
		"not a phone",
	}
	for _, p := range invalid {
		if IsPhoneValid(p) {
			t.Fatalf("expected %q to be invalid", p)
		}
	}
}
