package entities

import "testing"

func TestMaskPlate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"hyphenated plate", "ABC-1234", "ABC-**34"},
		{"compact plate", "abc1234", "ABC**34"},
		{"mercosul plate", "ABC1D23", "ABC**23"},
		{"lowercase with spaces", "  abc-1234  ", "ABC-**34"},
		{"too short passes through", "AB12", "AB12"},
		{"short lowercase uppercased", "ab12", "AB12"},
		{"empty", "", ""},
		{"longer than standard", "ABCD1234", "ABC***34"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaskPlate(tc.in); got != tc.want {
				t.Fatalf("MaskPlate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
