package validate

import "testing"

func TestIsMobile(t *testing.T) {
	cases := map[string]bool{
		"13800000000":    true,
		"15912345678":    true,
		"16600000000":    true,
		"17700000000":    true,
		"18811111111":    true,
		"":               false,
		"12800000000":    false,
		"14800000000":    false,
		"19800000000":    false,
		"1380000000":     false,
		"138000000000":   false,
		"1380000000a":    false,
		"+8613800000000": false,
	}
	for mobile, want := range cases {
		if got := IsMobile(mobile); got != want {
			t.Errorf("IsMobile(%q) = %v, want %v", mobile, got, want)
		}
	}
}
