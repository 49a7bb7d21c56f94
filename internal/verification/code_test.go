package verification

import "testing"

func TestNewCode_SixDigits(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		code, err := NewCode()
		if err != nil {
			t.Fatalf("NewCode error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q length = %d, want 6", code, len(code))
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
		seen[code] = true
	}

	// 50 draws colliding down to a single value would mean a broken
	// generator, not bad luck.
	if len(seen) < 2 {
		t.Fatalf("generator produced a single value across 50 draws")
	}
}

func TestKey(t *testing.T) {
	if got := key(ChannelEmail, "a@b.com"); got != "verify:email:a@b.com" {
		t.Fatalf("key = %q", got)
	}
	if got := key(ChannelPhone, "+905551112233"); got != "verify:phone:+905551112233" {
		t.Fatalf("key = %q", got)
	}
}
