package units

import (
	"strconv"
	"strings"
	"testing"
)

func TestBytesToHuman(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
		{1099511627776, "1.00 TB"},
		{1125899906842624, "1.00 PB"},
		{32 * 1024, "32.00 KB"},
	}

	for _, tc := range cases {
		got := BytesToHuman(tc.in)
		if got != tc.want {
			t.Errorf("BytesToHuman(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBytesToHumanUnitSelection(t *testing.T) {
	multipliers := map[string]uint64{
		"KB": 1 << 10,
		"MB": 1 << 20,
		"GB": 1 << 30,
		"TB": 1 << 40,
		"PB": 1 << 50,
	}

	inputs := []uint64{1024, 2047, 999999, 5 << 20, 123456789, 7 << 30, 1 << 42, 3 << 50}
	for _, n := range inputs {
		s := BytesToHuman(n)
		parts := strings.SplitN(s, " ", 2)
		if len(parts) != 2 {
			t.Fatalf("BytesToHuman(%d) = %q: not in '<number> <unit>' form", n, s)
		}

		value, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			t.Fatalf("BytesToHuman(%d) = %q: numeric part unparseable: %v", n, s, err)
		}
		mult, ok := multipliers[parts[1]]
		if !ok {
			t.Fatalf("BytesToHuman(%d) = %q: unexpected unit %q", n, s, parts[1])
		}

		// The chosen unit must be the largest one keeping the value >= 1,
		// and the scaled value must round-trip to roughly the input.
		if value < 1 {
			t.Errorf("BytesToHuman(%d) = %q: scaled value below 1", n, s)
		}
		if value >= 1024 {
			t.Errorf("BytesToHuman(%d) = %q: a larger unit should have been chosen", n, s)
		}
		back := value * float64(mult)
		if back < float64(n)*0.99 || back > float64(n)*1.01 {
			t.Errorf("BytesToHuman(%d) = %q: scales back to %.0f", n, s, back)
		}
	}
}
