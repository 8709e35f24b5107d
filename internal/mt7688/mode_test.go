package mt7688

import (
	"errors"
	"testing"
)

func TestBaseFreq(t *testing.T) {
	cases := []struct {
		mode Mode
		want uint32
	}{
		{ClkSel40MHz | ClkDiv1, 40_000_000},
		{ClkSel40MHz | ClkDiv8, 5_000_000},
		{ClkSel40MHz | ClkDiv128, 312_500},
		{ClkSel100KHz | ClkDiv1, 100_000},
		{ClkSel100KHz | ClkDiv2, 50_000},
		{ClkSel100KHz | ClkDiv128, 781},
	}
	for _, c := range cases {
		if got := c.mode.BaseFreq(); got != c.want {
			t.Errorf("BaseFreq(0x%02X)=%d want %d", uint16(c.mode), got, c.want)
		}
	}
}

func TestSelectMode_PrefersFinestResolution(t *testing.T) {
	cases := []struct {
		freq uint32
		want Mode
	}{
		// 40 MHz / 1000 = 40000 ticks, fits the first candidate.
		{1000, ClkSel40MHz | ClkDiv1},
		// 40 MHz / 611 = 65466 still fits; 40 MHz / 610 = 65573 does not,
		// so 610 Hz falls through to the next divider.
		{611, ClkSel40MHz | ClkDiv1},
		{610, ClkSel40MHz | ClkDiv2},
		// 40/20/10 MHz all overflow at 300 Hz; 10 MHz / 300 = 33333 fits.
		{300, ClkSel40MHz | ClkDiv4},
		// Every 40 MHz divider overflows at 2 Hz; the slow source fits
		// immediately (100 kHz / 2 = 50000).
		{2, ClkSel100KHz | ClkDiv1},
		// 100 kHz / 1 = 100000 overflows; 50 kHz / 1 = 50000 fits.
		{1, ClkSel100KHz | ClkDiv2},
		// Above the fast clock the period rounds to zero ticks and the first
		// candidate is taken (the programmer then disables the channel).
		{80_000_000, ClkSel40MHz | ClkDiv1},
	}
	for _, c := range cases {
		got, err := SelectMode(c.freq)
		if err != nil {
			t.Errorf("SelectMode(%d) error: %v", c.freq, err)
			continue
		}
		if got != c.want {
			t.Errorf("SelectMode(%d)=0x%02X want 0x%02X", c.freq, uint16(got), uint16(c.want))
		}
	}
}

func TestSelectMode_EveryResultFits(t *testing.T) {
	for freq := uint32(1); freq <= 2000; freq++ {
		m, err := SelectMode(freq)
		if err != nil {
			t.Fatalf("SelectMode(%d) error: %v", freq, err)
		}
		if m.BaseFreq()/freq >= 0xFFFF {
			t.Fatalf("SelectMode(%d)=0x%02X overflows the duration counter", freq, uint16(m))
		}
		// First-fit: every earlier candidate must overflow.
		for _, earlier := range modeOrder {
			if earlier == m {
				break
			}
			if earlier.BaseFreq()/freq < 0xFFFF {
				t.Fatalf("SelectMode(%d)=0x%02X but earlier candidate 0x%02X fits",
					freq, uint16(m), uint16(earlier))
			}
		}
	}
}

func TestFits_RejectsExactCounterCapacity(t *testing.T) {
	if fits(0xFFFF, 1) {
		t.Errorf("fits(0xFFFF, 1)=true, a full-capacity period must be rejected")
	}
	if !fits(0xFFFE, 1) {
		t.Errorf("fits(0xFFFE, 1)=false want true")
	}
}

func TestSelectMode_ZeroFrequency(t *testing.T) {
	if _, err := SelectMode(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SelectMode(0) error=%v want ErrOutOfRange", err)
	}
}
