package mt7688

import "errors"

// Mode selects the clock source and divider for a PWM channel, as written
// into the low bits of the channel's control register. Bit 3 picks the
// 40 MHz reference over the 100 kHz one; bits 2..0 hold the power-of-two
// divider shift.
type Mode uint16

const (
	ClkSel100KHz Mode = 0x0
	ClkSel40MHz  Mode = 0x8

	ClkDiv1   Mode = 0x0
	ClkDiv2   Mode = 0x1
	ClkDiv4   Mode = 0x2
	ClkDiv8   Mode = 0x3
	ClkDiv16  Mode = 0x4
	ClkDiv32  Mode = 0x5
	ClkDiv64  Mode = 0x6
	ClkDiv128 Mode = 0x7
)

const (
	slowClockHz = 100_000
	fastClockHz = 40_000_000

	divMask = 0x7

	// maxCounter is the capacity of the 16-bit half-period duration counters.
	maxCounter = 0xFFFF
)

// BaseFreq returns the counting frequency the mode produces: the selected
// reference clock divided down by the divider field.
func (m Mode) BaseFreq() uint32 {
	src := uint32(slowClockHz)
	if m&ClkSel40MHz != 0 {
		src = fastClockHz
	}
	return src >> uint(m&divMask)
}

// ErrOutOfRange is returned when no clock source and divider can represent
// the requested frequency within the duration counters.
var ErrOutOfRange = errors.New("mt7688: frequency out of range")

// modeOrder lists every selectable mode, finest timing resolution first.
// SelectMode takes the first fit, so the order is part of the contract.
var modeOrder = []Mode{
	ClkSel40MHz | ClkDiv1,
	ClkSel40MHz | ClkDiv2,
	ClkSel40MHz | ClkDiv4,
	ClkSel40MHz | ClkDiv8,
	ClkSel40MHz | ClkDiv16,
	ClkSel40MHz | ClkDiv32,
	ClkSel40MHz | ClkDiv64,
	ClkSel40MHz | ClkDiv128,
	ClkSel100KHz | ClkDiv1,
	ClkSel100KHz | ClkDiv2,
	ClkSel100KHz | ClkDiv4,
	ClkSel100KHz | ClkDiv8,
	ClkSel100KHz | ClkDiv16,
	ClkSel100KHz | ClkDiv32,
	ClkSel100KHz | ClkDiv64,
	ClkSel100KHz | ClkDiv128,
}

// fits reports whether a full period of freqHz at baseFreq stays inside the
// duration counters. Strictly below the counter capacity: a period of
// exactly maxCounter ticks is rejected.
func fits(baseFreq, freqHz uint32) bool {
	return baseFreq/freqHz < maxCounter
}

// SelectMode picks the clock mode for a target output frequency: the first
// mode in modeOrder whose period fits the duration counters.
func SelectMode(freqHz uint32) (Mode, error) {
	if freqHz == 0 {
		return 0, ErrOutOfRange
	}
	for _, m := range modeOrder {
		if fits(m.BaseFreq(), freqHz) {
			return m, nil
		}
	}
	return 0, ErrOutOfRange
}
