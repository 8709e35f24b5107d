package mt7688

import "fmt"

// RegIO is the register access the programmer needs. devmem.Accessor
// satisfies it on hardware; tests substitute a recording fake.
type RegIO interface {
	ReadReg(addr uint32) (uint32, error)
	WriteReg(addr uint32, v uint32) error
}

const (
	// conFixedBits is always set in the control word alongside the clock mode.
	conFixedBits = 0x7000

	// sendDataPattern alternates the output each half-period tick.
	sendDataPattern = 0x55555555
)

// Program configures one PWM channel for the given frequency and duty cycle.
// freqHz == 0 disables the channel without touching anything else. A duty of
// 0 or 100 leaves one half of the period empty, which also ends in the
// channel being disabled.
func Program(dev RegIO, channel int, freqHz, dutyPercent uint32) error {
	if channel < 0 || channel >= NumChannels {
		return fmt.Errorf("mt7688: invalid channel %d", channel)
	}
	if dutyPercent > 100 {
		return fmt.Errorf("mt7688: invalid duty %d%%", dutyPercent)
	}
	if freqHz == 0 {
		return Disable(dev, channel)
	}

	mode, err := SelectMode(freqHz)
	if err != nil {
		return err
	}
	duration := mode.BaseFreq() / freqHz
	durationH := duration * dutyPercent / 100
	durationL := duration * (100 - dutyPercent) / 100
	return programRaw(dev, channel, mode, durationH, durationL)
}

// Disable clears the channel's enable bit and touches no other register.
func Disable(dev RegIO, channel int) error {
	if channel < 0 || channel >= NumChannels {
		return fmt.Errorf("mt7688: invalid channel %d", channel)
	}
	enable, err := dev.ReadReg(RegEnable)
	if err != nil {
		return err
	}
	return dev.WriteReg(RegEnable, enable&^(1<<uint(channel)))
}

// programRaw issues the register sequence for one channel. The channel is
// disabled before anything else is written and re-enabled only once the full
// configuration is in place, so a failure partway through never leaves an
// enabled channel with a half-written setup.
func programRaw(dev RegIO, channel int, mode Mode, durationH, durationL uint32) error {
	if err := Disable(dev, channel); err != nil {
		return err
	}
	if durationH == 0 || durationL == 0 {
		// Zero-length half-period: the channel stays disabled.
		return nil
	}

	// Duration counters are zero-based. Both halves are at least 1 here, so
	// the guard duration cannot underflow.
	writes := []struct {
		base  uint32
		value uint32
	}{
		{RegCon, conFixedBits | uint32(mode)},
		{RegHDuration, durationH - 1},
		{RegLDuration, durationL - 1},
		{RegGDuration, (durationH+durationL)/2 - 1},
		{RegSendData0, sendDataPattern},
		{RegSendData1, sendDataPattern},
		{RegWaveNum, 0},
	}
	for _, w := range writes {
		if err := dev.WriteReg(ChannelReg(w.base, channel), w.value); err != nil {
			return err
		}
	}

	enable, err := dev.ReadReg(RegEnable)
	if err != nil {
		return err
	}
	return dev.WriteReg(RegEnable, enable|1<<uint(channel))
}
