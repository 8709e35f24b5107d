// Package mt7688 programs the PWM block of the MediaTek MT7688 (the SoC on
// the Onion Omega2).
package mt7688

// NumChannels is the number of PWM channels the block exposes.
const NumChannels = 4

// PWM register addresses. RegEnable is shared, one enable bit per channel;
// the rest repeat every 0x40 bytes for channels 0..3 (pass them through
// ChannelReg). DataWidth, Thresh and SendWaveNum belong to the block's
// data-transmission mode and are never written by this tool.
const (
	RegEnable uint32 = 0x10005000

	RegCon         uint32 = 0x10005010
	RegHDuration   uint32 = 0x10005014
	RegLDuration   uint32 = 0x10005018
	RegGDuration   uint32 = 0x1000501C
	RegSendData0   uint32 = 0x10005030
	RegSendData1   uint32 = 0x10005034
	RegWaveNum     uint32 = 0x10005038
	RegDataWidth   uint32 = 0x1000503C
	RegThresh      uint32 = 0x10005040
	RegSendWaveNum uint32 = 0x10005044
)

const channelStride = 0x40

// ChannelReg returns a channel's copy of a per-channel register.
func ChannelReg(base uint32, channel int) uint32 {
	return base + channelStride*uint32(channel)
}
