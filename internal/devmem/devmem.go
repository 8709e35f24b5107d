// Package devmem performs single register reads and writes against physical
// memory through /dev/mem.
//
// Each access opens the device, maps the page (or two, when the access
// straddles a page boundary) containing the target address, performs the
// store and/or load, then unmaps and closes again. No handle or mapping
// outlives one call.
package devmem

import "errors"

// DefaultPath is the physical memory device used when none is configured.
const DefaultPath = "/dev/mem"

// Width is the size in bytes of a single volatile access.
type Width int

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
)

var (
	ErrOpen  = errors.New("devmem: cannot open memory device")
	ErrMap   = errors.New("devmem: cannot map memory")
	ErrUnmap = errors.New("devmem: cannot unmap memory")
)

// Accessor reads and writes physical memory one access at a time.
type Accessor struct {
	// Path overrides the memory device; DefaultPath when empty.
	Path string
}

func (a *Accessor) path() string {
	if a.Path == "" {
		return DefaultPath
	}
	return a.Path
}

// Read performs a single volatile load of w bytes at the physical address.
func (a *Accessor) Read(addr uint32, w Width) (uint32, error) {
	return a.access(addr, w, false, 0)
}

// Write performs a single volatile store of v, truncated to w bytes, at the
// physical address, followed by a readback load of the same width.
func (a *Accessor) Write(addr uint32, w Width, v uint32) (uint32, error) {
	return a.access(addr, w, true, v)
}

// ReadReg reads a 32-bit register.
func (a *Accessor) ReadReg(addr uint32) (uint32, error) {
	return a.Read(addr, Width32)
}

// WriteReg writes a 32-bit register.
func (a *Accessor) WriteReg(addr uint32, v uint32) error {
	_, err := a.Write(addr, Width32, v)
	return err
}
