//go:build !linux

package devmem

import "fmt"

func (a *Accessor) access(addr uint32, w Width, write bool, value uint32) (uint32, error) {
	return 0, fmt.Errorf("devmem: physical memory access unsupported on this platform")
}
