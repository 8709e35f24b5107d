//go:build linux

package devmem

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

func (a *Accessor) access(addr uint32, w Width, write bool, value uint32) (uint32, error) {
	switch w {
	case Width8, Width16, Width32:
	default:
		return 0, fmt.Errorf("devmem: invalid access width %d", int(w))
	}

	pageSize := uint32(unix.Getpagesize())
	offset := addr & (pageSize - 1)
	mapSize := int(pageSize)
	if offset+uint32(w) > pageSize {
		// Access straddles a page boundary; map the next page too.
		mapSize += int(pageSize)
	}

	f, err := os.OpenFile(a.path(), os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrOpen, a.path(), err)
	}
	defer f.Close()

	mem, err := unix.Mmap(int(f.Fd()), int64(addr&^(pageSize-1)), mapSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return 0, fmt.Errorf("%w: %s @ 0x%08X: %v", ErrMap, a.path(), addr, err)
	}

	// The pointer stays private to this call; only the loaded value escapes.
	p := unsafe.Pointer(&mem[offset])
	if write {
		switch w {
		case Width8:
			*(*uint8)(p) = uint8(value)
		case Width16:
			*(*uint16)(p) = uint16(value)
		case Width32:
			atomic.StoreUint32((*uint32)(p), value)
		}
	}
	var result uint32
	switch w {
	case Width8:
		result = uint32(*(*uint8)(p))
	case Width16:
		result = uint32(*(*uint16)(p))
	case Width32:
		result = atomic.LoadUint32((*uint32)(p))
	}

	if err := unix.Munmap(mem); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnmap, err)
	}
	return result, nil
}
