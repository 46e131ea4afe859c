package pmp

import (
	"fmt"
	"math/bits"
)

// Range is a half-open byte range [Start, Start+Size).
//
// A zero Size range is empty. Start+Size may wrap past the top of the
// address space, in which case the range still ends at the last byte.
type Range struct {
	Start uint64
	Size  uint64
}

// End is the exclusive end of the range, modulo 2^64.
func (r Range) End() uint64 {
	return r.Start + r.Size
}

// Empty is true if no address is in the range.
func (r Range) Empty() bool {
	return r.Size == 0
}

// Contains is true if Start <= addr < Start+Size.
func (r Range) Contains(addr uint64) bool {
	return addr >= r.Start && addr-r.Start < r.Size
}

func (r Range) String() string {
	return fmt.Sprintf("[0x%x, 0x%x)", r.Start, r.End())
}

// TorRange is the range [prev, addr) of a TOR entry. It is empty when
// addr <= prev.
func TorRange(prev, addr uint64) Range {
	if addr <= prev {
		return Range{Start: prev}
	}

	return Range{Start: prev, Size: addr - prev}
}

// Na4Range is the 4-byte word containing addr.
func Na4Range(addr uint64) Range {
	return Range{Start: addr &^ 0b11, Size: 4}
}

// NapotRange decodes a NAPOT value. The trailing one bits of
// addr|(addr-1) form the size mask; the remaining bits are the base.
//
// NapotRange(0) has a mask of all ones and so a size of 2^64, which wraps
// to an empty range.
func NapotRange(addr uint64) Range {
	ones := addr | (addr - 1)
	mask := uint64(1)<<bits.TrailingZeros64(^ones) - 1

	return Range{Start: addr &^ mask, Size: mask + 1}
}

// ResolveRange computes the range of an entry from its mode, raw address
// and the raw address of the entry below it. OFF entries have no range.
func ResolveRange(mode AddressMode, addr uint64, prev uint64) (r Range, ok bool) {
	switch mode {
	case A_TOR:
		r, ok = TorRange(prev, addr), true
	case A_NA4:
		r, ok = Na4Range(addr), true
	case A_NAPOT:
		r, ok = NapotRange(addr), true
	}

	return
}

// EncodeNa4 returns the raw NA4 value for the word containing addr.
func EncodeNa4(addr uint64) uint64 {
	return addr &^ 0b11
}

// EncodeNapot returns the raw NAPOT value for the region [base, base+size).
// The size must be a power of two of at least 2, and the base aligned to
// twice the size so the bit above the mask is clear.
func EncodeNapot(base, size uint64) (addr uint64, err error) {
	if size < 2 || bits.OnesCount64(size) != 1 {
		err = &ErrRegion{Base: base, Size: size, Err: ErrNapotSize}
		return
	}

	if base&(2*size-1) != 0 {
		err = &ErrRegion{Base: base, Size: size, Err: ErrNapotAlign}
		return
	}

	addr = base | (size - 1)

	return
}
