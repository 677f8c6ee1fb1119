package flatlru

// link is the set of integer types usable as slot indices. The narrower the
// type, the smaller the forward/backward arrays.
type link interface {
	~uint8 | ~uint16 | ~uint32
}

// maxCapacity is the largest capacity addressable by the widest link type.
const maxCapacity = 1 << 32

// PointerWidth returns the number of bits in the narrowest unsigned integer
// type able to index a slot arena of the given capacity. It reports 8, 16 or
// 32; capacities outside (0, 1<<32] are rejected by New, not here.
func PointerWidth(capacity int) int {
	switch {
	case capacity <= 1<<8:
		return 8
	case capacity <= 1<<16:
		return 16
	default:
		return 32
	}
}
