package surface

// Op selects how drawn pixels combine with the destination.
type Op uint8

const (
	OpCopy Op = iota
	OpInvert
	OpXor
)

func (o Op) String() string {
	switch o {
	case OpCopy:
		return "copy"
	case OpInvert:
		return "invert"
	case OpXor:
		return "xor"
	default:
		return "unknown"
	}
}

func (o Op) apply(dst, src uint8) uint8 {
	switch o {
	case OpInvert:
		if src == Off {
			return dst
		}
		return ^dst
	case OpXor:
		return dst ^ src
	default:
		return src
	}
}
