package m68k

// Info is the per-decode context. It is created fresh for every call to
// Decode and holds no state across calls.
type Info struct {
	code        []byte
	codeLen     uint32
	baseAddress uint32
	pc          uint32 // absolute address of the next extension word
	addressMask uint32
	cpuType     CPUType

	ir uint16 // current opcode word

	insn *Instruction

	err DecodeError
}

// DecodeError names the failure taxonomy. All of them collapse to the
// same Invalid-instruction behavior; the tag exists so a caller (or a
// test) can distinguish the cause without the core signalling it
// out-of-band as a Go error.
type DecodeError uint8

const (
	ErrNone DecodeError = iota
	ErrUnknownOpcode
	ErrBadSecondWord
	ErrCpuMismatch
	ErrTruncated
)

// sentinel16/32/64 are the repeating-nibble patterns returned for
// out-of-range reads.
const (
	sentinel16 = 0xAAAA
	sentinel32 = 0xAAAAAAAA
	sentinel64 = 0xAAAAAAAAAAAAAAAA
)

// offset computes (addr - baseAddress) & address_mask, the single
// formula every fetch funnels through.
func (info *Info) offset(addr uint32) uint32 {
	return (addr - info.baseAddress) & info.addressMask
}

// peek16 reads a big-endian 16-bit value at addr without advancing pc.
// Out-of-range reads return sentinel16 and mark the decode Truncated.
func (info *Info) peek16(addr uint32) uint16 {
	off := info.offset(addr)
	if off > info.codeLen-2 || info.codeLen < 2 {
		info.markTruncated()
		return sentinel16
	}
	return uint16(info.code[off])<<8 | uint16(info.code[off+1])
}

// peek32 reads a big-endian 32-bit value at addr without advancing pc.
func (info *Info) peek32(addr uint32) uint32 {
	off := info.offset(addr)
	if off > info.codeLen-4 || info.codeLen < 4 {
		info.markTruncated()
		return sentinel32
	}
	b := info.code[off : off+4]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// peek64 reads a big-endian 64-bit value at addr without advancing pc.
func (info *Info) peek64(addr uint32) uint64 {
	off := info.offset(addr)
	if off > info.codeLen-8 || info.codeLen < 8 {
		info.markTruncated()
		return sentinel64
	}
	b := info.code[off : off+8]
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// read16 reads a 16-bit value at pc and advances pc by 2.
func (info *Info) read16() uint16 {
	v := info.peek16(info.pc)
	info.pc += 2
	return v
}

// read32 reads a 32-bit value at pc and advances pc by 4.
func (info *Info) read32() uint32 {
	v := info.peek32(info.pc)
	info.pc += 4
	return v
}

// read64 reads a 64-bit value at pc and advances pc by 8.
func (info *Info) read64() uint64 {
	v := info.peek64(info.pc)
	info.pc += 8
	return v
}

// readSigned16 reads the next word as a sign-extended 32-bit value and
// advances pc by 2.
func (info *Info) readSigned16() int32 {
	return int32(int16(info.read16()))
}

func (info *Info) readSigned32() int32 {
	return int32(info.read32())
}

// markTruncated records that a fetch ran past the buffer end.
// Subsequent reads keep returning the sentinel so a partially-decoded
// instruction never reads past the buffer; the driver is responsible
// for clamping the consumed byte count before reporting it.
func (info *Info) markTruncated() {
	if info.err == ErrNone {
		info.err = ErrTruncated
	}
}

// signExtend8 sign-extends an 8-bit value into an int32.
func signExtend8(v uint8) int32 { return int32(int8(v)) }

// signExtend16 sign-extends a 16-bit value into an int32.
func signExtend16(v uint16) int32 { return int32(int16(v)) }
