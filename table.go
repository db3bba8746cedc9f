package m68k

import (
	"math/bits"
	"sort"
	"sync"
)

// opcodeDescriptor is the static table row: a handler gated by a
// mask/match pair on the opcode word, an EA-validity mask, and an
// optional second-word mask/match pair for two-word instructions whose
// extension word has restricted valid bit patterns. handler is a
// closure over a shape builder plus mnemonic and size, rather than a
// bare function pointer.
type opcodeDescriptor struct {
	handler func(*Info)
	mask    uint32
	match   uint32

	eaMask uint16 // 0 = no EA field to validate against this row

	// destEAMask validates a reconstructed destination EA field (used
	// only by MOVE, whose destination field is swapped out of ir bits
	// 11..6).
	destEAMask uint16

	mask2  uint32
	match2 uint32

	// gate restricts this row to a CPU-variant bitflag set; zero means
	// every CPU variant this table was built for. Checked at decode
	// time, not at table-build time, since the table is shared across
	// every Decoder regardless of CPU.
	gate CPUType
}

// EA-class bits, one per addressing-mode category, ordered by raw
// mode:register value 0x00..0x3c.
const (
	eaDn        uint16 = 1 << 0 // 0x00-0x07
	eaAn        uint16 = 1 << 1 // 0x08-0x0f
	eaAnInd     uint16 = 1 << 2 // 0x10-0x17 (An)
	eaAnPostInc uint16 = 1 << 3 // 0x18-0x1f (An)+
	eaAnPreDec  uint16 = 1 << 4 // 0x20-0x27 -(An)
	eaAnDisp    uint16 = 1 << 5 // 0x28-0x2f d16(An)
	eaAnIndex   uint16 = 1 << 6 // 0x30-0x37 d8(An,Xn) / full
	eaAbsShort  uint16 = 1 << 7 // 0x38
	eaAbsLong   uint16 = 1 << 8 // 0x39
	eaPCDisp    uint16 = 1 << 9 // 0x3a
	eaPCIndex   uint16 = 1 << 10 // 0x3b
	eaImm       uint16 = 1 << 11 // 0x3c
)

const (
	eaMemoryAlterable = eaAnInd | eaAnPostInc | eaAnPreDec | eaAnDisp | eaAnIndex | eaAbsShort | eaAbsLong
	eaDataAlterable   = eaDn | eaMemoryAlterable
	eaAlterable       = eaDataAlterable | eaAn
	eaControl         = eaAnInd | eaAnDisp | eaAnIndex | eaAbsShort | eaAbsLong | eaPCDisp | eaPCIndex
	eaData            = eaDn | eaMemoryAlterable | eaPCDisp | eaPCIndex | eaImm
	eaAll             = eaData | eaAn
)

// eaFieldBit maps a raw 6-bit mode:register EA field to its category
// bit, or 0 if the field is architecturally unused (mode 7, reg 5-7).
func eaFieldBit(field uint16) uint16 {
	mode := field >> 3
	reg := field & 7
	switch mode {
	case 0:
		return eaDn
	case 1:
		return eaAn
	case 2:
		return eaAnInd
	case 3:
		return eaAnPostInc
	case 4:
		return eaAnPreDec
	case 5:
		return eaAnDisp
	case 6:
		return eaAnIndex
	case 7:
		switch reg {
		case 0:
			return eaAbsShort
		case 1:
			return eaAbsLong
		case 2:
			return eaPCDisp
		case 3:
			return eaPCIndex
		case 4:
			return eaImm
		}
	}
	return 0
}

// eaAllowed reports whether the 6-bit field at ir bits 5..0 is permitted
// by the given class mask. A zero mask means "no restriction".
func eaAllowed(mask uint16, ir uint16) bool {
	if mask == 0 {
		return true
	}
	return eaFieldBit(ir&0x3f)&mask != 0
}

// moveDestField reconstructs the destination EA field from a MOVE
// opcode word: ir bits 11..9 become the register, ir bits 8..6 become
// the mode.
func moveDestField(ir uint16) uint16 {
	return (ir>>9)&7 | (ir>>3)&0x38
}

// tableEntry is the immutable, process-wide dispatch table row.
type tableEntry struct {
	handler func(*Info)
	mask2   uint32
	match2  uint32
}

var (
	dispatchTable     [65536]tableEntry
	dispatchTableOnce sync.Once
)

// ensureDispatchTable lazily builds the 65536-entry table exactly once,
// safe under concurrent first calls: sync.Once.Do provides the
// happens-before guarantee needed before the table becomes observable
// to other goroutines.
func ensureDispatchTable() {
	dispatchTableOnce.Do(buildDispatchTable)
}

// buildDispatchTable sorts the combined descriptor list by descending
// popcount of mask, so more-specific patterns are consulted first, and
// fills every opcode slot by first-match-wins, defaulting to the
// invalid handler.
func buildDispatchTable() {
	all := allDescriptors()

	sort.SliceStable(all, func(i, j int) bool {
		return bits.OnesCount32(all[i].mask) > bits.OnesCount32(all[j].mask)
	})

	for op := 0; op < 65536; op++ {
		dispatchTable[op] = tableEntry{handler: (*Info).handleInvalidOpcode}

		w := uint16(op)
		for i := range all {
			d := &all[i]
			if uint32(w)&d.mask != d.match {
				continue
			}
			if !eaAllowed(d.eaMask, w) {
				continue
			}
			if d.destEAMask != 0 && !eaAllowed(d.destEAMask, moveDestField(w)) {
				continue
			}
			h := d.handler
			if d.gate != 0 {
				allowed, inner := d.gate, h
				h = func(info *Info) {
					if !info.gate(allowed) {
						info.emitInvalid(ErrCpuMismatch)
						return
					}
					inner(info)
				}
			}
			dispatchTable[op] = tableEntry{handler: h, mask2: d.mask2, match2: d.match2}
			break
		}
	}
}

// handleInvalidOpcode is the default dispatch-table handler: no
// descriptor matched the opcode word.
func (info *Info) handleInvalidOpcode() {
	info.emitInvalid(ErrUnknownOpcode)
}

// allDescriptors concatenates every per-family descriptor list, split
// across ops_*.go files one family per file.
func allDescriptors() []opcodeDescriptor {
	var all []opcodeDescriptor
	all = append(all, moveDescriptors()...)
	all = append(all, arithDescriptors()...)
	all = append(all, logicDescriptors()...)
	all = append(all, bitDescriptors()...)
	all = append(all, bcdDescriptors()...)
	all = append(all, branchDescriptors()...)
	all = append(all, ctrlDescriptors()...)
	all = append(all, op020Descriptors()...)
	all = append(all, fpuDescriptors()...)
	return all
}
