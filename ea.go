package m68k

// parseEA decodes a 6-bit mode:register field into an Operand, fetching
// whatever extension words that addressing mode requires. size is only
// consulted for mode 7/reg 4 (immediate).
func (info *Info) parseEA(mode, reg uint8, size Size) Operand {
	switch mode {
	case 0: // Dn
		return Operand{Type: OpTypeRegister, AddressMode: AddrRegDirectData, Reg: reg}

	case 1: // An
		return Operand{Type: OpTypeRegister, AddressMode: AddrRegDirectAddr, Reg: reg}

	case 2: // (An)
		return Operand{Type: OpTypeMemory, AddressMode: AddrRegIndirectAddr,
			Mem: MemOperand{BaseReg: reg, HasBase: true}}

	case 3: // (An)+
		return Operand{Type: OpTypeMemory, AddressMode: AddrRegIndirectPostInc,
			Mem: MemOperand{BaseReg: reg, HasBase: true}}

	case 4: // -(An)
		return Operand{Type: OpTypeMemory, AddressMode: AddrRegIndirectPreDec,
			Mem: MemOperand{BaseReg: reg, HasBase: true}}

	case 5: // d16(An)
		disp := info.readSigned16()
		return Operand{Type: OpTypeMemory, AddressMode: AddrRegIndirectDisp,
			Mem: MemOperand{BaseReg: reg, HasBase: true, Disp: disp}}

	case 6: // d8(An,Xn) or full-format indexed
		return info.parseIndexed(reg, false)

	case 7:
		switch reg {
		case 0: // abs.W, sign-extended
			v := info.readSigned16()
			return Operand{Type: OpTypeMemory, AddressMode: AddrAbsShort,
				Mem: MemOperand{Disp: v}}

		case 1: // abs.L
			v := int32(info.read32())
			return Operand{Type: OpTypeMemory, AddressMode: AddrAbsLong,
				Mem: MemOperand{Disp: v}}

		case 2: // d16(PC)
			disp := info.readSigned16()
			return Operand{Type: OpTypeMemory, AddressMode: AddrPCDisp,
				Mem: MemOperand{Disp: disp}}

		case 3: // d8(PC,Xn) or full-format PC-relative indexed
			return info.parseIndexed(reg, true)

		case 4: // #imm, sized
			return info.parseImmediate(size)
		}
	}

	// Unreachable for any mode/reg produced by a 6-bit EA field; defensive
	// fallback only.
	return Operand{Type: OpTypeNone, AddressMode: AddrNone}
}

// parseImmediate reads an immediate operand of the given size.
func (info *Info) parseImmediate(size Size) Operand {
	switch size {
	case Byte:
		return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: uint64(info.read16() & 0xFF)}
	case Word:
		return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: uint64(info.read16())}
	case Long:
		return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: uint64(info.read32())}
	default:
		return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: info.read64()}
	}
}

// Extension-word bit helpers for the indexed addressing modes' brief
// and full formats.
func extFull(ext uint16) bool                 { return ext&0x0100 != 0 }
func extIndexRegisterPresent(ext uint16) bool { return ext&0x0040 == 0 }
func extBaseRegisterPresent(ext uint16) bool  { return ext&0x0080 == 0 }
func extIndexRegister(ext uint16) uint8       { return uint8((ext >> 12) & 7) }
func extIndexIsA(ext uint16) bool             { return ext&0x8000 != 0 }
func extIndexLong(ext uint16) bool            { return ext&0x0800 != 0 }
func extIndexScale(ext uint16) uint8          { return uint8((ext >> 9) & 3) }
func extBaseDispPresent(ext uint16) bool      { return ext&0x30 > 0x10 }
func extBaseDispLong(ext uint16) bool         { return ext&0x30 == 0x30 }
func extOuterDispPresent(ext uint16) bool     { return ext&3 > 1 && ext&0x47 < 0x44 }
func extOuterDispLong(ext uint16) bool        { return ext&3 == 3 && ext&0x47 < 0x44 }

// effectiveZero recognizes the full-format extension-word bit pattern
// that collapses to an effective address of zero. Structurally noted,
// never used to change decoding.
func effectiveZero(ext uint16) bool {
	return ext&0xe4 == 0xc4 || ext&0xe2 == 0xc0
}

// parseIndexed decodes the brief- or full-format indexed addressing
// modes reachable from mode 6 (An-relative) and mode 7/3 (PC-relative).
func (info *Info) parseIndexed(reg uint8, isPC bool) Operand {
	ext := info.read16()

	op := Operand{Type: OpTypeMemory, AddressMode: AddrRegIndirectIndexBaseDisp}
	if isPC {
		op.AddressMode = AddrPCIndexBaseDisp
	}

	if extFull(ext) {
		var mem MemOperand

		if extBaseDispPresent(ext) {
			if extBaseDispLong(ext) {
				mem.InDisp = int32(info.read32())
			} else {
				mem.InDisp = info.readSigned16()
			}
		}
		if extOuterDispPresent(ext) {
			if extOuterDispLong(ext) {
				mem.OutDisp = int32(info.read32())
			} else {
				mem.OutDisp = info.readSigned16()
			}
		}

		if extBaseRegisterPresent(ext) {
			mem.HasBase = true
			if !isPC {
				mem.BaseReg = reg
			}
		}

		if extIndexRegisterPresent(ext) {
			mem.HasIndex = true
			mem.IndexIsA = extIndexIsA(ext)
			mem.IndexReg = extIndexRegister(ext)
			if extIndexLong(ext) {
				mem.IndexSz = IndexLong
			} else {
				mem.IndexSz = IndexWord
			}
			if s := extIndexScale(ext); s != 0 {
				mem.Scale = 1 << s
			} else {
				mem.Scale = 1
			}
		}

		sel := ext & 7
		preIndex := sel > 0 && sel < 4
		postIndex := sel > 4

		switch {
		case preIndex:
			if isPC {
				op.AddressMode = AddrPCMemIndirectPreIndex
			} else {
				op.AddressMode = AddrMemIndirectPreIndex
			}
		case postIndex:
			if isPC {
				op.AddressMode = AddrPCMemIndirectPostIndex
			} else {
				op.AddressMode = AddrMemIndirectPostIndex
			}
		}

		op.Mem = mem
		return op
	}

	// Brief format.
	var mem MemOperand
	mem.HasIndex = true
	mem.IndexIsA = extIndexIsA(ext)
	mem.IndexReg = extIndexRegister(ext)
	if extIndexLong(ext) {
		mem.IndexSz = IndexLong
	} else {
		mem.IndexSz = IndexWord
	}
	if s := extIndexScale(ext); s != 0 {
		mem.Scale = 1 << s
	} else {
		mem.Scale = 1
	}

	mem.HasBase = true
	if isPC {
		if ext&0xff == 0 {
			op.AddressMode = AddrPCIndexBaseDisp
		} else {
			op.AddressMode = AddrPCIndex8
			mem.Disp = signExtend8(uint8(ext & 0xff))
		}
	} else {
		mem.BaseReg = reg
		if ext&0xff == 0 {
			op.AddressMode = AddrRegIndirectIndexBaseDisp
		} else {
			op.AddressMode = AddrRegIndirectIndex8
			mem.Disp = signExtend8(uint8(ext & 0xff))
		}
	}

	op.Mem = mem
	return op
}
