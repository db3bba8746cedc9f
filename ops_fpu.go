package m68k

// fpuDescriptors builds the opcode rows for the 68881/68882 coprocessor
// (FPU) instruction family: the general move/arithmetic dispatch
// (FMOVE, FMOVECR, FMOVEM, and the ~40-entry monadic/dyadic opmode
// table), FBcc/FDBcc/FScc/FTRAPcc, and FRESTORE/FSAVE. FNOP has no
// dedicated encoding of its own — assemblers emit it as FBF (FBcc with
// the never-true condition 0) and a zero displacement, so it falls out
// of the FBcc row below without any special-casing. All of this family
// is 68020+ only.
func fpuDescriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildCpGen() },
		mask:    0xF1C0, match: 0xF000, eaMask: eaData, gate: cpu68020Up,
	})

	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildFpBcc(Word) },
		mask:    0xF1C0, match: 0xF080, gate: cpu68020Up,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildFpBcc(Long) },
		mask:    0xF1C0, match: 0xF0C0, gate: cpu68020Up,
	})

	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildFpDbcc() },
		mask:    0xF1F8, match: 0xF048, gate: cpu68020Up,
	})

	// FTRAPcc: no/word/long operand, most specific first (same pattern
	// as the integer TRAPcc rows in ops_ctrl.go).
	for _, row := range []struct {
		match uint16
		size  Size
	}{
		{0xF07C, None}, {0xF07A, Word}, {0xF07B, Long},
	} {
		row := row
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildFpTrapcc(row.size) },
			mask:    0xF1FF, match: uint32(row.match), gate: cpu68020Up,
		})
	}

	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildFpScc() },
		mask:    0xF1C0, match: 0xF040, eaMask: eaDataAlterable, gate: cpu68020Up,
	})

	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEA(FRESTORE, Long) },
		mask:    0xF1C0, match: 0xF140, eaMask: eaControl, gate: cpu68020Up,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEA(FSAVE, Long) },
		mask:    0xF1C0, match: 0xF100, eaMask: eaControl, gate: cpu68020Up,
	})

	return d
}

// fpuOpmode maps the cpgen extension word's 6-bit opmode field (after
// masking off the s/d precision-select trick, see buildCpGen) to its
// mnemonic. 0x12 (FTENTOX) has no corresponding entry in this package's
// mnemonic set and decodes as an unknown opcode, same as any opmode
// value the switch leaves unmapped.
var fpuOpmode = map[uint8]Opcode{
	0x00: FMOVE,
	0x01: FINT,
	0x02: FSINH,
	0x03: FINTRZ,
	0x04: FSQRT,
	0x06: FLOGNP1,
	0x08: FETOXM1,
	0x09: FATANH, // same mnemonic as 0x0d; the duplicate is kept as-is
	0x0a: FATAN,
	0x0c: FASIN,
	0x0d: FATANH,
	0x0e: FSIN,
	0x0f: FTAN,
	0x10: FETOX,
	0x11: FTWOTOX,
	0x14: FLOGN,
	0x15: FLOG10,
	0x16: FLOG2,
	0x18: FABS,
	0x19: FCOSH,
	0x1a: FNEG,
	0x1c: FACOS,
	0x1d: FCOS,
	0x1e: FGETEXP,
	0x1f: FGETMAN,
	0x20: FDIV,
	0x21: FMOD,
	0x22: FADD,
	0x23: FMUL,
	0x24: FSGLDIV,
	0x25: FREM,
	0x26: FSCALE,
	0x27: FSGLMUL,
	0x28: FSUB,
	0x38: FCMP,
	0x3a: FTST,
}

// fpuDyadicOnly names the opmodes whose src==dst,rm==0 encoding is still
// a genuine two-operand instruction rather than the single-register
// shorthand every other monadic opmode collapses to.
var fpuDyadicOnly = map[uint8]bool{
	0x00: true, // FMOVE
	0x20: true, // FDIV
	0x22: true, // FADD
	0x23: true, // FMUL
	0x24: true, // FSGLDIV
	0x28: true, // FSUB
	0x38: true, // FCMP
}

// fpuEASize maps the cpgen extension word's rm=1 source-size code (bits
// 12..10) to the FPUSize it selects, which parseFPUEA uses to read an
// immediate operand of that width.
var fpuEASize = map[uint8]FPUSize{
	0x00: FPULong,
	0x01: FPUSingle,
	0x02: FPUExtended,
	0x03: FPUPacked,
	0x04: FPUWord,
	0x05: FPUDouble,
	0x06: FPUByte,
}

// buildCpGen implements the FPU general-instruction dispatch: read the
// extension word, special-case FMOVECR and the FMOVEM/FMOVE-to-system-
// register sub-forms, then fall through to the monadic/dyadic opmode
// table.
func (info *Info) buildCpGen() {
	ext := info.read16()

	rm := ext&0x4000 != 0
	src := uint8((ext >> 10) & 7)
	dst := uint8((ext >> 7) & 7)
	opmode := uint8(ext & 0x3f)

	if info.ir&0x3f == 0 && ext&0xFC00 == 0x5C00 {
		info.buildFMoveCR(ext)
		return
	}

	switch (ext >> 13) & 7 {
	case 4, 5:
		info.buildFMoveSysReg(ext)
		return
	case 6, 7:
		info.buildFMovem(ext)
		return
	}

	if opmode&0x38 == 0x30 { // FSINCOS <ea>,FPc:FPs — distinct from the plain opmode table.
		info.buildFSinCos(rm, src, dst, opmode)
		return
	}

	// bit6 set marks one of the single/double-rounded monadic forms; bit2
	// of opmode then selects precision rather than naming a distinct
	// opcode, so the switch below keys off opmode with bit2 masked out.
	lookupOpmode := opmode
	fsize := FPUExtended
	if ext&0x40 != 0 {
		lookupOpmode &^= 4
		if opmode&4 != 0 {
			fsize = FPUDouble
		} else {
			fsize = FPUSingle
		}
	}

	op, ok := fpuOpmode[lookupOpmode]
	if !ok {
		info.emitInvalid(ErrUnknownOpcode)
		return
	}

	if !rm && src == dst && !fpuDyadicOnly[lookupOpmode] {
		info.initOpFPU(op, 1, fsize)
		info.insn.Ext.Operands[0] = fpReg(dst)
		return
	}

	var srcOp Operand
	if rm {
		esize, known := fpuEASize[src]
		if known {
			fsize = esize
		} else {
			fsize = FPUExtended
		}
		srcOp = info.parseFPUEA(info.irMode3(), info.irReg0(), fsize)
	} else {
		srcOp = fpReg(src)
	}

	info.initOpFPU(op, 2, fsize)
	info.insn.Ext.Operands[0] = srcOp
	info.insn.Ext.Operands[1] = fpReg(dst)
}

// buildFMoveCR: FMOVECR #rom_offset,FPn — a constant-ROM load, distinct
// from every other cpgen shape in that its single "source" is an
// immediate ROM index rather than an EA or FPn.
func (info *Info) buildFMoveCR(ext uint16) {
	info.initOpFPU(FMOVECR, 2, FPUExtended)
	info.insn.Ext.Operands[0] = immOperand(uint64(ext & 0x3f))
	info.insn.Ext.Operands[1] = fpReg(uint8((ext >> 7) & 7))
}

// buildFMoveSysReg: FMOVE to/from FPCR/FPSR/FPIAR, direction and
// register selector carried entirely in the extension word; the EA
// lives in ir same as every other cpgen shape.
func (info *Info) buildFMoveSysReg(ext uint16) {
	regsel := (ext >> 10) & 7
	toEA := ext&0x2000 == 0 // dir bit clear: EA is the source, control register is the destination

	var reg specialReg
	switch {
	case regsel&4 != 0:
		reg = RegFPCR
	case regsel&2 != 0:
		reg = RegFPSR
	default:
		reg = RegFPIAR
	}

	ea := info.parseEA(info.irMode3(), info.irReg0(), Long)
	special := Operand{Type: OpTypeRegister, AddressMode: AddrNone, Reg: uint8(reg)}

	info.initOp(FMOVE, 2, Long)
	if toEA {
		info.insn.Ext.Operands[0] = ea
		info.insn.Ext.Operands[1] = special
	} else {
		info.insn.Ext.Operands[0] = special
		info.insn.Ext.Operands[1] = ea
	}
}

// buildFMovem: FMOVEM to/from the FP register file, static or dynamic
// (Dn-selected) register list, direction carried in the extension word.
func (info *Info) buildFMovem(ext uint16) {
	dir := ext&0x2000 != 0 // set: reglist -> ea ; clear: ea -> reglist
	mode := (ext >> 11) & 3
	reglist := uint32(ext & 0xff)

	ea := info.parseEA(info.irMode3(), info.irReg0(), Long)

	var regOp Operand
	switch mode {
	case 1: // dynamic list in Dn
		regOp = dataReg(uint8((reglist >> 4) & 7))
	case 2: // static list, reversed bit order
		regOp = Operand{Type: OpTypeRegisterBits, RegisterBits: uint32(reverseBits8(uint8(reglist)))}
	default: // static list
		regOp = Operand{Type: OpTypeRegisterBits, RegisterBits: reglist}
	}

	info.initOp(FMOVEM, 2, Long)
	if dir {
		info.insn.Ext.Operands[0] = regOp
		info.insn.Ext.Operands[1] = ea
	} else {
		info.insn.Ext.Operands[0] = ea
		info.insn.Ext.Operands[1] = regOp
	}
}

// buildFSinCos: FSINCOS <ea>,FPc:FPs — opmode bits 5..3 fixed to 110,
// the cos destination in opmode's low 3 bits, the sin destination in
// the ordinary dst field.
func (info *Info) buildFSinCos(rm bool, src, dst, opmode uint8) {
	fpCos := opmode & 7

	var srcOp Operand
	if rm {
		fsize, known := fpuEASize[src]
		if !known {
			fsize = FPUExtended
		}
		srcOp = info.parseFPUEA(info.irMode3(), info.irReg0(), fsize)
	} else {
		srcOp = fpReg(src)
	}

	info.initOpFPU(FSINCOS, 3, FPUExtended)
	info.insn.Ext.Operands[0] = srcOp
	info.insn.Ext.Operands[1] = fpReg(fpCos)
	info.insn.Ext.Operands[2] = fpReg(dst)
}

// buildFpBcc: FBcc, 16- or 32-bit PC-relative displacement, 6-bit FPU
// condition carried in ir's low 6 bits (wider than the integer
// Condition range but stored in the same uint8-backed field).
func (info *Info) buildFpBcc(size Size) {
	base := info.pc
	var disp int32
	if size == Long {
		disp = info.readSigned32()
	} else {
		disp = info.readSigned16()
	}
	info.buildBxx(FBcc, size, int32(base)+disp, Condition(info.ir&0x3f))
}

// buildFpDbcc: FDBcc Dn, displacement — word-only, condition word plus
// a separate word displacement (unlike FBcc, which has no Dn and folds
// the condition into ir itself).
func (info *Info) buildFpDbcc() {
	base := info.pc
	condExt := info.read16()
	disp := info.readSigned16()
	info.buildDbxx(FDBcc, int32(base)+2+disp, Condition(condExt&0x3f))
}

// buildFpTrapcc: FTRAPcc with zero, word, or long trailing extension
// words. Unlike the integer TRAPcc family, the condition itself is not
// part of ir — it's the low 6 bits of the first extension word, read
// before any operand word.
func (info *Info) buildFpTrapcc(size Size) {
	condExt := info.read16()
	switch size {
	case Word:
		v := info.read16()
		info.initOp(FTRAPcc, 1, Word)
		info.insn.Ext.Operands[0] = immOperand(uint64(v))
	case Long:
		v := info.read32()
		info.initOp(FTRAPcc, 1, Long)
		info.insn.Ext.Operands[0] = immOperand(uint64(v))
	default:
		info.initOp(FTRAPcc, 0, None)
	}
	info.insn.Cond = Condition(condExt & 0x3f)
	info.insn.addGroup(GroupJump)
}

// buildFpScc: FScc <ea> — condition occupies bits 5..0 of the trailing
// extension word (unlike the plain integer Scc, whose condition lives
// in ir itself), and the EA comes from ir's mode/reg fields as usual.
func (info *Info) buildFpScc() {
	ext := info.read16()
	ea := info.parseEA(info.irMode3(), info.irReg0(), Byte)
	info.initOp(FScc, 1, Byte)
	info.insn.Ext.Operands[0] = ea
	info.insn.Cond = Condition(ext & 0x3f)
}

// parseFPUEA: like parseEA, but the immediate-mode case reads an
// FPU-sized literal (2/4/8/12 bytes) instead of the integer 1/2/4-byte
// shapes parseImmediate covers. Every other mode is shape-only (no
// payload read), so it delegates straight to parseEA.
func (info *Info) parseFPUEA(mode, reg uint8, fsize FPUSize) Operand {
	if mode == 7 && reg == 4 {
		return info.parseFPUImmediate(fsize)
	}
	return info.parseEA(mode, reg, Long)
}

// parseFPUImmediate reads a sized floating-point literal. Extended and
// packed literals are 96 bits on the wire; this package's Operand.Imm
// is 64 bits, so for those two sizes the low 64 bits are kept and the
// leading 32 bits are still consumed (advancing pc correctly) but
// discarded — a documented simplification, not a decode-correctness
// gap (the addressing-mode shape and operand count are unaffected).
func (info *Info) parseFPUImmediate(fsize FPUSize) Operand {
	switch fsize {
	case FPUByte:
		return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: uint64(info.read16() & 0xFF)}
	case FPUWord:
		return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: uint64(info.read16())}
	case FPULong, FPUSingle:
		return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: uint64(info.read32())}
	case FPUDouble:
		return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: info.read64()}
	default: // FPUExtended, FPUPacked: 96 bits total.
		_ = info.read32()
		return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: info.read64()}
	}
}
