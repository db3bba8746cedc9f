package m68k

// moveDescriptors builds the opcode rows for data-movement mnemonics:
// MOVE, MOVEA, MOVEQ, MOVEP, MOVEM, MOVE16, LEA, PEA, EXG, SWAP, CLR,
// EXT/EXTB, LINK, UNLK, TAS, MOVE to CCR, MOVE to/from SR, MOVE to/from
// USP, MOVEC, MOVES. MOVE from CCR has no row here.
// MOVEC and MOVES are 68010+ privileged; MOVE16 is 68040-only.
func moveDescriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	// MOVE.B/W/L <ea>,<ea>. Non-standard size field: 01=B, 11=W, 10=L.
	for _, row := range []struct {
		match uint16
		size  Size
		eaSrc uint16
	}{
		{0x1000, Byte, eaData}, // byte: An-direct source is architecturally invalid
		{0x3000, Word, eaAll},
		{0x2000, Long, eaAll},
	} {
		row := row
		d = append(d, opcodeDescriptor{
			handler:    func(info *Info) { info.buildEAEA(MOVE, row.size) },
			mask:       0xF000,
			match:      uint32(row.match),
			eaMask:     row.eaSrc,
			destEAMask: eaDataAlterable,
		})
	}

	// MOVEA.W/L <ea>,An — same opcode space as MOVE with dest mode forced
	// to An-direct (category bit eaAn).
	for _, row := range []struct {
		match uint16
		size  Size
	}{
		{0x3000, Word},
		{0x2000, Long},
	} {
		size := row.size
		d = append(d, opcodeDescriptor{
			handler:    func(info *Info) { info.buildEAA(MOVEA, size) },
			mask:       0xF000,
			match:      uint32(row.match),
			eaMask:     eaAll,
			destEAMask: eaAn,
		})
	}

	// MOVEQ #imm8,Dn: 0111 DDD0 dddddddd
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) {
			info.initOp(MOVEQ, 2, Long)
			data := int32(int8(info.ir & 0xFF))
			info.insn.Ext.Operands[0] = immOperand(uint64(uint32(data)))
			info.insn.Ext.Operands[1] = dataReg(info.irReg9())
		},
		mask:  0xF100,
		match: 0x7000,
	})

	// MOVEP.W/L (d16,An),Dn and Dn,(d16,An): 0000 DDD OOO 001 AAA
	d = append(d, opcodeDescriptor{
		handler: opMOVEP,
		mask:    0xF138,
		match:   0x0108,
	})

	// LEA <ea>,An — control addressing modes only: 0100 AAA1 11ss ssss
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEAA(LEA, Long) },
		mask:    0xF1C0,
		match:   0x41C0,
		eaMask:  eaControl,
	})

	// PEA <ea> — control addressing modes only: 0100 1000 01ss ssss
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEA(PEA, Long) },
		mask:    0xFFC0,
		match:   0x4840,
		eaMask:  eaControl,
	})

	// MOVEM register-list <-> memory: 0100 1D00 1Sss ssss
	d = append(d, opcodeDescriptor{ // direction 0: registers -> memory
		handler: func(info *Info) { info.buildMovemRE(MOVEM, Word) },
		mask:    0xFFC0,
		match:   0x4880,
		eaMask:  eaControl | eaAnPreDec,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildMovemRE(MOVEM, Long) },
		mask:    0xFFC0,
		match:   0x48C0,
		eaMask:  eaControl | eaAnPreDec,
	})
	d = append(d, opcodeDescriptor{ // direction 1: memory -> registers
		handler: func(info *Info) { info.buildMovemER(MOVEM, Word) },
		mask:    0xFFC0,
		match:   0x4C80,
		eaMask:  eaControl | eaAnPostInc,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildMovemER(MOVEM, Long) },
		mask:    0xFFC0,
		match:   0x4CC0,
		eaMask:  eaControl | eaAnPostInc,
	})

	// MOVE16 (Ax)+,(Ay)+ and three postincrement/absolute variants
	// (68040-only): 1111 0110 00 m m m AAA.
	for _, m := range []uint16{0x0000, 0x0008, 0x0010, 0x0018} {
		m := m
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildMove16(m) },
			mask:    0xFFF8,
			match:   uint32(0xF600 | m),
			gate:    cpu68040Only,
		})
	}

	// EXG Dx,Dy / Ax,Ay / Dx,Ay: 1100 XXX1 MMMMM YYY
	for _, opmode := range []uint16{0x40, 0x48, 0x88} {
		opmode := opmode
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildEXG(opmode) },
			mask:    uint32(0xF1F8 | (opmode & 0x40)),
			match:   uint32(0xC100 | opmode),
		})
	}

	// SWAP Dn: 0100 1000 0100 0DDD
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildD(SWAP, Long) },
		mask:    0xFFF8,
		match:   0x4840,
	})

	// CLR.B/W/L <ea>: 0100 0010 ssmm mrrr
	for _, row := range []struct {
		bits uint16
		size Size
	}{{0, Byte}, {1, Word}, {2, Long}} {
		size := row.size
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildEA(CLR, size) },
			mask:    0xFFC0 | 0x00C0,
			match:   0x4200 | uint32(row.bits)<<6,
			eaMask:  eaDataAlterable,
		})
	}

	// EXT.W/L Dn: 0100 1000 10000DDD / 0100 1000 11000DDD
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildD(EXT, Word) },
		mask:    0xFFF8,
		match:   0x4880,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildD(EXT, Long) },
		mask:    0xFFF8,
		match:   0x48C0,
	})
	// EXTB.L Dn (68020+): 0100 1001 11000DDD
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildD(EXTB, Long) },
		mask:    0xFFF8,
		match:   0x49C0,
		gate:    cpu68020Up,
	})

	// LINK An,#disp16: 0100 1110 0101 0AAA ; LINK.L An,#disp32 (68020+).
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildLink(Word) },
		mask:    0xFFF8,
		match:   0x4E50,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildLink(Long) },
		mask:    0xFFF8,
		match:   0x4808,
		gate:    cpu68020Up,
	})

	// UNLK An: 0100 1110 0101 1AAA
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) {
			info.initOp(UNLK, 1, None)
			info.insn.Ext.Operands[0] = addrReg(info.irReg0())
		},
		mask:    0xFFF8,
		match:   0x4E58,
	})

	// TAS <ea>: 0100 1010 11mm mrrr
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEA(TAS, Byte) },
		mask:    0xFFC0,
		match:   0x4AC0,
		eaMask:  eaDataAlterable,
	})

	// MOVE SR,<ea> (MOVEfromSR): 0100 0000 11mm mrrr
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildImmSpecialRegEA(MOVEfromSR, RegSR) },
		mask:    0xFFC0,
		match:   0x40C0,
		eaMask:  eaDataAlterable,
	})
	// MOVE <ea>,CCR (MOVEtoCCR): 0100 0100 11mm mrrr
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEASpecialReg(MOVEtoCCR, RegCCR) },
		mask:    0xFFC0,
		match:   0x44C0,
		eaMask:  eaData,
	})
	// MOVE <ea>,SR (MOVEtoSR, privileged): 0100 0110 11mm mrrr
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEASpecialReg(MOVEtoSR, RegSR) },
		mask:    0xFFC0,
		match:   0x46C0,
		eaMask:  eaData,
	})
	// MOVE An,USP / MOVE USP,An (privileged): 0100 1110 0110 DAAA
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildMoveUSP(true) },
		mask:    0xFFF8,
		match:   0x4E60,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildMoveUSP(false) },
		mask:    0xFFF8,
		match:   0x4E68,
	})

	// MOVEC Rc,Rn / Rn,Rc (68010+, privileged): 0100 1110 0111101 D,
	// extension word carries the control-register id and the
	// general-purpose register.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildMovec(false) },
		mask:    0xFFFF,
		match:   0x4E7A,
		gate:    cpu68010Plus,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildMovec(true) },
		mask:    0xFFFF,
		match:   0x4E7B,
		gate:    cpu68010Plus,
	})

	// MOVES <ea>,Rn / Rn,<ea> (68010+, privileged): 0000 1110 SSmm mrrr,
	// extension word selects register and direction.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildMoves(Byte) },
		mask:    0xFFC0,
		match:   0x0E00,
		eaMask:  eaMemoryAlterable,
		gate:    cpu68010Plus,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildMoves(Word) },
		mask:    0xFFC0,
		match:   0x0E40,
		eaMask:  eaMemoryAlterable,
		gate:    cpu68010Plus,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildMoves(Long) },
		mask:    0xFFC0,
		match:   0x0E80,
		eaMask:  eaMemoryAlterable,
		gate:    cpu68010Plus,
	})

	return d
}

// opMOVEP decodes MOVEP.W/L (d16,An),Dn or Dn,(d16,An).
func opMOVEP(info *Info) {
	opmode := info.irMode6() // low 2 bits: 00=W load,01=L load,10=W store,11=L store
	size := Word
	if opmode&1 != 0 {
		size = Long
	}
	disp := info.readSigned16()
	mem := Operand{Type: OpTypeMemory, AddressMode: AddrRegIndirectDisp,
		Mem: MemOperand{BaseReg: info.irReg0(), HasBase: true, Disp: disp}}
	dn := dataReg(info.irReg9())

	info.initOp(MOVEP, 2, size)
	if opmode&2 != 0 {
		info.insn.Ext.Operands[0] = dn
		info.insn.Ext.Operands[1] = mem
	} else {
		info.insn.Ext.Operands[0] = mem
		info.insn.Ext.Operands[1] = dn
	}
}

// buildMove16 decodes the four MOVE16 postincrement/absolute shapes.
// m selects which of the four forms; all four move a 16-byte block.
func (info *Info) buildMove16(m uint16) {
	ax := addrPostInc(info.irReg0())
	info.initOp(MOVE16, 2, Long)
	switch m {
	case 0x0000: // (Ax)+,(Ay)+
		ext := info.read16()
		ay := addrPostInc(uint8((ext >> 12) & 7))
		info.insn.Ext.Operands[0] = ax
		info.insn.Ext.Operands[1] = ay
	case 0x0008: // (Ax)+,abs.L
		abs := int32(info.read32())
		info.insn.Ext.Operands[0] = ax
		info.insn.Ext.Operands[1] = Operand{Type: OpTypeMemory, AddressMode: AddrAbsLong, Mem: MemOperand{Disp: abs}}
	case 0x0010: // abs.L,(Ax)+
		abs := int32(info.read32())
		info.insn.Ext.Operands[0] = Operand{Type: OpTypeMemory, AddressMode: AddrAbsLong, Mem: MemOperand{Disp: abs}}
		info.insn.Ext.Operands[1] = ax
	case 0x0018: // (Ax),abs.L  (no postincrement)
		abs := int32(info.read32())
		an := Operand{Type: OpTypeMemory, AddressMode: AddrRegIndirectAddr, Mem: MemOperand{BaseReg: info.irReg0(), HasBase: true}}
		info.insn.Ext.Operands[0] = an
		info.insn.Ext.Operands[1] = Operand{Type: OpTypeMemory, AddressMode: AddrAbsLong, Mem: MemOperand{Disp: abs}}
	}
}

func addrPostInc(reg uint8) Operand {
	return Operand{Type: OpTypeMemory, AddressMode: AddrRegIndirectPostInc, Mem: MemOperand{BaseReg: reg, HasBase: true}}
}

// buildEXG decodes EXG's three register-pair opmodes.
func (info *Info) buildEXG(opmode uint16) {
	info.initOp(EXG, 2, Long)
	rx, ry := info.irReg9(), info.irReg0()
	switch opmode {
	case 0x40:
		info.insn.Ext.Operands[0] = dataReg(rx)
		info.insn.Ext.Operands[1] = dataReg(ry)
	case 0x48:
		info.insn.Ext.Operands[0] = addrReg(rx)
		info.insn.Ext.Operands[1] = addrReg(ry)
	case 0x88:
		info.insn.Ext.Operands[0] = dataReg(rx)
		info.insn.Ext.Operands[1] = addrReg(ry)
	}
}

// buildImmSpecialRegEA: MOVE SR,<ea> shape — special-register source,
// EA destination. No immediate operand is built; this is the mirror
// image of buildEASpecialReg.
func (info *Info) buildImmSpecialRegEA(op Opcode, reg specialReg) {
	info.initOp(op, 2, Word)
	info.insn.Ext.Operands[0] = Operand{Type: OpTypeRegister, AddressMode: AddrNone, Reg: uint8(reg)}
	info.insn.Ext.Operands[1] = info.parseEA(info.irMode3(), info.irReg0(), Word)
}

// buildEASpecialReg: EA source, special-register destination (MOVE to
// CCR/SR).
func (info *Info) buildEASpecialReg(op Opcode, reg specialReg) {
	ea := info.parseEA(info.irMode3(), info.irReg0(), Word)
	info.initOp(op, 2, Word)
	info.insn.Ext.Operands[0] = ea
	info.insn.Ext.Operands[1] = Operand{Type: OpTypeRegister, AddressMode: AddrNone, Reg: uint8(reg)}
}

// buildMoveUSP: toUSP selects An->USP vs USP->An.
func (info *Info) buildMoveUSP(toUSP bool) {
	info.initOp(MOVEUSP, 2, Long)
	an := addrReg(info.irReg0())
	usp := Operand{Type: OpTypeRegister, AddressMode: AddrNone, Reg: uint8(RegUSP)}
	if toUSP {
		info.insn.Ext.Operands[0] = an
		info.insn.Ext.Operands[1] = usp
	} else {
		info.insn.Ext.Operands[0] = usp
		info.insn.Ext.Operands[1] = an
	}
}

// buildMovec: toControl selects Rn->Rc vs Rc->Rn. The extension word's
// low 12 bits select the control register; bit 15 selects Dn vs An for
// the general-purpose side.
func (info *Info) buildMovec(toControl bool) {
	ext := info.read16()
	gp := dataReg(uint8((ext >> 12) & 7))
	if ext&0x8000 != 0 {
		gp = addrReg(uint8((ext >> 12) & 7))
	}
	ctrl := Operand{Type: OpTypeRegister, AddressMode: AddrNone, Reg: uint8(ext & 0xFFF)}

	info.initOp(MOVEC, 2, Long)
	if toControl {
		info.insn.Ext.Operands[0] = gp
		info.insn.Ext.Operands[1] = ctrl
	} else {
		info.insn.Ext.Operands[0] = ctrl
		info.insn.Ext.Operands[1] = gp
	}
}

// buildMoves: the extension word's bit 11 selects direction, bits 14..12
// select the Dn/An register, bit 15 selects Dn vs An.
func (info *Info) buildMoves(size Size) {
	ext := info.read16()
	ea := info.parseEA(info.irMode3(), info.irReg0(), size)

	reg := dataReg(uint8((ext >> 12) & 7))
	if ext&0x8000 != 0 {
		reg = addrReg(uint8((ext >> 12) & 7))
	}

	info.initOp(MOVES, 2, size)
	if ext&0x0800 != 0 { // register -> memory
		info.insn.Ext.Operands[0] = reg
		info.insn.Ext.Operands[1] = ea
	} else {
		info.insn.Ext.Operands[0] = ea
		info.insn.Ext.Operands[1] = reg
	}
}

// buildLink: LINK An,#disp (word or long displacement), including the
// 68020+ long-displacement form.
func (info *Info) buildLink(size Size) {
	var disp int32
	if size == Long {
		disp = int32(info.read32())
	} else {
		disp = info.readSigned16()
	}
	info.initOp(LINK, 2, size)
	info.insn.Ext.Operands[0] = addrReg(info.irReg0())
	info.insn.Ext.Operands[1] = immOperand(uint64(uint32(disp)))
}
