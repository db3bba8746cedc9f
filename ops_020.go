package m68k

// op020Descriptors builds the opcode rows for the 68020+-only bitfield
// family, CAS/CAS2, and the 68040 cache-maintenance instructions
// CINV/CPUSH.
func op020Descriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	// Bitfield family: 1110 1ooo 11mm mrrr + extension word. Writable
	// forms take data-alterable addressing (Dn plus the memory-alterable
	// modes, no PC-relative); read-only forms take Dn plus the control
	// modes, which include PC-relative.
	for _, row := range []struct {
		op      Opcode
		match   uint16
		hasD    bool
		reverse bool
		eaMask  uint16
	}{
		{BFTST, 0xE8C0, false, false, eaDn | eaControl},
		{BFEXTU, 0xE9C0, true, false, eaDn | eaControl},
		{BFCHG, 0xEAC0, false, false, eaDataAlterable},
		{BFEXTS, 0xEBC0, true, false, eaDn | eaControl},
		{BFCLR, 0xECC0, false, false, eaDataAlterable},
		{BFFFO, 0xEDC0, true, false, eaDn | eaControl},
		{BFSET, 0xEEC0, false, false, eaDataAlterable},
		{BFINS, 0xEFC0, true, true, eaDataAlterable},
	} {
		row := row
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildBitfieldIns(row.op, row.hasD, row.reverse) },
			mask:    0xFFC0, match: uint32(row.match), eaMask: row.eaMask, gate: cpu68020Up,
		})
	}

	// CAS <ea>,Dc,Du — memory only, no Dn-direct: 0000 1SS0 11mm mrrr
	// (SS = 01/10/11 for byte/word/long) + extension word.
	for _, row := range []struct {
		size  Size
		match uint16
	}{
		{Byte, 0x0AC0}, {Word, 0x0CC0}, {Long, 0x0EC0},
	} {
		row := row
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildDDEA(CAS, row.size) },
			mask:    0xFFC0, match: uint32(row.match), eaMask: eaMemoryAlterable, gate: cpu68020Up,
		})
	}

	// CAS2 Dc1:Dc2,Du1:Du2,(Rn1):(Rn2) — the one three-word instruction,
	// carrying all three register pairs in its 32-bit extension with no
	// EA field at all: 0000 1SS0 11111100 + 32-bit extension word.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildCas2(Word) },
		mask:    0xFFFF, match: 0x0CFC, gate: cpu68020Up,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildCas2(Long) },
		mask:    0xFFFF, match: 0x0EFC, gate: cpu68020Up,
	})

	// CINV/CPUSH — 68040 cache maintenance: 1111 0100 CC0S SRRR /
	// 1111 0100 CC1S SRRR (cache in bits 7-6, scope in bits 4-3, An in
	// bits 2-0; bit 5 distinguishes CINV/CPUSH).
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildCinvCpush(CINV) },
		mask:    0xFF20, match: 0xF400, gate: cpu68040Only,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildCinvCpush(CPUSH) },
		mask:    0xFF20, match: 0xF420, gate: cpu68040Only,
	})

	return d
}

// buildCas2 decodes CAS2's 32-bit extension word into three
// register-pair operands: the compare pair (always data registers),
// the update pair (always data registers), and the address-register
// pair used for the indirect comparison (each half independently Dn or
// An, selected by its own high bit).
func (info *Info) buildCas2(size Size) {
	ext := info.read32()

	dc1 := uint8(ext & 7)
	dc2 := uint8((ext >> 16) & 7)
	du1 := uint8((ext >> 6) & 7)
	du2 := uint8((ext >> 22) & 7)
	rn1 := uint8((ext >> 28) & 7)
	rn2 := uint8((ext >> 12) & 7)
	if ext&0x80000000 != 0 {
		rn1 |= 8
	}
	if ext&0x00008000 != 0 {
		rn2 |= 8
	}

	info.initOp(CAS2, 3, size)
	info.insn.Ext.Operands[0] = regPair(dc1, dc2)
	info.insn.Ext.Operands[1] = regPair(du1, du2)
	info.insn.Ext.Operands[2] = regPair(rn1, rn2)
}

// regPair packs two register numbers into one RegisterPair operand.
// Bit 3 of each half marks an address register (D0-D7 occupy 0-7,
// A0-A7 occupy 8-15) so a single nibble pair round-trips both halves.
func regPair(lo, hi uint8) Operand {
	return Operand{
		Type:         OpTypeRegisterPair,
		RegisterBits: uint32(hi)<<8 | uint32(lo),
	}
}

// buildCinvCpush decodes the 68040 cache/scope/register shape shared by
// CINV and CPUSH: a cache-selector immediate, a scope immediate, and
// (for the Line/Page scopes) an An operand.
func (info *Info) buildCinvCpush(op Opcode) {
	cache := uint64((info.ir >> 6) & 3)
	scope := uint64((info.ir >> 3) & 3)

	if scope == 3 { // All: no register operand
		info.initOp(op, 2, None)
		info.insn.Ext.Operands[0] = immOperand(cache)
		info.insn.Ext.Operands[1] = immOperand(scope)
		return
	}

	info.initOp(op, 3, None)
	info.insn.Ext.Operands[0] = immOperand(cache)
	info.insn.Ext.Operands[1] = immOperand(scope)
	info.insn.Ext.Operands[2] = addrReg(info.irReg0())
}
