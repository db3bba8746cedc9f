package m68k

// arithDescriptors builds the opcode rows for arithmetic mnemonics: ADD
// family, SUB family, CMP family, CHK/CHK2, MUL/DIV (word and 68020+
// long forms), TST. CHK.L, CHK2/CMP2 and the 68020+ long MUL/DIV forms
// are gated cpu68020Up; the rest are plain 68000 baseline.
func arithDescriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	d = append(d, dyadicALUFamily(0xD000, ADD, ADD, [3]uint16{eaData, eaAll, eaAll})...)
	d = append(d, dyadicALUFamily(0x9000, SUB, SUB, [3]uint16{eaData, eaAll, eaAll})...)

	// ADDA/SUBA <ea>,An: bits 8-6 = 011 (Word) or 111 (Long).
	for _, row := range []struct {
		op    Opcode
		base  uint16
		szBit uint16
		size  Size
	}{
		{ADDA, 0xD0C0, 0, Word}, {ADDA, 0xD1C0, 0, Long},
		{SUBA, 0x90C0, 0, Word}, {SUBA, 0x91C0, 0, Long},
	} {
		row := row
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildEAA(row.op, row.size) },
			mask:    0xF1C0,
			match:   uint32(row.base),
			eaMask:  eaAll,
		})
	}

	d = append(d, immEAFamily(0x0600, ADDI, eaDataAlterable)...)
	d = append(d, immEAFamily(0x0400, SUBI, eaDataAlterable)...)
	d = append(d, immEAFamily(0x0C00, CMPI, eaData)...)

	d = append(d, quickEAFamily(0x5000, ADDQ)...)
	d = append(d, quickEAFamily(0x5100, SUBQ)...)

	// ADDX/SUBX Dy,Dx and -(Ay),-(Ax): 1101/1001 XXX1 SS00 0/1 YYY.
	for _, row := range []struct {
		op      Opcode
		regBase uint16
		memBase uint16
	}{
		{ADDX, 0xD100, 0xD108},
		{SUBX, 0x9100, 0x9108},
	} {
		row := row
		for i, size := range [3]Size{Byte, Word, Long} {
			szBits := uint32(i)
			size := size
			d = append(d, opcodeDescriptor{
				handler: func(info *Info) { info.buildRR(row.op, size) },
				mask:    0xF1F8,
				match:   uint32(row.regBase) | szBits<<6,
			})
			d = append(d, opcodeDescriptor{
				handler: func(info *Info) { info.buildMM(row.op, size, false) },
				mask:    0xF1F8,
				match:   uint32(row.memBase) | szBits<<6,
			})
		}
	}

	// CMP <ea>,Dn: 1011 DDD 0SS eee eee.
	for i, size := range [3]Size{Byte, Word, Long} {
		szBits := uint32(i)
		size := size
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildER(CMP, size, false) },
			mask:    0xF1C0,
			match:   0xB000 | szBits<<6,
			eaMask:  eaAll,
		})
	}

	// CMPA <ea>,An: bits 8-6 = 011 (Word) or 111 (Long).
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEAA(CMPA, Word) },
		mask:    0xF1C0, match: 0xB0C0, eaMask: eaAll,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEAA(CMPA, Long) },
		mask:    0xF1C0, match: 0xB1C0, eaMask: eaAll,
	})

	// CMPM (Ay)+,(Ax)+: 1011 XXX1 SS00 1YYY.
	for i, size := range [3]Size{Byte, Word, Long} {
		szBits := uint32(i)
		size := size
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildMM(CMPM, size, true) },
			mask:    0xF1F8,
			match:   0xB108 | szBits<<6,
		})
	}

	// MULU/MULS <ea>,Dn (word*word->long): 1100 DDD 011/111 eee eee.
	d = append(d, opcodeDescriptor{handler: func(info *Info) { info.buildER(MULU, Word, false) }, mask: 0xF1C0, match: 0xC0C0, eaMask: eaData})
	d = append(d, opcodeDescriptor{handler: func(info *Info) { info.buildER(MULS, Word, false) }, mask: 0xF1C0, match: 0xC1C0, eaMask: eaData})
	// DIVU/DIVS <ea>,Dn (long/word->word quotient:word remainder):
	// 1000 DDD 011/111 eee eee.
	d = append(d, opcodeDescriptor{handler: func(info *Info) { info.buildER(DIVU, Word, false) }, mask: 0xF1C0, match: 0x80C0, eaMask: eaData})
	d = append(d, opcodeDescriptor{handler: func(info *Info) { info.buildER(DIVS, Word, false) }, mask: 0xF1C0, match: 0x81C0, eaMask: eaData})

	// MUL.L <ea>,Dl (;Dh,Dl for the 64-bit form) — 68020+: 0100 1100
	// 00mm mrrr + extension word, whose bit 11 selects MULS.L vs MULU.L.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildLongMul() },
		mask:    0xFFC0, match: 0x4C00, eaMask: eaData, gate: cpu68020Up,
	})
	// DIVU.L/DIVS.L/DIVSL/DIVUL <ea>,Dq (;Dr,Dq) — 68020+:
	// 0100 1100 01mm mrrr + extension word.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildLongDiv() },
		mask:    0xFFC0, match: 0x4C40, eaMask: eaData, gate: cpu68020Up,
	})

	// CHK <ea>,Dn (word bound check): 0100 DDD 110 eee eee.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildER(CHK, Word, false) },
		mask:    0xF1C0, match: 0x4180, eaMask: eaData,
	})
	// CHK.L <ea>,Dn — 68020+: 0100 DDD 100 eee eee.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildER(CHK, Long, false) },
		mask:    0xF1C0, match: 0x4100, eaMask: eaData, gate: cpu68020Up,
	})

	// CHK2/CMP2 <ea>,Rn — 68020+: 0000 0SS0 11mm mrrr + extension word
	// (bit 11 of extension selects CHK2 vs CMP2).
	for i, size := range [3]Size{Byte, Word, Long} {
		szBits := uint32(i)
		size := size
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildChk2Cmp2(size) },
			mask:    0xFFC0, match: 0x00C0 | szBits<<9, eaMask: eaControl, gate: cpu68020Up,
		})
	}

	// NEG/NEGX: 0100 0100/0000 SSmm mrrr.
	for i, size := range [3]Size{Byte, Word, Long} {
		szBits := uint32(i)
		size := size
		d = append(d, opcodeDescriptor{handler: func(info *Info) { info.buildEA(NEG, size) }, mask: 0xFFC0 | 0x00C0, match: 0x4400 | szBits<<6, eaMask: eaDataAlterable})
		d = append(d, opcodeDescriptor{handler: func(info *Info) { info.buildEA(NEGX, size) }, mask: 0xFFC0 | 0x00C0, match: 0x4000 | szBits<<6, eaMask: eaDataAlterable})
	}

	// TST <ea>: 0100 1010 SSmm mrrr. One ungated row per size accepts the
	// data modes (data-alterable, PC-relative, immediate) on every CPU
	// variant; An-direct is not accepted on any of them.
	for i, size := range [3]Size{Byte, Word, Long} {
		szBits := uint32(i)
		size := size
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildEA(TST, size) },
			mask:    0xFFC0 | 0x00C0, match: 0x4A00 | szBits<<6, eaMask: eaData,
		})
	}

	return d
}

// buildLongMul decodes the 68020+ 32x32->32/64 multiply. Extension word
// bit 11 selects signed (MULS.L) vs unsigned (MULU.L); bit 10 selects the
// 64-bit Dh:Dl result over the plain 32-bit Dl one.
func (info *Info) buildLongMul() {
	ext := info.read16()
	op := MULU_L
	if ext&0x0800 != 0 {
		op = MULS_L
	}
	ea := info.parseEA(info.irMode3(), info.irReg0(), Long)
	dl := dataReg(uint8(ext & 7))
	if ext&0x0400 != 0 { // 64-bit result: Dh:Dl
		dh := dataReg(uint8((ext >> 12) & 7))
		info.initOp(op, 3, Long)
		info.insn.Ext.Operands[0] = ea
		info.insn.Ext.Operands[1] = dh
		info.insn.Ext.Operands[2] = dl
		return
	}
	info.initOp(op, 2, Long)
	info.insn.Ext.Operands[0] = ea
	info.insn.Ext.Operands[1] = dl
}

// buildLongDiv decodes the 68020+ divide family: DIVU.L/DIVS.L (32-bit
// quotient only) and DIVUL/DIVSL (32-bit quotient plus 32-bit remainder),
// selected and signed/unsigned-tagged by the extension word.
func (info *Info) buildLongDiv() {
	ext := info.read16()
	ea := info.parseEA(info.irMode3(), info.irReg0(), Long)
	dq := dataReg(uint8(ext & 7))
	dr := uint8((ext >> 12) & 7)
	signed := ext&0x0800 != 0

	if ext&0x0400 != 0 { // 64-bit dividend: Dr:Dq
		op := DIVUL
		if signed {
			op = DIVSL
		}
		info.initOp(op, 3, Long)
		info.insn.Ext.Operands[0] = ea
		info.insn.Ext.Operands[1] = dataReg(dr)
		info.insn.Ext.Operands[2] = dq
		return
	}

	op := DIVU_L
	if signed {
		op = DIVS_L
	}
	info.initOp(op, 2, Long)
	info.insn.Ext.Operands[0] = ea
	info.insn.Ext.Operands[1] = dq
}

// buildChk2Cmp2 decodes CHK2/CMP2 <ea>,Rn. Extension word bit 15 selects
// An vs Dn for the register operand; bit 11 selects CHK2 vs CMP2.
func (info *Info) buildChk2Cmp2(size Size) {
	ext := info.read16()
	ea := info.parseEA(info.irMode3(), info.irReg0(), size)
	reg := dataReg(uint8((ext >> 12) & 7))
	if ext&0x8000 != 0 {
		reg = addrReg(uint8((ext >> 12) & 7))
	}
	op := CMP2
	if ext&0x0800 != 0 {
		op = CHK2
	}
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = ea
	info.insn.Ext.Operands[1] = reg
}
