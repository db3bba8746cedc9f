package m68k

import "testing"

func decode020(t *testing.T, code []byte) Result {
	t.Helper()
	return NewDecoder(CPU68020).Decode(code, 0, 0)
}

func TestDecodeBitfieldTST(t *testing.T) {
	// BFTST D0 {0:8} -> 0xE8C0, ext word offset=0 width=8.
	res := decode020(t, encode(0xE8C0, 0x0008))
	if !res.Ok || res.Instruction.Opcode != BFTST {
		t.Fatalf("BFTST: got %+v", res)
	}
	ea := res.Instruction.Ext.Operands[0]
	if ea.AddressMode != AddrRegDirectData {
		t.Fatalf("BFTST ea = %+v", ea)
	}
	if ea.Mem.Width != 8 {
		t.Fatalf("BFTST width = %d, want 8", ea.Mem.Width)
	}
}

func TestDecodeBitfieldINSOperandOrder(t *testing.T) {
	// BFINS Dn,<ea>{offset:width} — destination is the EA; with
	// buildBitfieldIns(reverse=true) the source Dn takes the first operand
	// slot and the bitfield EA the second.
	res := decode020(t, encode(0xEFC0, 0x1008)) // Dn=1 (ext bits 14..12), offset=0, width=8
	if !res.Ok || res.Instruction.Opcode != BFINS {
		t.Fatalf("BFINS: got %+v", res)
	}
	if res.Instruction.Ext.OpCount != 2 {
		t.Fatalf("BFINS opcount = %d, want 2", res.Instruction.Ext.OpCount)
	}
	src, dst := res.Instruction.Ext.Operands[0], res.Instruction.Ext.Operands[1]
	if src.AddressMode != AddrRegDirectData || src.Reg != 1 || src.Mem.Bitfield {
		t.Fatalf("BFINS operand 0 = %+v, want source D1", src)
	}
	if !dst.Mem.Bitfield {
		t.Fatalf("BFINS operand 1 = %+v, want the bitfield EA", dst)
	}
}

func TestDecodeBitfieldRequires020(t *testing.T) {
	res := NewDecoder(CPU68010).Decode(encode(0xE8C0, 0x0008), 0, 0)
	if res.Instruction.Opcode != Invalid || res.Err != ErrCpuMismatch {
		t.Fatalf("BFTST on 68010: got %+v", res)
	}
}

func TestDecodeCasMemory(t *testing.T) {
	// CAS.W D0,D1,(A2): 0000 1100 11 010 010, ext word Dc=0,Du=1.
	res := decode020(t, encode(0x0CD2, 0x0040))
	if !res.Ok || res.Instruction.Opcode != CAS {
		t.Fatalf("CAS: got %+v", res)
	}
	if res.Instruction.Ext.OpCount != 3 {
		t.Fatalf("CAS opcount = %d, want 3", res.Instruction.Ext.OpCount)
	}
}

func TestDecodeCas2IsThreeWords(t *testing.T) {
	// CAS2.W: 0000 1100 1111 1100 + 32-bit extension.
	res := decode020(t, encode(0x0CFC, 0x0000, 0x0008))
	if !res.Ok || res.Instruction.Opcode != CAS2 {
		t.Fatalf("CAS2: got %+v", res)
	}
	if res.Consumed != 6 {
		t.Fatalf("CAS2 consumed = %d, want 6 (three words)", res.Consumed)
	}
	if res.Instruction.Ext.OpCount != 3 {
		t.Fatalf("CAS2 opcount = %d, want 3", res.Instruction.Ext.OpCount)
	}
	for i, op := range res.Instruction.Ext.Operands[:3] {
		if op.Type != OpTypeRegisterPair {
			t.Fatalf("CAS2 operand %d type = %v, want RegisterPair", i, op.Type)
		}
	}
}

func TestDecodeCinvCpush(t *testing.T) {
	res := NewDecoder(CPU68040).Decode(encode(0xF458), 0, 0) // CINV, scope=3 (All), no An
	if !res.Ok || res.Instruction.Opcode != CINV {
		t.Fatalf("CINV: got %+v", res)
	}
	if res.Instruction.Ext.OpCount != 2 {
		t.Fatalf("CINV (All scope) opcount = %d, want 2", res.Instruction.Ext.OpCount)
	}

	res = NewDecoder(CPU68040).Decode(encode(0xF408), 0, 0) // CINV, scope=1 (Line), An=0
	if !res.Ok || res.Instruction.Opcode != CINV {
		t.Fatalf("CINV line scope: got %+v", res)
	}
	if res.Instruction.Ext.OpCount != 3 {
		t.Fatalf("CINV (Line scope) opcount = %d, want 3", res.Instruction.Ext.OpCount)
	}
}

func TestDecodePackUnpkHasAdjustmentOperand(t *testing.T) {
	// PACK D0,D0,#$0F0F -> 1000 000 10100 0 000
	res := decode020(t, encode(0x8140, 0x0F0F))
	if !res.Ok || res.Instruction.Opcode != PACK {
		t.Fatalf("PACK: got %+v", res)
	}
	if res.Instruction.Ext.OpCount != 3 {
		t.Fatalf("PACK opcount = %d, want 3", res.Instruction.Ext.OpCount)
	}
	if res.Instruction.Ext.Operands[2].Imm != 0x0F0F {
		t.Fatalf("PACK adjustment = %#x, want 0xF0F", res.Instruction.Ext.Operands[2].Imm)
	}
}
