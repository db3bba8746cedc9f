package m68k

import "testing"

func TestDecodeMOVEQ(t *testing.T) {
	// MOVEQ #-1,D3: 0111 0110 11111111.
	res := decode68000(t, encode(0x76FF))
	if !res.Ok || res.Instruction.Opcode != MOVEQ {
		t.Fatalf("MOVEQ: got %+v", res)
	}
	if int32(res.Instruction.Ext.Operands[0].Imm) != -1 {
		t.Fatalf("MOVEQ imm = %d, want -1", int32(res.Instruction.Ext.Operands[0].Imm))
	}
	if res.Instruction.Ext.Operands[1].Reg != 3 {
		t.Fatalf("MOVEQ dst = %d, want D3", res.Instruction.Ext.Operands[1].Reg)
	}
}

func TestDecodeLEA(t *testing.T) {
	// LEA (A1),A0: 0100 000 111 010 001.
	res := decode68000(t, encode(0x41D1))
	if !res.Ok || res.Instruction.Opcode != LEA {
		t.Fatalf("LEA: got %+v", res)
	}
	if res.Instruction.Ext.Operands[1].Reg != 0 {
		t.Fatalf("LEA dst = %d, want A0", res.Instruction.Ext.Operands[1].Reg)
	}
}

func TestDecodeMOVEMRegistersToMemory(t *testing.T) {
	// MOVEM.L A6/A7,-(A7): 0100 1000 11 100 111, reglist word 0x0003
	// (predecrement order, bit 0 = A7, bit 1 = A6).
	res := decode68000(t, encode(0x48E7, 0x0003))
	if !res.Ok || res.Instruction.Opcode != MOVEM {
		t.Fatalf("MOVEM: got %+v", res)
	}
	regs := res.Instruction.Ext.Operands[0]
	if regs.Type != OpTypeRegisterBits {
		t.Fatalf("MOVEM reglist operand = %+v", regs)
	}
}

func TestDecodeEXG(t *testing.T) {
	// EXG D0,D1: 1100 0001 01000 001 (Dx=0, Dy=1, opmode field 0x08<<3).
	res := decode68000(t, encode(0xC141))
	if !res.Ok || res.Instruction.Opcode != EXG {
		t.Fatalf("EXG: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].AddressMode != AddrRegDirectData || res.Instruction.Ext.Operands[0].Reg != 0 {
		t.Fatalf("EXG operand 0 = %+v, want D0", res.Instruction.Ext.Operands[0])
	}
	if res.Instruction.Ext.Operands[1].AddressMode != AddrRegDirectData || res.Instruction.Ext.Operands[1].Reg != 1 {
		t.Fatalf("EXG operand 1 = %+v, want D1", res.Instruction.Ext.Operands[1])
	}
}

func TestDecodeMOVEToUSP(t *testing.T) {
	res := decode68000(t, encode(0x4E60)) // MOVE A0,USP
	if !res.Ok || res.Instruction.Opcode != MOVEUSP {
		t.Fatalf("MOVE to USP: got %+v", res)
	}
}
