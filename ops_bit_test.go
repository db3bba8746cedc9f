package m68k

import "testing"

func TestDecodeBTSTDynamic(t *testing.T) {
	// BTST D1,D0: 0000 001 1 00 000000.
	res := decode68000(t, encode(0x0300))
	if !res.Ok || res.Instruction.Opcode != BTST {
		t.Fatalf("BTST dyn: got %+v", res)
	}
	if res.Instruction.Ext.Size.CPU != Long {
		t.Fatalf("BTST Dn-direct size = %v, want Long", res.Instruction.Ext.Size.CPU)
	}
}

func TestDecodeBTSTDynamicMemoryIsLongSized(t *testing.T) {
	// BTST D1,(A0): dynamic bit-number form, memory destination.
	res := decode68000(t, encode(0x0310))
	if !res.Ok || res.Instruction.Opcode != BTST {
		t.Fatalf("BTST dyn mem: got %+v", res)
	}
	if res.Instruction.Ext.Size.CPU != Long {
		t.Fatalf("BTST mem size = %v, want Long", res.Instruction.Ext.Size.CPU)
	}
}

func TestDecodeBSETStatic(t *testing.T) {
	// BSET #4,D0: 0000 1000 11 000000, bit-number extension word.
	res := decode68000(t, encode(0x08C0, 0x0004))
	if !res.Ok || res.Instruction.Opcode != BSET {
		t.Fatalf("BSET static: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].Imm != 4 {
		t.Fatalf("BSET bit number = %d, want 4", res.Instruction.Ext.Operands[0].Imm)
	}
}
