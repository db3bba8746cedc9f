package m68k

import "testing"

func TestDecodeABCDRegisterForm(t *testing.T) {
	// ABCD D1,D0: 1100 000 1 0000 0001.
	res := decode68000(t, encode(0xC101))
	if !res.Ok || res.Instruction.Opcode != ABCD {
		t.Fatalf("ABCD reg: got %+v", res)
	}
}

func TestDecodeSBCDMemoryForm(t *testing.T) {
	// SBCD -(A1),-(A0): 1000 000 1 0000 1001.
	res := decode68000(t, encode(0x8109))
	if !res.Ok || res.Instruction.Opcode != SBCD {
		t.Fatalf("SBCD mem: got %+v", res)
	}
}

func TestDecodeNBCD(t *testing.T) {
	res := decode68000(t, encode(0x4800)) // NBCD D0
	if !res.Ok || res.Instruction.Opcode != NBCD {
		t.Fatalf("NBCD: got %+v", res)
	}
}

func TestDecodeUNPKMemoryForm(t *testing.T) {
	// UNPK -(A1),-(A0),#0: 1000 000 1 1000 1001 + adjustment word.
	res := decode020(t, encode(0x8189, 0x0000))
	if !res.Ok || res.Instruction.Opcode != UNPK {
		t.Fatalf("UNPK mem: got %+v", res)
	}
	if res.Instruction.Ext.OpCount != 3 {
		t.Fatalf("UNPK opcount = %d, want 3", res.Instruction.Ext.OpCount)
	}
}
