package cpu

import "testing"

func TestOperandSizes(t *testing.T) {
	tests := []struct {
		mode Mode
		want uint8
	}{
		{ModeImplied, 0},
		{ModeAccumulator, 0},
		{ModeImmediate, 1},
		{ModeZeroPage, 1},
		{ModeZeroPageIndirect, 1},
		{ModeAbsolute, 2},
		{ModeIndirect, 2},
		{ModeIndirectAbsoluteX, 2},
	}
	for _, tt := range tests {
		if got := tt.mode.OperandSize(); got != tt.want {
			t.Errorf("%v.OperandSize() = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if got := ModeZeroPageIndirect.String(); got != "zpi" {
		t.Errorf("ModeZeroPageIndirect.String() = %q, want zpi", got)
	}
}

func TestAddrZPXWraps(t *testing.T) {
	c := newTestChip()
	c.PC = 0
	c.mem.Write(0, 0xFF)
	c.X = 0x02
	if got := addrZPX(c); got != 0x01 {
		t.Errorf("addrZPX wraparound: got %04X want 0001", got)
	}
}

func TestAddrIndirectXZeroPageWrap(t *testing.T) {
	c := newTestChip()
	c.PC = 0
	c.mem.Write(0, 0xFE)
	c.X = 0x03 // (0xFE+3)&0xFF = 0x01
	c.mem.Write(0x01, 0x34)
	c.mem.Write(0x02, 0x12)
	if got := addrIndirectX(c); got != 0x1234 {
		t.Errorf("addrIndirectX: got %04X want 1234", got)
	}
}

func TestAddrIndirectYPageCross(t *testing.T) {
	c := newTestChip()
	c.addCycles = true
	c.PC = 0
	c.mem.Write(0, 0x10)
	c.mem.Write(0x10, 0xFF)
	c.mem.Write(0x11, 0x02) // base = 0x02FF
	c.Y = 0x01              // 0x0300, crosses page
	if got := addrIndirectY(c); got != 0x0300 {
		t.Errorf("addrIndirectY: got %04X want 0300", got)
	}
	if c.extraCycles != 1 {
		t.Errorf("expected page-cross penalty, got extraCycles=%d", c.extraCycles)
	}
}

func TestAddrZeroPageIndirectNoXOrY(t *testing.T) {
	c := newTestChip()
	c.PC = 0
	c.mem.Write(0, 0x20)
	c.mem.Write(0x20, 0xCD)
	c.mem.Write(0x21, 0xAB)
	if got := addrZeroPageIndirect(c); got != 0xABCD {
		t.Errorf("addrZeroPageIndirect: got %04X want ABCD", got)
	}
}

func TestBranchTargetForwardAndBackward(t *testing.T) {
	c := newTestChip()
	if got := c.branchTarget(0x02, 0x0200); got != 0x0202 {
		t.Errorf("forward branch: got %04X want 0202", got)
	}
	c.extraCycles = 0
	if got := c.branchTarget(0xFE, 0x0200); got != 0x01FE { // -2
		t.Errorf("backward branch: got %04X want 01FE", got)
	}
}

func TestReadWordVsReadWordZPWrap(t *testing.T) {
	m := &flatMemory{}
	m.addr[0x00FF] = 0x34
	m.addr[0x0100] = 0x12
	if got := readWord(m, 0x00FF); got != 0x1234 {
		t.Errorf("readWord crosses into page 1 without wrapping: got %04X want 1234", got)
	}

	m2 := &flatMemory{}
	m2.addr[0x00FF] = 0x34
	m2.addr[0x0000] = 0x99 // wrap target within zero page
	m2.addr[0x0100] = 0x12 // must NOT be used
	if got := readWordZPWrap(m2, 0x00FF); got != 0x9934 {
		t.Errorf("readWordZPWrap: got %04X want 9934", got)
	}
}
