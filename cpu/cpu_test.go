package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// flatMemory implements memory.Bank as a flat 64K array, the same
// shape of test double the corpus uses for exercising a CPU core
// without a real peripheral bus behind it.
type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8       { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, val uint8) { r.addr[addr] = val }
func (r *flatMemory) PowerOn()                     {}

func (r *flatMemory) setVector(vec, target uint16) {
	r.addr[vec] = uint8(target)
	r.addr[vec+1] = uint8(target >> 8)
}

func newChip(t *testing.T, pc uint16) (*Chip, *flatMemory) {
	t.Helper()
	m := &flatMemory{}
	m.setVector(ResetVector, pc)
	c, err := Init(ChipDef{Mem: m})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return c, m
}

func TestResetState(t *testing.T) {
	c, _ := newChip(t, 0x0200)
	if c.A != 0 || c.X != 0 || c.Y != 0 {
		t.Errorf("registers not zeroed after reset: A=%02X X=%02X Y=%02X", c.A, c.X, c.Y)
	}
	if c.S != 0xFF {
		t.Errorf("S after reset = %02X, want FF", c.S)
	}
	if c.P&PUnused == 0 || c.P&PBreak == 0 {
		t.Errorf("P after reset = %02X, want unused+break set", c.P)
	}
	if c.PC != 0x0200 {
		t.Errorf("PC after reset = %04X, want 0200", c.PC)
	}
	if c.Cycles != 0 {
		t.Errorf("Cycles after reset = %d, want 0", c.Cycles)
	}
}

// Seed scenario 1: LDA immediate sets N.
func TestSeedLDAImmediateSetsN(t *testing.T) {
	c, m := newChip(t, 0x0000)
	m.addr[0x0000] = 0xA9
	m.addr[0x0001] = 0x80
	c.A = 0
	c.Step()
	if c.PC != 2 || c.A != 0x80 || c.P&PNegative == 0 || c.P&PZero != 0 {
		t.Fatalf("got pc=%04X a=%02X p=%02X, state: %s", c.PC, c.A, c.P, spew.Sdump(c))
	}
}

// Seed scenario 2: LDA zero-page sets Z.
func TestSeedLDAZeroPageSetsZ(t *testing.T) {
	c, m := newChip(t, 0x0000)
	m.addr[0x0000] = 0xA5
	m.addr[0x0001] = 0x10
	m.addr[0x0010] = 0x00
	c.A = 0xFF
	c.Step()
	if c.PC != 2 || c.A != 0 || c.P&PZero == 0 || c.P&PNegative != 0 {
		t.Fatalf("got pc=%04X a=%02X p=%02X, state: %s", c.PC, c.A, c.P, spew.Sdump(c))
	}
}

// Seed scenario 3: BRK on 65C02 clears D.
func TestSeedBRKClearsDecimal(t *testing.T) {
	c, m := newChip(t, 0xC000)
	c.P = PDecimal
	m.addr[0xC000] = 0x00
	m.setVector(IRQVector, 0xBEEF)
	c.Step()
	if c.P&PBreak == 0 {
		t.Errorf("B not set in register after BRK: p=%02X", c.P)
	}
	if c.P&PDecimal != 0 {
		t.Errorf("D not cleared after BRK: p=%02X", c.P)
	}
	if c.P&PInterrupt == 0 {
		t.Errorf("I not set after BRK: p=%02X", c.P)
	}
	if c.PC != 0xBEEF {
		t.Errorf("pc after BRK = %04X, want BEEF", c.PC)
	}
}

// Seed scenario 4: ADC binary 0x7F + 0x01 overflows.
func TestSeedADCBinaryOverflow(t *testing.T) {
	c, m := newChip(t, 0x0000)
	c.A = 0x7F
	c.P &^= PCarry
	m.addr[0x0000] = 0x69
	m.addr[0x0001] = 0x01
	c.Step()
	if c.A != 0x80 || c.P&POverflow == 0 || c.P&PNegative == 0 {
		t.Fatalf("got a=%02X p=%02X, state: %s", c.A, c.P, spew.Sdump(c))
	}
}

// Seed scenario 5: ADC decimal 0x9C + 0x9D twice.
func TestSeedADCDecimalTwice(t *testing.T) {
	c, m := newChip(t, 0x0000)
	c.P |= PDecimal
	c.P &^= PCarry
	c.A = 0x9C
	m.addr[0x0000] = 0x69
	m.addr[0x0001] = 0x9D

	c.PC = 0
	c.Step()
	if c.A != 0x9F || c.P&PCarry == 0 {
		t.Fatalf("first ADC: got a=%02X p=%02X, state: %s", c.A, c.P, spew.Sdump(c))
	}

	c.PC = 0
	c.Step()
	if c.A != 0x93 || c.P&POverflow == 0 || c.P&PCarry == 0 {
		t.Fatalf("second ADC: got a=%02X p=%02X, state: %s", c.A, c.P, spew.Sdump(c))
	}
}

// Seed scenario 6: zero-page indirect LDA.
func TestSeedZeroPageIndirectLDA(t *testing.T) {
	c, m := newChip(t, 0x0000)
	m.addr[0x0000] = 0xB2
	m.addr[0x0001] = 0x10
	m.addr[0x0010] = 0xCD
	m.addr[0x0011] = 0xAB
	m.addr[0xABCD] = 0x80
	c.Step()
	if c.PC != 2 || c.A != 0x80 || c.P&PNegative == 0 || c.Cycles != 5 {
		t.Fatalf("got pc=%04X a=%02X p=%02X cycles=%d, state: %s", c.PC, c.A, c.P, c.Cycles, spew.Sdump(c))
	}
}

func TestPLPForcesBreakAndUnused(t *testing.T) {
	c, m := newChip(t, 0x0000)
	c.S = 0xFF
	c.push(0x00)
	m.addr[0x0000] = 0x28 // PLP
	c.Step()
	if c.P&PUnused == 0 || c.P&PBreak == 0 {
		t.Errorf("PLP did not force 0x30: p=%02X", c.P)
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, m := newChip(t, 0x0000)
	c.A = 0x55
	before := *c
	m.addr[0x0000] = 0x48 // PHA
	m.addr[0x0001] = 0xA9 // LDA #$00 — clobber A between push and pull
	m.addr[0x0002] = 0x00
	m.addr[0x0003] = 0x68 // PLA
	c.Step()
	c.Step()
	c.Step()
	if c.A != before.A {
		t.Errorf("PHA/PLA round trip: got A=%02X, want %02X", c.A, before.A)
	}
	if c.S != before.S {
		t.Errorf("PHA/PLA left stack pointer at %02X, want %02X", c.S, before.S)
	}
}

func TestIrqIgnoredWhenMasked(t *testing.T) {
	c, _ := newChip(t, 0x0200)
	c.P |= PInterrupt
	before := *c
	c.Irq()
	if diff := deep.Equal(before, *c); diff != nil {
		t.Errorf("Irq mutated state while masked: %v", diff)
	}
}

func TestIrqEntryPushesPCAndFlags(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.setVector(IRQVector, 0x9000)
	c.P &^= PInterrupt
	c.Irq()
	if c.PC != 0x9000 {
		t.Fatalf("pc after Irq = %04X, want 9000", c.PC)
	}
	if c.P&PInterrupt == 0 {
		t.Errorf("I not set after Irq entry")
	}
	pushedP := c.pop()
	if pushedP&PBreak != 0 {
		t.Errorf("hardware Irq entry pushed B=1, want B=0: p=%02X", pushedP)
	}
	retPC := c.popWord()
	if retPC != 0x0200 {
		t.Errorf("pushed return PC = %04X, want 0200", retPC)
	}
}

func TestNmiAlwaysTaken(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.setVector(NMIVector, 0xA000)
	c.P |= PInterrupt // NMI is non-maskable
	c.Nmi()
	if c.PC != 0xA000 {
		t.Errorf("pc after Nmi = %04X, want A000", c.PC)
	}
}

func TestWaiSuspendsUntilInterrupt(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0xCB // WAI
	c.Step()
	if !c.Waiting {
		t.Fatal("WAI did not set Waiting")
	}
	startCycles := c.Cycles
	c.Step()
	c.Step()
	if c.Cycles != startCycles+2 {
		t.Errorf("Step while waiting should tick Cycles by 1 each call: got %d want %d", c.Cycles, startCycles+2)
	}
	m.setVector(IRQVector, 0xB000)
	c.P &^= PInterrupt
	c.Irq()
	if c.Waiting {
		t.Errorf("Irq did not clear Waiting")
	}
	if c.PC != 0xB000 {
		t.Errorf("pc after waking = %04X, want B000", c.PC)
	}
}

func TestUnmappedOpcodeAdvancesPCByOne(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0x02 // reserved on 65C02, falls through to the NOP default
	before := c.Cycles
	c.Step()
	if c.PC != 0x0201 {
		t.Errorf("pc after unmapped opcode = %04X, want 0201", c.PC)
	}
	if c.Cycles != before {
		t.Errorf("unmapped opcode should not add cycles by itself: got %d want %d", c.Cycles, before)
	}
}

func TestAbsoluteXPageCrossPenalty(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0xBD // LDA abs,X
	m.addr[0x0201] = 0xFF
	m.addr[0x0202] = 0x02 // base 0x02FF
	c.X = 0x01            // 0x02FF + 1 = 0x0300, crosses page
	m.addr[0x0300] = 0x42
	c.Step()
	if c.A != 0x42 {
		t.Fatalf("A = %02X, want 42", c.A)
	}
	if c.Cycles != 5 {
		t.Errorf("cycles = %d, want 5 (4 base + 1 page-cross)", c.Cycles)
	}
}

func TestAbsoluteXNoPageCross(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0xBD // LDA abs,X
	m.addr[0x0201] = 0x00
	m.addr[0x0202] = 0x03 // base 0x0300
	c.X = 0x01
	m.addr[0x0301] = 0x42
	c.Step()
	if c.Cycles != 4 {
		t.Errorf("cycles = %d, want 4", c.Cycles)
	}
}

func TestBranchTakenAndPageCross(t *testing.T) {
	c, m := newChip(t, 0x02FD)
	m.addr[0x02FD] = 0xF0 // BEQ
	m.addr[0x02FE] = 0x02 // forward 2 from 0x02FF, landing at 0x0301, crossing the page
	c.P |= PZero
	c.Step()
	if c.PC != 0x0301 {
		t.Fatalf("pc = %04X, want 0301", c.PC)
	}
	if c.Cycles != 4 {
		t.Errorf("cycles = %d, want 4 (2 base + 1 taken + 1 page-cross)", c.Cycles)
	}
}

func TestBranchNotTaken(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0xF0 // BEQ
	m.addr[0x0201] = 0x10
	c.P &^= PZero
	c.Step()
	if c.PC != 0x0202 {
		t.Fatalf("pc = %04X, want 0202", c.PC)
	}
	if c.Cycles != 2 {
		t.Errorf("cycles = %d, want 2", c.Cycles)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0x20 // JSR
	m.addr[0x0201] = 0x00
	m.addr[0x0202] = 0x03
	m.addr[0x0300] = 0x60 // RTS
	c.Step()
	if c.PC != 0x0300 {
		t.Fatalf("pc after JSR = %04X, want 0300", c.PC)
	}
	c.Step()
	if c.PC != 0x0203 {
		t.Fatalf("pc after RTS = %04X, want 0203", c.PC)
	}
}

func TestJMPIndirectDoesNotWrap65C02Style(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0x6C // JMP (ind)
	m.addr[0x0201] = 0xFF
	m.addr[0x0202] = 0x02 // pointer at 0x02FF
	m.addr[0x02FF] = 0x34
	m.addr[0x0300] = 0x12 // high byte at 0x0300, NOT wrapped to 0x0200
	c.Step()
	if c.PC != 0x1234 {
		t.Fatalf("pc after JMP (ind) = %04X, want 1234 (no NMOS page-wrap bug)", c.PC)
	}
}

func TestLookupAndBaseCycles(t *testing.T) {
	mnemonic, mode := Lookup(0xA9)
	if mnemonic != "LDA" || mode != ModeImmediate {
		t.Errorf("Lookup(0xA9) = %q/%v, want LDA/imm", mnemonic, mode)
	}
	cycles, penalty := BaseCycles(0xA9)
	if cycles != 2 || penalty {
		t.Errorf("BaseCycles(0xA9) = %d/%v, want 2/false", cycles, penalty)
	}
}
