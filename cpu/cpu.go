// Package cpu implements the 65C02 instruction-level core: the
// fetch-decode-execute loop, the 256-entry opcode table, the
// addressing-mode evaluators and ALU primitives it dispatches to, and
// the reset/IRQ/NMI/BRK/WAI interrupt machinery. The core is
// single-threaded and synchronous: Step/Reset/Irq/Nmi must not be
// called concurrently on the same Chip.
package cpu

import (
	"fmt"
	"log"

	"github.com/voyager-2021/be6502emu/irq"
	"github.com/voyager-2021/be6502emu/memory"
)

// Processor status flag bits. The unused bit (0x20) always reads as 1
// once observed on the register; it is never independently tracked.
const (
	PNegative  = uint8(0x80)
	POverflow  = uint8(0x40)
	PUnused    = uint8(0x20) // Always 1 once pushed/observed.
	PBreak     = uint8(0x10) // Set on BRK/PHP, clear on hardware IRQ/NMI push.
	PDecimal   = uint8(0x08)
	PInterrupt = uint8(0x04)
	PZero      = uint8(0x02)
	PCarry     = uint8(0x01)
)

// Interrupt and reset vectors, read as little-endian words.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// StackBase is the fixed physical page the stack pointer indexes into.
const StackBase = uint16(0x0100)

// InvalidCPUState represents an internally inconsistent state that
// should be unreachable by construction (a corrupted opcode table
// entry, an out-of-range CPU construction parameter). It is distinct
// from the "opcode not implemented" case, which is not an error — see
// Chip.Step.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Chip holds the complete architectural and scratch state of a 65C02.
// Durable register state is exported; per-instruction scratch used only
// while a single Step is in flight is not.
type Chip struct {
	PC uint16 // Program counter.
	A  uint8  // Accumulator.
	X  uint8  // X index register.
	Y  uint8  // Y index register.
	S  uint8  // Stack pointer (physical address is 0x0100 + S).
	P  uint8  // Processor status flags.

	Cycles  uint64 // Cumulative cycle count, monotonically non-decreasing.
	Waiting bool   // True between WAI and the next Irq/Nmi.

	mem memory.Bank
	irq irq.Sender // Optional; polled by an external run loop, not by Step itself.
	nmi irq.Sender

	// Per-instruction scratch. extraCycles and addCycles are reset or
	// overwritten at the top of every Step; opAddr/opVal are not reset
	// there but are written by the load/rmw/store helpers in
	// opcodes.go and hold the effective address and operand value the
	// instruction last resolved (implied-mode handlers never touch them,
	// so they retain whatever the previous addressed instruction left).
	extraCycles uint8
	addCycles   bool // Whether the current opcode's addressing mode can incur a page-cross penalty.
	opAddr      uint16
	opVal       uint8
}

// ChipDef configures a new Chip.
type ChipDef struct {
	// Mem is the memory this CPU will read and write. If nil a fresh
	// zeroed 64 KiB bank is allocated.
	Mem memory.Bank
	// PC, if non-nil, is the initial program counter. If nil the reset
	// vector at ResetVector is used instead.
	PC *uint16
	// Irq and Nmi are optional interrupt sources an external run loop
	// may consult; the core itself never polls them directly.
	Irq irq.Sender
	Nmi irq.Sender
}

// Init constructs a new Chip in powered-on (reset) state.
func Init(def ChipDef) (*Chip, error) {
	m := def.Mem
	if m == nil {
		m = memory.New8BitRAMBank()
		m.PowerOn()
	}
	c := &Chip{
		mem: m,
		irq: def.Irq,
		nmi: def.Nmi,
	}
	c.Reset()
	if def.PC != nil {
		c.PC = *def.PC
	}
	return c, nil
}

// Mem returns the memory.Bank backing this Chip, for callers that need
// to load a program or inspect state between steps.
func (c *Chip) Mem() memory.Bank {
	return c.mem
}

// IrqSender returns the configured IRQ source, if any.
func (c *Chip) IrqSender() irq.Sender { return c.irq }

// NmiSender returns the configured NMI source, if any.
func (c *Chip) NmiSender() irq.Sender { return c.nmi }

// readWord reads a little-endian 16-bit value starting at addr. The
// high byte is fetched from addr+1 with full 16-bit wraparound — it is
// NOT clamped to the same page as addr.
func readWord(m memory.Bank, addr uint16) uint16 {
	lo := m.Read(addr)
	hi := m.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// readWordZPWrap is like readWord but the high byte's address wraps
// within the zero page: (addr & 0xFF00) | ((addr+1) & 0xFF). Used by
// indirect addressing through a zero-page pointer.
func readWordZPWrap(m memory.Bank, addr uint16) uint16 {
	lo := m.Read(addr)
	hiAddr := (addr & 0xFF00) | ((addr + 1) & 0xFF)
	hi := m.Read(hiAddr)
	return uint16(lo) | uint16(hi)<<8
}

// push writes val to the stack and decrements S, wrapping modulo 256.
func (c *Chip) push(val uint8) {
	c.mem.Write(StackBase+uint16(c.S), val)
	c.S--
}

// pop increments S (wrapping modulo 256) and reads the resulting stack slot.
func (c *Chip) pop() uint8 {
	c.S++
	return c.mem.Read(StackBase + uint16(c.S))
}

// pushWord pushes a 16-bit value high byte first, matching JSR/BRK/interrupt entry order.
func (c *Chip) pushWord(val uint16) {
	c.push(uint8(val >> 8))
	c.push(uint8(val))
}

// popWord pops a 16-bit value low byte first, the inverse of pushWord.
func (c *Chip) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(lo) | uint16(hi)<<8
}

// flagsNZ clears N and Z and sets them from v: Z if v is zero, N from
// bit 7 of v.
func (c *Chip) flagsNZ(v uint8) {
	c.P &^= PNegative | PZero
	if v == 0 {
		c.P |= PZero
	}
	c.P |= v & PNegative
}

// Reset puts the Chip into its documented power-on/reset state: A, X, Y
// zeroed, S = 0xFF, P = PUnused|PBreak, PC loaded from ResetVector,
// Cycles cleared, Waiting cleared.
func (c *Chip) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFF
	c.P = PUnused | PBreak
	c.PC = readWord(c.mem, ResetVector)
	c.Cycles = 0
	c.Waiting = false
	c.extraCycles = 0
	c.addCycles = false
}

// runInterrupt pushes PC then P (with brk controlling whether PBreak is
// set in the pushed copy), sets the interrupt-disable flag, and loads
// PC from vec. Costs 7 cycles, matching real hardware interrupt entry.
func (c *Chip) runInterrupt(vec uint16, brk bool) {
	c.pushWord(c.PC)
	push := c.P | PUnused
	if brk {
		push |= PBreak
	} else {
		push &^= PBreak
	}
	c.push(push)
	c.P |= PInterrupt
	c.PC = readWord(c.mem, vec)
	c.Cycles += 7
	c.Waiting = false
}

// Irq raises a maskable interrupt. A no-op if the interrupt-disable
// flag is set. Costs 7 cycles when taken.
func (c *Chip) Irq() {
	if c.P&PInterrupt != 0 {
		return
	}
	c.runInterrupt(IRQVector, false)
}

// Nmi raises a non-maskable interrupt unconditionally. Costs 7 cycles.
func (c *Chip) Nmi() {
	c.runInterrupt(NMIVector, false)
}

// Step executes exactly one instruction, or — while Waiting from a
// prior WAI — ticks the cycle counter by one and returns without
// touching memory. It always returns after a bounded number of memory
// accesses; there is no internal suspension or cancellation.
func (c *Chip) Step() {
	if c.Waiting {
		c.Cycles++
		return
	}

	op := c.mem.Read(c.PC)
	c.PC++
	c.extraCycles = 0

	entry := &opcodeTable[op]
	c.addCycles = entry.penalty

	if entry.handler == nil {
		log.Printf("opcode not implemented at PC=%04X (opcode %02X)", c.PC-1, op)
		return
	}
	entry.handler(c)
	c.Cycles += uint64(entry.cycles) + uint64(c.extraCycles)
}

// Lookup returns the mnemonic and addressing-mode tag for an opcode
// byte, for disassembly callers.
func Lookup(op uint8) (string, Mode) {
	e := &opcodeTable[op]
	return e.mnemonic, e.mode
}

// BaseCycles returns the documented base cycle count and page-cross
// penalty flag for an opcode byte.
func BaseCycles(op uint8) (cycles uint8, penalty bool) {
	e := &opcodeTable[op]
	return e.cycles, e.penalty
}
