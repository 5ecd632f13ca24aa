// Package disassemble renders a single instruction at a given PC as
// text, using the same opcode table the cpu package executes against
// so disassembly and execution can never disagree about an opcode's
// mnemonic, mode, or length.
package disassemble

import (
	"fmt"

	"github.com/voyager-2021/be6502emu/cpu"
	"github.com/voyager-2021/be6502emu/memory"
)

// Step disassembles the instruction at pc and returns its text and the
// number of bytes (including the opcode byte) the PC should advance to
// reach the next instruction. It does not interpret the instruction —
// a JMP operand is rendered as an address, never followed. This always
// reads up to two bytes past pc, regardless of the actual instruction
// length, so the caller must ensure those addresses are valid (they
// may simply be read back as whatever a flat RAM bank holds).
func Step(pc uint16, m memory.Bank) (string, int) {
	op := m.Read(pc)
	mnemonic, mode := cpu.Lookup(op)
	if mnemonic == "" {
		return fmt.Sprintf("%04X: .BYTE $%02X (not implemented)", pc, op), 1
	}

	operandBytes := int(mode.OperandSize())
	b1 := m.Read(pc + 1)
	b2 := m.Read(pc + 2)

	var operand string
	switch mode {
	case cpu.ModeImplied, cpu.ModeAccumulator:
		operand = ""
	case cpu.ModeImmediate:
		operand = fmt.Sprintf("#$%02X", b1)
	case cpu.ModeZeroPage:
		operand = fmt.Sprintf("$%02X", b1)
	case cpu.ModeZeroPageX:
		operand = fmt.Sprintf("$%02X,X", b1)
	case cpu.ModeZeroPageY:
		operand = fmt.Sprintf("$%02X,Y", b1)
	case cpu.ModeIndirectX:
		operand = fmt.Sprintf("($%02X,X)", b1)
	case cpu.ModeIndirectY:
		operand = fmt.Sprintf("($%02X),Y", b1)
	case cpu.ModeZeroPageIndirect:
		operand = fmt.Sprintf("($%02X)", b1)
	case cpu.ModeAbsolute:
		operand = fmt.Sprintf("$%02X%02X", b2, b1)
	case cpu.ModeAbsoluteX:
		operand = fmt.Sprintf("$%02X%02X,X", b2, b1)
	case cpu.ModeAbsoluteY:
		operand = fmt.Sprintf("$%02X%02X,Y", b2, b1)
	case cpu.ModeIndirect:
		operand = fmt.Sprintf("($%02X%02X)", b2, b1)
	case cpu.ModeIndirectAbsoluteX:
		operand = fmt.Sprintf("($%02X%02X,X)", b2, b1)
	case cpu.ModeRelative:
		target := pc + 2 + uint16(int16(int8(b1)))
		operand = fmt.Sprintf("$%04X", target)
	}

	text := mnemonic
	if operand != "" {
		text = fmt.Sprintf("%s %s", mnemonic, operand)
	}
	return fmt.Sprintf("%04X: %s", pc, text), 1 + operandBytes
}
