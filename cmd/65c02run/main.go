// 65c02run is a small command-line driver around the cpu/memory/disassemble
// packages: it loads a flat binary image into RAM, runs the core for a
// bounded number of steps (optionally tracing each instruction), and
// separately can hand-assemble a text listing into the same binary
// format the run subcommand consumes.
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voyager-2021/be6502emu/cpu"
	"github.com/voyager-2021/be6502emu/disassemble"
	"github.com/voyager-2021/be6502emu/memory"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "65c02run",
		Short: "Run and assemble fixtures for the 65C02 core",
	}

	rootCmd.AddCommand(newRunCmd(), newAsmCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		rom    string
		offset uint16
		pc     string
		steps  int
		trace  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a binary image and step the core",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(rom)
			if err != nil {
				return fmt.Errorf("reading %q: %w", rom, err)
			}

			m := memory.New8BitRAMBank()
			m.PowerOn()
			if err := memory.Load(m, offset, data); err != nil {
				return err
			}

			def := cpu.ChipDef{Mem: m}
			if pc != "" {
				v, err := strconv.ParseUint(strings.TrimPrefix(pc, "0x"), 16, 16)
				if err != nil {
					return fmt.Errorf("invalid --pc %q: %w", pc, err)
				}
				start := uint16(v)
				def.PC = &start
			}

			c, err := cpu.Init(def)
			if err != nil {
				return err
			}

			for i := 0; i < steps; i++ {
				if trace {
					text, _ := disassemble.Step(c.PC, c.Mem())
					fmt.Println(text)
				}
				c.Step()
			}
			fmt.Printf("halted after %d steps: PC=%04X A=%02X X=%02X Y=%02X S=%02X P=%02X cycles=%d\n",
				steps, c.PC, c.A, c.X, c.Y, c.S, c.P, c.Cycles)
			return nil
		},
	}

	cmd.Flags().StringVar(&rom, "rom", "", "path to a flat binary image (required)")
	cmd.Flags().Uint16Var(&offset, "offset", 0, "address to load the image at")
	cmd.Flags().StringVar(&pc, "pc", "", "override the initial PC (hex); default is the reset vector")
	cmd.Flags().IntVar(&steps, "steps", 1000, "number of instructions to execute")
	cmd.Flags().BoolVar(&trace, "trace", false, "print a disassembly line before each step")
	cmd.MarkFlagRequired("rom")

	return cmd
}

var handAsmLine = regexp.MustCompile(`^[0-9A-Fa-f]{4}`)

func newAsmCmd() *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "asm [input] [output]",
		Short: "Hand-assemble a listing of ADDR OP A1 A2 A3 lines into a flat binary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handAssemble(args[0], args[1], offset)
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "offset to start writing assembled data; everything prior is zero filled")
	return cmd
}

// handAssemble reads lines of the form "XXXX OP A1 A2 A3", where XXXX
// is an address field (ignored — the file is expected to list
// contiguous addresses) and the remaining tokens are hex bytes, and
// writes the concatenated bytes to out.
func handAssemble(in, out string, offset int) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("opening %q: %w", in, err)
	}
	defer f.Close()

	output := make([]byte, offset)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !handAsmLine.MatchString(text) {
			continue
		}
		if idx := strings.Index(text, "\t"); idx >= 0 {
			text = text[:idx]
		}
		if idx := strings.Index(text, "(*)"); idx >= 0 {
			text = text[:idx]
		}
		if len(text) < 5 {
			continue
		}
		toks := strings.Fields(text[5:])
		if len(toks) > 3 {
			return fmt.Errorf("invalid line %d: %q", line, text)
		}
		for _, v := range toks {
			b, err := strconv.ParseUint(v, 16, 8)
			if err != nil {
				return fmt.Errorf("line %d: %q: %w", line, text, err)
			}
			output = append(output, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(out, output, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", out, err)
	}
	return nil
}
