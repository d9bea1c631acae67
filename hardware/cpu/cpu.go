// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/logger"
)

// Sentinel error patterns for faults raised by ExecuteInstruction().
const (
	DecodeFault                = "cpu: decode fault at (%#04x): %v"
	UnsupportedAddressingFault = "cpu: unsupported addressing mode (%s) for %s at (%#04x)"
)

// CPU implements the 6502 found in many home computers and games consoles of
// the late 1970s and 1980s.
type CPU struct {
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// scratch register used by read-modify-write and compare instructions
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// the result of the most recently executed instruction
	LastResult execution.Result

	// the CPU has executed a BRK instruction or has met an instruction it
	// cannot execute. the CPU will not execute any more instructions until
	// it is reset
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// prefs argument can be nil, in which case no trace or stack warnings are
// logged.
//
// The CPU is not reset by NewCPU(). Call Reset() before executing any
// instructions.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) *CPU {
	return &CPU{
		prefs:        prefs,
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset CPU. The A, X and Y registers are zeroed and all status flags are
// cleared. The stack pointer is set to 0xff and the program counter is set to
// the reset address.
//
// Note that the reset address is not used as a vector. Execution begins at
// the reset address itself.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Halted = false

	mc.PC.Load(cpubus.Reset)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
}

// push a value onto the stack
func (mc *CPU) push(value uint8) {
	address, wrapped := mc.SP.Push()
	mc.mem.Write(address, value)
	if wrapped {
		mc.stackWarning("push")
	}
}

// pull a value from the stack
func (mc *CPU) pull() uint8 {
	address, wrapped := mc.SP.Pull()
	if wrapped {
		mc.stackWarning("pull")
	}
	return mc.mem.Read(address)
}

func (mc *CPU) stackWarning(direction string) {
	if mc.prefs == nil || !mc.prefs.StackWarnings.Get().(bool) {
		return
	}
	logger.Logf(logger.Allow, "stack", "stack pointer wrapped on %s by %s at (%#04x)",
		direction, mc.LastResult.Defn.Operator, mc.LastResult.Address)
}

// halt the CPU, logging the reason
func (mc *CPU) halt(reason any) {
	mc.Halted = true
	mc.LastResult.Final = true
	logger.Log(logger.Allow, "cpu", reason)
}

// NilCycleCallback can be used as an argument to ExecuteInstruction(). It is
// equivalent to a nil argument.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The cycleCallback
// function is called once for every cycle of the instruction, after the
// instruction has been executed.
//
// Faults are returned as curated errors. A fault halts the CPU and leaves
// the registers and memory as they were before the instruction.
//
// Calling ExecuteInstruction() on a halted CPU does nothing.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if mc.Halted {
		return nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// decode opcode
	opcode := mc.mem.Read(mc.PC.Address())
	defn := mc.instructions[opcode]
	if defn == nil {
		err := curated.Errorf(DecodeFault, mc.LastResult.Address, curated.Errorf(instructions.UnassignedOpcode, opcode))
		mc.halt(err)
		return err
	}

	mc.LastResult.Defn = defn

	if !defn.Operator.Supports(defn.AddressingMode) {
		err := curated.Errorf(UnsupportedAddressingFault, defn.AddressingMode, defn.Operator, mc.LastResult.Address)
		mc.halt(err)
		return err
	}

	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	address, value := mc.resolveAddressing(defn.AddressingMode)

	// read the value for instructions that use memory
	if defn.AddressingMode.IsMemory() && (defn.Effect == instructions.Read || defn.Effect == instructions.RMW) {
		value = mc.mem.Read(address)
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		mc.push(mc.Status.Value())

	case instructions.Plp:
		mc.Status.Load(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		r := &mc.acc8
		r.Load(value)
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Lsr:
		r := &mc.acc8
		r.Load(value)
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Rol:
		r := &mc.acc8
		r.Load(value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Ror:
		r := &mc.acc8
		r.Load(value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Inc:
		r := &mc.acc8
		r.Load(value)
		r.Add(1, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Dec:
		r := &mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Adc:
		// decimal mode is not supported. the addition is always binary
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		r := &mc.acc8
		r.Load(value)
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// the return address pushed to the stack is the address of the last
		// byte of the JSR instruction. RTS adds one to the pulled address
		ret := mc.PC.Address() - 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.PC.Load(address)

	case instructions.Rts:
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))
		mc.PC.Add(1)

	case instructions.Brk:
		mc.Status.Break = true
		mc.PC.Load(cpubus.BRK)
		mc.halt(fmt.Sprintf("halted by BRK at (%#04x)", mc.LastResult.Address))

	case instructions.Rti:
		mc.Status.Load(mc.pull())
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	default:
		// every operator in the instructions table has a case above
		panic(fmt.Sprintf("cpu: unimplemented operator (%s)", defn.Operator))
	}

	// write altered value back to memory (or the accumulator) for RMW
	// instructions
	if defn.Effect == instructions.RMW {
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(value)
		} else {
			mc.mem.Write(address, value)
		}
	}

	mc.LastResult.Final = true
	mc.LastResult.Cycles = defn.Cycles

	if mc.prefs != nil && mc.prefs.Trace.Get().(bool) {
		logger.Logf(logger.Allow, "cpu", "$%04X %s", mc.LastResult.Address, mc.LastResult.String())
	}

	if cycleCallback != nil {
		for range defn.Cycles {
			if err := cycleCallback(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (mc *CPU) branch(flag bool, address uint16) {
	mc.LastResult.BranchSuccess = flag
	if flag {
		mc.PC.Load(address)
	}
}

func (mc *CPU) compare(reg registers.Register, value uint8) {
	r := &mc.acc8
	r.Load(reg.Value())
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}
