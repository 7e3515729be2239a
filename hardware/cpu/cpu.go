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
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// CPU implements the 6502 found in many 8bit computers.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// cycleCallback is called for additional emulator functionality
	cycleCallback func() error

	// the result of the most recent instruction
	LastResult execution.Result

	// Interrupted indicates that the CPU has been put into a state outside of
	// its normal operation. When true the CPU is allowed to start a new
	// instruction even though the previous one has not been finalised.
	Interrupted bool

	// PhantomMemAccess is true while the CPU is making a read or write that
	// is a side effect of an internal operation. Cycle callbacks can use it
	// to tell these apart from the accesses an instruction asks for.
	PhantomMemAccess bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// registers are zero until Reset() is called.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
		Interrupted:  true,
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory interface with the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb CPU into a new memory interface.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.X.Label(), mc.X,
		mc.Y.Label(), mc.Y, mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status,
	)
}

// Reset CPU. The accumulator and index registers are zeroed, the stack
// pointer is put at the top of the stack page and the flags are cleared.
// The program counter is loaded from the reset vector. Memory is untouched.
//
// The reads of the reset vector are not counted as cycles.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()
	mc.Interrupted = true
	mc.PhantomMemAccess = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()

	return mc.LoadPCIndirect(addresses.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf(InvalidMidInstruction, "load PC")
	}

	lo, err := mc.mem.Read(indirectAddress)
	if err != nil && !curated.Is(err, cpubus.AddressError) {
		return err
	}
	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil && !curated.Is(err, cpubus.AddressError) {
		return err
	}
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) error {
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf(InvalidMidInstruction, "load PC")
	}

	mc.PC.Load(directAddress)

	return nil
}

// endCycle is called at the end of the imaginary CPU cycle. All memory
// accesses go through here.
func (mc *CPU) endCycle() error {
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address.
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16, phantom bool) (uint8, error) {
	mc.PhantomMemAccess = phantom
	defer func() {
		mc.PhantomMemAccess = false
	}()

	val, err := mc.mem.Read(address)
	if err != nil && !curated.Is(err, cpubus.AddressError) {
		return 0, err
	}

	err = mc.endCycle()
	if err != nil {
		return 0, err
	}

	return val, nil
}

// write8Bit writes 8 bits to the specified address.
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8, phantom bool) error {
	mc.PhantomMemAccess = phantom
	defer func() {
		mc.PhantomMemAccess = false
	}()

	err := mc.mem.Write(address, value)
	if err != nil && !curated.Is(err, cpubus.AddressError) {
		return err
	}

	return mc.endCycle()
}

// read16Bit returns 16bit value from the specified address. The high byte is
// read from the address following the low byte, wrapping from 0xffff to
// 0x0000.
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address, false)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(address+1, false)
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

type read8BitPCeffect int

const (
	loNibble read8BitPCeffect = iota
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil && !curated.Is(err, cpubus.AddressError) {
		return 0, err
	}

	mc.PC.Add(1)
	mc.LastResult.ByteCount++

	switch effect {
	case loNibble:
		mc.LastResult.InstructionData = uint16(v)
	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	err = mc.endCycle()
	if err != nil {
		return 0, err
	}

	return v, nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC(loNibble)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8BitPC(hiNibble)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// push8Bit writes value to the top of the stack and moves the stack pointer
// down. The stack pointer wraps within the stack page.
func (mc *CPU) push8Bit(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value, false)
	if err != nil {
		return err
	}
	mc.SP.Push()
	return nil
}

// pull8Bit moves the stack pointer up and reads the value it now points to.
func (mc *CPU) pull8Bit() (uint8, error) {
	mc.SP.Pull()
	return mc.read8Bit(mc.SP.Address(), false)
}

// branch moves the program counter by the signed offset if flag is true.
// Taking the branch costs an additional cycle and crossing a page costs a
// further cycle.
func (mc *CPU) branch(flag bool, offset uint16) error {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return nil
	}

	// sign extend offset
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	// phantom read while the low byte of the PC is adjusted
	oldPC := mc.PC.Address()
	_, err := mc.read8Bit(oldPC, true)
	if err != nil {
		return err
	}

	mc.PC.Add(offset)

	// if the high byte has changed then the 6502 spends another cycle fixing
	// it. the phantom read is from the address with the unfixed high byte
	if oldPC&0xff00 != mc.PC.Address()&0xff00 {
		mc.LastResult.PageFault = true
		_, err = mc.read8Bit(oldPC&0xff00|mc.PC.Address()&0x00ff, true)
		if err != nil {
			return err
		}
	}

	return nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenience function for when no additional functionality is
// required.
func NilCycleCallback() error {
	return nil
}

// Execute instructions until at least budget cycles have been consumed.
// Instructions are never split so the number of cycles consumed may be
// greater than the budget.
//
// Execution stops at the first error. In the case of an unknown opcode the
// cycles returned are those of the completed instructions.
func (mc *CPU) Execute(budget int) (int, error) {
	consumed := 0
	for consumed < budget {
		err := mc.ExecuteInstruction(NilCycleCallback)
		consumed += mc.LastResult.Cycles
		if err != nil {
			return consumed, err
		}
	}
	return consumed, nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run, thereby allowing the rest of the emulation
// to continue in step with the CPU.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	// a previous call to ExecuteInstruction() has not yet completed. it is
	// impossible to begin a new instruction
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf(InvalidMidInstruction, "execute instruction")
	}

	if cycleCallback == nil {
		cycleCallback = NilCycleCallback
	}
	mc.cycleCallback = cycleCallback
	mc.Interrupted = false

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// the opcode is looked at before it is consumed. an unknown opcode leaves
	// the CPU exactly as it was found, apart from LastResult
	operator, err := mc.mem.Read(mc.PC.Address())
	if err != nil && !curated.Is(err, cpubus.AddressError) {
		return err
	}
	mc.LastResult.OpCode = operator

	defn := mc.instructions[operator]
	if defn == nil {
		mc.LastResult.Final = true
		return curated.Errorf(UnknownOpcode, operator, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	// consume opcode
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1
	err = mc.endCycle()
	if err != nil {
		return err
	}

	// address is the effective address of the instruction (if any) and value
	// is the data the instruction works on
	var address uint16
	var value uint8

	// get address to use when reading/writing from/to memory (note that in the
	// case of immediate addressing, we are actually getting the value to use in
	// the instruction, not the address).
	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes but the 6502 still
		// reads the next byte
		_, err = mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program
		value, err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

	case instructions.Relative:
		// relative addressing is only used for branch instructions. the
		// address is an offset value from the current PC position
		var v uint8
		v, err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = uint16(v)

	case instructions.Absolute:
		if defn.Effect == instructions.Subroutine {
			// JSR reads the second byte of the address after pushing the
			// return address. the rest of the work is done by the operator
			var lo uint8
			lo, err = mc.read8BitPC(loNibble)
			if err != nil {
				return err
			}
			address = uint16(lo)
			break
		}

		address, err = mc.read16BitPC()
		if err != nil {
			return err
		}

	case instructions.ZeroPage:
		var zp uint8
		zp, err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = uint16(zp)

	case instructions.Indirect:
		// indirect addressing is only used for the JMP command
		var indirectAddress uint16
		indirectAddress, err = mc.read16BitPC()
		if err != nil {
			return err
		}

		address, err = mc.read16Bit(indirectAddress)
		if err != nil {
			return err
		}

	case instructions.IndexedIndirect: // x indexed
		var zp uint8
		zp, err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// phantom read while X is added to the zero page address
		_, err = mc.read8Bit(uint16(zp), true)
		if err != nil {
			return err
		}

		// the indexed pointer wraps within the zero page
		address, err = mc.read16Bit(uint16(zp + mc.X.Value()))
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed: // y indexed
		var zp uint8
		zp, err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		var base uint16
		base, err = mc.read16Bit(uint16(zp))
		if err != nil {
			return err
		}

		address, err = mc.indexed(base, mc.Y.Value(), defn)
		if err != nil {
			return err
		}

	case instructions.AbsoluteIndexedX:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}

		address, err = mc.indexed(base, mc.X.Value(), defn)
		if err != nil {
			return err
		}

	case instructions.AbsoluteIndexedY:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}

		address, err = mc.indexed(base, mc.Y.Value(), defn)
		if err != nil {
			return err
		}

	case instructions.ZeroPageIndexedX:
		address, err = mc.zeroPageIndexed(mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.ZeroPageIndexedY:
		address, err = mc.zeroPageIndexed(mc.Y.Value())
		if err != nil {
			return err
		}

	default:
		return curated.Errorf("cpu: unknown addressing mode for %s", defn)
	}

	// read value from memory using address found in AddressingMode switch above
	// only when:
	//	a) addressing mode is not 'implied' or 'immediate'
	//	- for immediate modes, we already have the value in lieu of an address
	//  - for implied modes, we don't need a value
	//	b) instruction is 'Read' OR 'ReadWrite'
	//  - for write modes, we only use the address to write a value we already have
	//  - for flow modes, the use of the address is very specific
	if defn.AddressingMode != instructions.Implied && defn.AddressingMode != instructions.Immediate {
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		err = mc.push8Bit(mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Php:
		err = mc.push8Bit(mc.Status.PushValue())
		if err != nil {
			return err
		}

	case instructions.Pla:
		value, err = mc.pullAfterPhantom()
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.assignmentFlags(mc.A)

	case instructions.Plp:
		value, err = mc.pullAfterPhantom()
		if err != nil {
			return err
		}
		mc.Status.PullValue(value)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.assignmentFlags(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.assignmentFlags(mc.Y)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.assignmentFlags(mc.A)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.assignmentFlags(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.assignmentFlags(mc.X)

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.And:
		mc.A.AND(value)
		mc.assignmentFlags(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.assignmentFlags(mc.A)

	case instructions.Eor:
		mc.A.EOR(value)
		mc.assignmentFlags(mc.A)

	case instructions.Bit:
		r := mc.A
		r.AND(value)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.Lda:
		mc.A.Load(value)
		mc.assignmentFlags(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.assignmentFlags(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.assignmentFlags(mc.Y)

	case instructions.Sta:
		err = mc.write8Bit(address, mc.A.Value(), false)
		if err != nil {
			return err
		}

	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value(), false)
		if err != nil {
			return err
		}

	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value(), false)
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.assignmentFlags(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.assignmentFlags(mc.Y)

	case instructions.Dex:
		mc.X.Subtract(1, true)
		mc.assignmentFlags(mc.X)

	case instructions.Dey:
		mc.Y.Subtract(1, true)
		mc.assignmentFlags(mc.Y)

	case instructions.Inc:
		r := registers.NewRegister(value, "M")
		r.Add(1, false)
		mc.assignmentFlags(r)
		err = mc.writeModified(address, value, r.Value())
		if err != nil {
			return err
		}

	case instructions.Dec:
		r := registers.NewRegister(value, "M")
		r.Subtract(1, true)
		mc.assignmentFlags(r)
		err = mc.writeModified(address, value, r.Value())
		if err != nil {
			return err
		}

	case instructions.Adc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.assignmentFlags(mc.A)

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.assignmentFlags(mc.A)

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		err = mc.shift(defn, address, value)
		if err != nil {
			return err
		}

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		err = mc.branch(!mc.Status.Carry, address)
		if err != nil {
			return err
		}

	case instructions.Bcs:
		err = mc.branch(mc.Status.Carry, address)
		if err != nil {
			return err
		}

	case instructions.Beq:
		err = mc.branch(mc.Status.Zero, address)
		if err != nil {
			return err
		}

	case instructions.Bne:
		err = mc.branch(!mc.Status.Zero, address)
		if err != nil {
			return err
		}

	case instructions.Bmi:
		err = mc.branch(mc.Status.Sign, address)
		if err != nil {
			return err
		}

	case instructions.Bpl:
		err = mc.branch(!mc.Status.Sign, address)
		if err != nil {
			return err
		}

	case instructions.Bvc:
		err = mc.branch(!mc.Status.Overflow, address)
		if err != nil {
			return err
		}

	case instructions.Bvs:
		err = mc.branch(mc.Status.Overflow, address)
		if err != nil {
			return err
		}

	case instructions.Jsr:
		// the 6502 reads from the stack while it decides what to do next
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// the PC is pointing at the last byte of the JSR instruction. this
		// is the return address that RTS will adjust
		err = mc.push8Bit(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return err
		}

		err = mc.push8Bit(uint8(mc.PC.Address()))
		if err != nil {
			return err
		}

		var hi uint8
		hi, err = mc.read8BitPC(hiNibble)
		if err != nil {
			return err
		}
		address |= uint16(hi) << 8

		mc.PC.Load(address)

	case instructions.Rts:
		var lo, hi uint8
		lo, err = mc.pullAfterPhantom()
		if err != nil {
			return err
		}

		hi, err = mc.pull8Bit()
		if err != nil {
			return err
		}

		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

		// the final cycle is spent incrementing the pulled address
		_, err = mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}
		mc.PC.Add(1)

	default:
		return curated.Errorf("cpu: unknown operator for %s", defn)
	}

	// finalise result
	mc.LastResult.Final = true

	return nil
}

// assignmentFlags sets the zero and sign flags according to the value in the
// register.
func (mc *CPU) assignmentFlags(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// zeroPageIndexed reads the zero page operand and adds the index to it. The
// result wraps within the zero page.
func (mc *CPU) zeroPageIndexed(index uint8) (uint16, error) {
	zp, err := mc.read8BitPC(loNibble)
	if err != nil {
		return 0, err
	}

	// phantom read while the index is added
	_, err = mc.read8Bit(uint16(zp), true)
	if err != nil {
		return 0, err
	}

	return uint16(zp + index), nil
}

// indexed adds the index to the base address. Read instructions only take an
// extra cycle if the addition crosses a page. Write and read-modify-write
// instructions always take the extra cycle and it is counted in the
// definition.
func (mc *CPU) indexed(base uint16, index uint8, defn *instructions.Definition) (uint16, error) {
	address := base + uint16(index)
	crossed := base&0xff00 != address&0xff00

	if crossed || defn.Effect != instructions.Read {
		// phantom read of the address before the high byte is fixed
		_, err := mc.read8Bit(base&0xff00|address&0x00ff, true)
		if err != nil {
			return 0, err
		}

		if defn.Effect == instructions.Read {
			mc.LastResult.PageFault = true
		}
	}

	return address, nil
}

// pullAfterPhantom is the first pull of an instruction that reads from the
// stack. The 6502 reads the current top of the stack while it increments the
// stack pointer.
func (mc *CPU) pullAfterPhantom() (uint8, error) {
	_, err := mc.read8Bit(mc.SP.Address(), true)
	if err != nil {
		return 0, err
	}
	return mc.pull8Bit()
}

// writeModified completes a read-modify-write instruction. The unmodified
// value is written back while the ALU works and then the new value is
// written.
func (mc *CPU) writeModified(address uint16, original uint8, modified uint8) error {
	err := mc.write8Bit(address, original, true)
	if err != nil {
		return err
	}
	return mc.write8Bit(address, modified, false)
}

// compare sets the flags as though value had been subtracted from the
// register. The register is not changed.
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.assignmentFlags(r)
}

// shift performs one of the shift or rotate instructions. Implied addressing
// is the accumulator form of the instruction.
func (mc *CPU) shift(defn *instructions.Definition, address uint16, value uint8) error {
	r := mc.A
	if defn.AddressingMode != instructions.Implied {
		r = registers.NewRegister(value, "M")
	}

	switch defn.Operator {
	case instructions.Asl:
		mc.Status.Carry = r.ASL()
	case instructions.Lsr:
		mc.Status.Carry = r.LSR()
	case instructions.Rol:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
	case instructions.Ror:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
	}
	mc.assignmentFlags(r)

	if defn.AddressingMode == instructions.Implied {
		mc.A = r
		return nil
	}

	return mc.writeModified(address, value, r.Value())
}
