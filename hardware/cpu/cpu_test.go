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

package cpu_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

// addresses in the hole can not be read or written
func inHole(address uint16) bool {
	return address&0xff00 == 0xfe00
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) setResetVector(address uint16) {
	mem.internal[0xfffc] = uint8(address)
	mem.internal[0xfffd] = uint8(address >> 8)
}

func (mem mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.internal[address]
	if d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

func (mem mockMem) Read(address uint16) (uint8, error) {
	if inHole(address) {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if inHole(address) {
		return curated.Errorf(cpubus.AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

// reset machine with the program counter at origin
func reset(t *testing.T, mc *cpu.CPU, mem *mockMem, origin uint16) {
	t.Helper()
	mem.Clear()
	mem.setResetVector(origin)
	test.DemandSuccess(t, mc.Reset())
	test.DemandEquality(t, mc.PC.Address(), origin)
}

func testReset(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mem.setResetVector(0x1234)

	mc.A.Load(0x10)
	mc.X.Load(0x20)
	mc.Y.Load(0x30)
	mc.Status.Load(0xff)

	test.ExpectSuccess(t, mc.Reset())
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.Value(), 0)
	test.ExpectEquality(t, mc.LastResult.Cycles, 0)
}

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin := mem.putInstructions(0, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "sv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	mc.Status.Overflow = true
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	// PHP; PLP
	_ = mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfe)
	mem.assert(t, 0x01ff, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true
	mc.Status.Break = false

	// restore status register
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
}

func testStackStatusQuirk(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0x0200)

	// PHP; PLP; PLP
	mem.putInstructions(0x0200, 0x08, 0x28, 0x28)

	mc.Status.Load(0b11001011)
	r := step(t, mc) // PHP
	test.ExpectEquality(t, r.Cycles, 3)
	mem.assert(t, 0x01ff, 0b11111011)

	// the pulled break and unused bits do not change the live flags
	r = step(t, mc) // PLP
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.Status.Value(), 0b11001011)

	// pull a value with no bits set. the live break bit survives
	mc.Status.Break = true
	mc.SP.Load(0xfe)
	mem.putInstructions(0x01ff, 0x00)
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.Status.Value(), registers.MaskBreak)
}

func testStackInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// LDA #$80; PHA; LDA #$01; PLA; TSX; LDX #$10; TXS; TSX
	mem.putInstructions(0, 0xa9, 0x80, 0x48, 0xa9, 0x01, 0x68, 0xba, 0xa2, 0x10, 0x9a, 0xba)
	step(t, mc)      // LDA #$80
	r := step(t, mc) // PHA
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.SP.Value(), 0xfe)
	mem.assert(t, 0x01ff, 0x80)

	step(t, mc) // LDA #$01
	test.ExpectEquality(t, mc.Status.Sign, false)

	r = step(t, mc) // PLA
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	step(t, mc) // TSX
	test.ExpectEquality(t, mc.X.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.Sign, true)

	step(t, mc) // LDX #$10
	mc.Status.Zero = true
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), 0x10)
	test.ExpectEquality(t, mc.Status.Zero, true)

	step(t, mc) // TSX
	test.ExpectEquality(t, mc.Status.Zero, false)

	// the stack pointer wraps within the stack page
	reset(t, mc, mem, 0)
	mc.SP.Load(0x00)
	mem.putInstructions(0, 0xa9, 0x42, 0x48, 0x68)
	step(t, mc) // LDA #$42
	step(t, mc) // PHA
	mem.assert(t, 0x0100, 0x42)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// LDA immediate; ADC immediate
	origin := mem.putInstructions(0, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.A.Value(), 3)
	test.ExpectEquality(t, mc.Status.Carry, true)

	// SBC immediate with borrow
	mem.putInstructions(origin, 0xe9, 4)
	step(t, mc) // SBC #4
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func testADC(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	type adcTest struct {
		a, operand uint8
		carry      bool
		result     uint8
		c, v, z, n bool
	}

	tests := []adcTest{
		{a: 0x82, operand: 0x83, result: 0x05, c: true, v: true},
		{a: 0x01, operand: 0x01, result: 0x02},
		{a: 0x01, operand: 0xff, result: 0x00, c: true, z: true},
		{a: 0x7f, operand: 0x01, result: 0x80, v: true, n: true},
		{a: 0x80, operand: 0xff, result: 0x7f, c: true, v: true},
		{a: 0xff, operand: 0x00, carry: true, result: 0x00, c: true, z: true},
		{a: 0x7f, operand: 0x00, carry: true, result: 0x80, v: true, n: true},
		{a: 0x3f, operand: 0x40, carry: true, result: 0x80, v: true, n: true},
		{a: 0xff, operand: 0xff, carry: true, result: 0xff, c: true, n: true},
	}

	for i, tt := range tests {
		reset(t, mc, mem, 0)
		mem.putInstructions(0, 0xa9, tt.a, 0x69, tt.operand)
		step(t, mc) // LDA
		mc.Status.Carry = tt.carry
		step(t, mc) // ADC

		test.ExpectEquality(t, mc.A.Value(), tt.result, i)
		test.ExpectEquality(t, mc.Status.Carry, tt.c, i)
		test.ExpectEquality(t, mc.Status.Overflow, tt.v, i)
		test.ExpectEquality(t, mc.Status.Zero, tt.z, i)
		test.ExpectEquality(t, mc.Status.Sign, tt.n, i)
	}
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// ORA immediate; EOR immediate; AND immediate
	origin := mem.putInstructions(0, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	step(t, mc) // ORA #$FF
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.Sign, true)
	step(t, mc) // EOR #$F0
	test.ExpectEquality(t, mc.A.Value(), 0x0f)
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.Status.Zero, false)

	// ASL implied; LSR implied; LSR implied
	origin = mem.putInstructions(origin, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.Status.Carry, false)
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.Status.Carry, false)
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)

	// ROL implied; ROR implied; ROR implied; ROR implied
	origin = mem.putInstructions(origin, 0x2a, 0x6a, 0x6a, 0x6a)
	step(t, mc) // ROL
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.Status.Carry, false)
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Carry, true)
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 0x40)

	// ASL zero page; ROL absolute
	mem.putInstructions(0x80, 0xc0)
	mem.putInstructions(0x1000, 0x81)
	mem.putInstructions(origin, 0x06, 0x80, 0x2e, 0x00, 0x10)
	r := step(t, mc) // ASL $80
	test.ExpectEquality(t, r.Cycles, 5)
	mem.assert(t, 0x80, 0x80)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.A.Value(), 0x40)
	r = step(t, mc) // ROL $1000
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x1000, 0x03)
	test.ExpectEquality(t, mc.Status.Carry, true)
}

func testBit(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// LDA #$01; BIT $80; BIT $1000
	mem.putInstructions(0x80, 0xc0)
	mem.putInstructions(0x1000, 0x01)
	mem.putInstructions(0, 0xa9, 0x01, 0x24, 0x80, 0x2c, 0x00, 0x10)
	step(t, mc) // LDA #$01
	step(t, mc) // BIT $80
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.Status.Overflow, true)
	step(t, mc) // BIT $1000
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Sign, false)
	test.ExpectEquality(t, mc.Status.Overflow, false)
}

func testImmediateImplied(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// LDX immediate; INX; DEX
	origin := mem.putInstructions(0, 0xa2, 5, 0xe8, 0xca)
	step(t, mc) // LDX #5
	test.ExpectEquality(t, mc.X.Value(), 5)
	step(t, mc) // INX
	test.ExpectEquality(t, mc.X.Value(), 6)
	step(t, mc) // DEX
	test.ExpectEquality(t, mc.X.Value(), 5)

	// PC should be 4
	test.ExpectEquality(t, mc.PC.Address(), 4)

	// LDY immediate; INY; DEY
	origin = mem.putInstructions(origin, 0xa0, 5, 0xc8, 0x88)
	step(t, mc) // LDY #5
	test.ExpectEquality(t, mc.Y.Value(), 5)
	step(t, mc) // INY
	test.ExpectEquality(t, mc.Y.Value(), 6)
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Y.Value(), 5)

	// DEY wraps
	origin = mem.putInstructions(origin, 0xa0, 0, 0x88)
	step(t, mc) // LDY #0
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Y.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.Status.Zero, false)

	// TAX; TAY; TXA; TYA
	mc.A.Load(0x81)
	mem.putInstructions(origin, 0xaa, 0xa8, 0xa2, 0x00, 0x8a, 0x98)
	step(t, mc) // TAX
	test.ExpectEquality(t, mc.X.Value(), 0x81)
	step(t, mc) // TAY
	test.ExpectEquality(t, mc.Y.Value(), 0x81)
	step(t, mc) // LDX #0
	step(t, mc) // TXA
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc) // TYA
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func testOtherAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	mem.putInstructions(0x0100, 123, 43)
	mem.putInstructions(0x01a2, 47)

	// LDA zero page
	origin := mem.putInstructions(0, 0xa5, 0x00)
	step(t, mc) // LDA $00
	test.ExpectEquality(t, mc.A.Value(), 0xa5)

	// LDX immediate; LDA zero page,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xb5, 0x01)
	step(t, mc)      // LDX #1
	r := step(t, mc) // LDA 01,X
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.A.Value(), 0xa2)

	// LDA absolute
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x01)
	step(t, mc) // LDA $0100
	test.ExpectEquality(t, mc.A.Value(), 123)

	// LDA absolute,X
	origin = mem.putInstructions(origin, 0xbd, 0x00, 0x01)
	r = step(t, mc) // LDA $0100,X
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.A.Value(), 43)

	// LDY immediate; LDA absolute,Y
	origin = mem.putInstructions(origin, 0xa0, 0xa2, 0xb9, 0x00, 0x01)
	step(t, mc)     // LDY #$a2
	r = step(t, mc) // LDA $0100,Y
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, mc.A.Value(), 47)

	// LDA (zp,X); points to $0100
	mem.putInstructions(0x0040, 0x00, 0x01)
	origin = mem.putInstructions(origin, 0xa1, 0x3f)
	r = step(t, mc) // LDA ($3f,X)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.A.Value(), 123)

	// LDA (zp),Y; $0100 + $a2
	mem.putInstructions(origin, 0xb1, 0x40)
	r = step(t, mc) // LDA ($40),Y
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.A.Value(), 47)
}

func testPageCrossing(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)
	mem.putInstructions(0x1100, 0x99)

	// LDX #$20; LDA $10e0,X
	origin := mem.putInstructions(0, 0xa2, 0x20, 0xbd, 0xe0, 0x10)
	step(t, mc)      // LDX #$20
	r := step(t, mc) // LDA $10e0,X
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.A.Value(), 0x99)

	// STA $10e0,X costs the same with or without a page cross
	origin = mem.putInstructions(origin, 0x9d, 0xe0, 0x10, 0x9d, 0x00, 0x10)
	r = step(t, mc) // STA $10e0,X
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 5)
	r = step(t, mc) // STA $1000,X
	test.ExpectEquality(t, r.Cycles, 5)
	mem.assert(t, 0x1020, 0x99)

	// LDY #$ff; LDA ($40),Y
	mem.putInstructions(0x40, 0x01, 0x10)
	origin = mem.putInstructions(origin, 0xa0, 0xff, 0xb1, 0x40)
	step(t, mc)     // LDY #$ff
	r = step(t, mc) // LDA ($40),Y
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.A.Value(), 0x99)

	// STA ($40),Y
	mem.putInstructions(0x40, 0x00, 0x20)
	mem.putInstructions(origin, 0x91, 0x40)
	r = step(t, mc) // STA ($40),Y
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x20ff, 0x99)
}

func testZeroPageWrap(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0x0200)
	mem.putInstructions(0x000a, 0x55)
	mem.putInstructions(0x010a, 0xaa)

	// LDX #$86; LDA $84,X; LDY #$86; LDX $84,Y; STA $90,X
	mem.putInstructions(0x0200, 0xa2, 0x86, 0xb5, 0x84, 0xa0, 0x86, 0xb6, 0x84, 0x95, 0x90)
	step(t, mc) // LDX #$86
	step(t, mc) // LDA $84,X
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	step(t, mc) // LDY #$86
	step(t, mc) // LDX $84,Y
	test.ExpectEquality(t, mc.X.Value(), 0x55)
	step(t, mc) // STA $90,X
	mem.assert(t, 0x00e5, 0x55)

	// (zp,X) pointer address wraps within the zero page
	reset(t, mc, mem, 0x0200)
	mem.putInstructions(0x0005, 0x00, 0x30)
	mem.putInstructions(0x3000, 0x77)
	mem.putInstructions(0x0200, 0xa2, 0x85, 0xa1, 0x80)
	step(t, mc) // LDX #$85
	step(t, mc) // LDA ($80,X)
	test.ExpectEquality(t, mc.A.Value(), 0x77)
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// LDA immediate; STA absolute
	origin := mem.putInstructions(0, 0xa9, 0x54, 0x8d, 0x00, 0x01)
	step(t, mc)      // LDA #$54
	r := step(t, mc) // STA $0100
	test.ExpectEquality(t, r.Cycles, 4)
	mem.assert(t, 0x0100, 0x54)

	// LDX immediate; STX zero page
	origin = mem.putInstructions(origin, 0xa2, 0x63, 0x86, 0x80)
	step(t, mc)     // LDX #$63
	r = step(t, mc) // STX $80
	test.ExpectEquality(t, r.Cycles, 3)
	mem.assert(t, 0x80, 0x63)

	// LDY immediate; STY absolute
	origin = mem.putInstructions(origin, 0xa0, 0x64, 0x8c, 0x00, 0x02)
	step(t, mc) // LDY #$64
	step(t, mc) // STY $0200
	mem.assert(t, 0x0200, 0x64)

	// INC zero page
	origin = mem.putInstructions(origin, 0xe6, 0x80)
	r = step(t, mc) // INC $80
	test.ExpectEquality(t, r.Cycles, 5)
	mem.assert(t, 0x80, 0x64)

	// DEC absolute
	origin = mem.putInstructions(origin, 0xce, 0x00, 0x01)
	r = step(t, mc) // DEC $0100
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x0100, 0x53)

	// INC absolute,X wraps to zero
	mem.putInstructions(0x0300, 0xff)
	mem.putInstructions(origin, 0xa2, 0x00, 0xfe, 0x00, 0x03)
	step(t, mc)     // LDX #0
	r = step(t, mc) // INC $0300,X
	test.ExpectEquality(t, r.Cycles, 7)
	mem.assert(t, 0x0300, 0x00)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func testComparisonInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// CMP immediate (equality)
	origin := mem.putInstructions(0, 0xc9, 0x00)
	step(t, mc) // CMP #$00
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")

	// LDA immediate; CMP immediate
	origin = mem.putInstructions(origin, 0xa9, 0xf6, 0xc9, 0x18)
	step(t, mc) // LDA #$F6
	step(t, mc) // CMP #$18
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizC")
	test.ExpectEquality(t, mc.A.Value(), 0xf6)

	// LDX immediate; CPX immediate
	origin = mem.putInstructions(origin, 0xa2, 0x06, 0xe0, 0x81)
	step(t, mc) // LDX #$06
	step(t, mc) // CPX #$81
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizc")

	// LDY immediate; CPY immediate
	origin = mem.putInstructions(origin, 0xa0, 0x7f, 0xc0, 0x7f)
	step(t, mc) // LDY #$7F
	step(t, mc) // CPY #$7F
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")

	// overflow flag is untouched by compare
	mc.Status.Overflow = true
	mem.putInstructions(origin, 0xc0, 0x00)
	step(t, mc) // CPY #$00
	test.ExpectEquality(t, mc.Status.String(), "sV-bdizC")
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// BCC forwards
	mem.putInstructions(0, 0x90, 0x02)
	r := step(t, mc)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x04)

	// BCS not taken
	mem.putInstructions(0x04, 0xb0, 0x02)
	r = step(t, mc)
	test.ExpectEquality(t, r.BranchSuccess, false)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x06)

	// BNE backwards
	mem.putInstructions(0x06, 0xd0, 0xfa)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x02)

	// branches that cross a page
	reset(t, mc, mem, 0x10f0)
	mem.putInstructions(0x10f0, 0x10, 0x20)
	r = step(t, mc) // BPL
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x1112)

	reset(t, mc, mem, 0x1000)
	mem.putInstructions(0x1000, 0x50, 0x80)
	r = step(t, mc) // BVC
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x0f82)

	// every branch in both states
	branches := []struct {
		opcode  uint8
		set     func(bool)
		takenOn bool
	}{
		{0x90, func(v bool) { mc.Status.Carry = v }, false},
		{0xb0, func(v bool) { mc.Status.Carry = v }, true},
		{0xd0, func(v bool) { mc.Status.Zero = v }, false},
		{0xf0, func(v bool) { mc.Status.Zero = v }, true},
		{0x10, func(v bool) { mc.Status.Sign = v }, false},
		{0x30, func(v bool) { mc.Status.Sign = v }, true},
		{0x50, func(v bool) { mc.Status.Overflow = v }, false},
		{0x70, func(v bool) { mc.Status.Overflow = v }, true},
	}

	for _, b := range branches {
		for _, flag := range []bool{false, true} {
			reset(t, mc, mem, 0x0200)
			mem.putInstructions(0x0200, b.opcode, 0x10)
			b.set(flag)
			r = step(t, mc)
			taken := flag == b.takenOn
			test.ExpectEquality(t, r.BranchSuccess, taken, fmt.Sprintf("%#02x", b.opcode))
			if taken {
				test.ExpectEquality(t, mc.PC.Address(), 0x0212, fmt.Sprintf("%#02x", b.opcode))
			} else {
				test.ExpectEquality(t, mc.PC.Address(), 0x0202, fmt.Sprintf("%#02x", b.opcode))
			}
		}
	}
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// JMP absolute
	mem.putInstructions(0, 0x4c, 0x00, 0x01)
	r := step(t, mc) // JMP $100
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x0100)

	// JMP indirect
	reset(t, mc, mem, 0)
	mem.putInstructions(0x0050, 0x49, 0x01)
	mem.putInstructions(0, 0x6c, 0x50, 0x00)
	r = step(t, mc) // JMP ($50)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC.Address(), 0x0149)

	// the pointer is a plain 16bit read. it is not confined to the page
	reset(t, mc, mem, 0)
	mem.putInstructions(0x10ff, 0x34, 0x12)
	mem.putInstructions(0, 0x6c, 0xff, 0x10)
	step(t, mc) // JMP ($10ff)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
}

func testSubroutineInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0x1000)

	// JSR absolute; RTS
	mem.putInstructions(0x1000, 0x20, 0x10, 0x30)
	mem.putInstructions(0x3010, 0x60)

	r := step(t, mc) // JSR $3010
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, r.InstructionData, 0x3010)
	test.ExpectEquality(t, mc.PC.Address(), 0x3010)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	mem.assert(t, 0x01ff, 0x10)
	mem.assert(t, 0x01fe, 0x02)

	r = step(t, mc) // RTS
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x1003)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	// the same round trip as a single budget
	reset(t, mc, mem, 0x1000)
	mem.putInstructions(0x1000, 0x20, 0x10, 0x30)
	mem.putInstructions(0x3010, 0x60)
	consumed, err := mc.Execute(12)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, consumed, 12)
	test.ExpectEquality(t, mc.PC.Address(), 0x1003)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func testDecimalMode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0)

	// decimal mode is remembered but arithmetic is always binary
	mem.putInstructions(0, 0xf8, 0xa9, 0x20, 0x38, 0xe9, 0x01)
	step(t, mc) // SED
	step(t, mc) // LDA #$20
	step(t, mc) // SEC
	step(t, mc) // SBC #$01
	test.ExpectEquality(t, mc.Status.DecimalMode, true)
	test.ExpectEquality(t, mc.A.Value(), 0x1f)
}

func testUnknownOpcode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0x0200)

	// LDA #$01; (BRK is not supported)
	mem.putInstructions(0x0200, 0xa9, 0x01, 0x00)
	consumed, err := mc.Execute(100)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.UnknownOpcode), true)
	test.ExpectEquality(t, consumed, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.LastResult.Final, true)
	test.ExpectEquality(t, mc.LastResult.Address, 0x0202)
	test.ExpectEquality(t, mc.LastResult.Cycles, 0)

	// the offending address is one of the error's values
	v := curated.Values(err, cpu.UnknownOpcode)
	test.DemandEquality(t, len(v), 2)
	test.ExpectEquality(t, v[0].(uint8), 0x00)
	test.ExpectEquality(t, v[1].(uint16), 0x0202)

	// repeated attempts fail in the same way
	err = mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectEquality(t, curated.Is(err, cpu.UnknownOpcode), true)
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)

	// fixing memory allows execution to continue
	mem.putInstructions(0x0202, 0xea)
	step(t, mc) // NOP
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)

	// illegal opcodes are unknown too
	for _, op := range []uint8{0x02, 0x40, 0x1a, 0xff} {
		reset(t, mc, mem, 0x0200)
		mem.putInstructions(0x0200, op)
		err = mc.ExecuteInstruction(cpu.NilCycleCallback)
		test.ExpectEquality(t, curated.Is(err, cpu.UnknownOpcode), true, fmt.Sprintf("%#02x", op))
	}
}

func testCycleCallback(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0x0200)
	mem.putInstructions(0x0200, 0x20, 0x00, 0x03, 0xea)
	mem.putInstructions(0x0300, 0x60)

	// the callback is called once for every cycle
	var count int
	err := mc.ExecuteInstruction(func() error {
		count++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 6)
	test.ExpectEquality(t, count, mc.LastResult.Cycles)

	// an error in the callback leaves the instruction unfinished
	errStop := errors.New("stop")
	err = mc.ExecuteInstruction(func() error {
		return errStop
	})
	test.ExpectEquality(t, errors.Is(err, errStop), true)
	test.ExpectEquality(t, mc.LastResult.Final, false)

	// a new instruction can not be started
	err = mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectEquality(t, curated.Is(err, cpu.InvalidMidInstruction), true)
	test.ExpectEquality(t, curated.Is(mc.LoadPC(0x0200), cpu.InvalidMidInstruction), true)

	// until the CPU is reset
	test.ExpectSuccess(t, mc.Reset())
	step(t, mc)
}

func testInaccessibleMemory(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, 0x0200)

	// LDA #$01; STA $fe10; LDA $fe10
	mem.putInstructions(0x0200, 0xa9, 0x01, 0x8d, 0x10, 0xfe, 0xad, 0x10, 0xfe)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	testReset(t, mc, mem)
	testStatusInstructions(t, mc, mem)
	testStackStatusQuirk(t, mc, mem)
	testStackInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testADC(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testBit(t, mc, mem)
	testImmediateImplied(t, mc, mem)
	testOtherAddressingModes(t, mc, mem)
	testPageCrossing(t, mc, mem)
	testZeroPageWrap(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testComparisonInstructions(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testSubroutineInstructions(t, mc, mem)
	testDecimalMode(t, mc, mem)
	testUnknownOpcode(t, mc, mem)
	testCycleCallback(t, mc, mem)
	testInaccessibleMemory(t, mc, mem)
}

func TestEndToEnd(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA #$F0; AND #$1F
	mem.setResetVector(0x2000)
	mem.putInstructions(0x2000, 0xa9, 0xf0, 0x29, 0x1f)
	test.DemandSuccess(t, mc.Reset())

	consumed, err := mc.Execute(4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, consumed, 4)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
}

func TestLoop(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA #$10; STA $80; LDX #$00
	// loop: INC $80; INX; JMP loop
	mem.setResetVector(0x0600)
	mem.putInstructions(0x0600, 0xa9, 0x10, 0x85, 0x80, 0xa2, 0x00,
		0xe6, 0x80, 0xe8, 0x4c, 0x06, 0x06)
	test.DemandSuccess(t, mc.Reset())

	const setup = 2 + 3 + 2
	const iteration = 5 + 2 + 3
	budget := setup + iteration*0x38

	consumed, err := mc.Execute(budget)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, consumed, budget)
	mem.assert(t, 0x80, 0x48)
	test.ExpectEquality(t, mc.X.Value(), 0x38)
	test.ExpectEquality(t, mc.PC.Address(), 0x0606)
}

func TestExecuteOverrun(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA $1000; LDA $1000
	mem.putInstructions(0, 0xad, 0x00, 0x10, 0xad, 0x00, 0x10)
	test.DemandSuccess(t, mc.Reset())

	// instructions are never split
	consumed, err := mc.Execute(5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, consumed, 8)

	consumed, err = mc.Execute(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, consumed, 0)
}

// every defined opcode executes in exactly the documented number of cycles
// when no page is crossed.
func TestCycleExactness(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}

		mem.Clear()
		mem.putInstructions(0x0200, defn.OpCode, 0x10, 0x10)
		mem.setResetVector(0x0200)
		test.DemandSuccess(t, mc.Reset())

		expected := defn.Cycles
		if defn.IsBranch() {
			// with all flags clear the "branch on clear" instructions are taken
			switch defn.Operator {
			case instructions.Bcc, instructions.Bne, instructions.Bpl, instructions.Bvc:
				expected++
			}
		}

		consumed, err := mc.Execute(expected)
		test.ExpectSuccess(t, err, defn)
		test.ExpectEquality(t, consumed, expected, defn)
		test.ExpectSuccess(t, mc.LastResult.IsValid(), defn)
		test.ExpectEquality(t, mc.LastResult.ByteCount, defn.Bytes, defn)
	}
}

// flagsTouched lists the flags, other than zero and sign, that each operator
// is allowed to change.
var flagsTouched = map[instructions.Operator]uint8{
	instructions.Clc: registers.MaskCarry,
	instructions.Sec: registers.MaskCarry,
	instructions.Cld: registers.MaskDecimalMode,
	instructions.Sed: registers.MaskDecimalMode,
	instructions.Cli: registers.MaskInterruptDisable,
	instructions.Sei: registers.MaskInterruptDisable,
	instructions.Clv: registers.MaskOverflow,
	instructions.Plp: 0xff,
	instructions.Adc: registers.MaskCarry | registers.MaskOverflow,
	instructions.Sbc: registers.MaskCarry | registers.MaskOverflow,
	instructions.Cmp: registers.MaskCarry,
	instructions.Cpx: registers.MaskCarry,
	instructions.Cpy: registers.MaskCarry,
	instructions.Asl: registers.MaskCarry,
	instructions.Lsr: registers.MaskCarry,
	instructions.Rol: registers.MaskCarry,
	instructions.Ror: registers.MaskCarry,
	instructions.Bit: registers.MaskOverflow,
}

func TestFlagPurity(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	const protected = registers.MaskCarry | registers.MaskOverflow | registers.MaskDecimalMode |
		registers.MaskInterruptDisable | registers.MaskBreak

	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}

		for _, status := range []uint8{0x00, 0xff, 0x5d, 0xa2} {
			mem.Clear()
			mem.putInstructions(0x0200, defn.OpCode, 0x90, 0x10)
			mem.putInstructions(0x1090, 0xc3)
			mem.putInstructions(0x0090, 0xc3)
			mem.setResetVector(0x0200)
			test.DemandSuccess(t, mc.Reset())
			mc.A.Load(0x81)
			mc.Status.Load(status)

			step(t, mc)

			mask := protected &^ flagsTouched[defn.Operator]
			test.ExpectEquality(t, mc.Status.Value()&mask, status&mask, defn, status)
		}
	}
}
