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

package instructions

// Operator defines which operation is performed by an instruction. The
// addressing mode is separate.
type Operator int

// List of valid Operator values.
const (
	Nop Operator = iota

	// flags
	Clc
	Sec
	Cld
	Sed
	Cli
	Sei
	Clv

	// stack
	Pha
	Php
	Pla
	Plp

	// transfers
	Tax
	Tay
	Txa
	Tya
	Tsx
	Txs

	// logical
	And
	Ora
	Eor
	Bit

	// load and store
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty

	// increment and decrement
	Inc
	Dec
	Inx
	Iny
	Dex
	Dey

	// arithmetic
	Adc
	Sbc
	Cmp
	Cpx
	Cpy

	// shift and rotate
	Asl
	Lsr
	Rol
	Ror

	// flow
	Jmp
	Bcc
	Bcs
	Beq
	Bmi
	Bne
	Bpl
	Bvc
	Bvs

	// subroutines
	Jsr
	Rts
)

var mnemonics = [...]string{
	Nop: "NOP",
	Clc: "CLC", Sec: "SEC", Cld: "CLD", Sed: "SED", Cli: "CLI", Sei: "SEI", Clv: "CLV",
	Pha: "PHA", Php: "PHP", Pla: "PLA", Plp: "PLP",
	Tax: "TAX", Tay: "TAY", Txa: "TXA", Tya: "TYA", Tsx: "TSX", Txs: "TXS",
	And: "AND", Ora: "ORA", Eor: "EOR", Bit: "BIT",
	Lda: "LDA", Ldx: "LDX", Ldy: "LDY", Sta: "STA", Stx: "STX", Sty: "STY",
	Inc: "INC", Dec: "DEC", Inx: "INX", Iny: "INY", Dex: "DEX", Dey: "DEY",
	Adc: "ADC", Sbc: "SBC", Cmp: "CMP", Cpx: "CPX", Cpy: "CPY",
	Asl: "ASL", Lsr: "LSR", Rol: "ROL", Ror: "ROR",
	Jmp: "JMP", Bcc: "BCC", Bcs: "BCS", Beq: "BEQ", Bmi: "BMI", Bne: "BNE", Bpl: "BPL", Bvc: "BVC", Bvs: "BVS",
	Jsr: "JSR", Rts: "RTS",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[op]
}
