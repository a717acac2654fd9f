// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Operator defines which operation is performed by the opcode. Many opcodes
// share the same operator and differ only in addressing mode.
type Operator int

// List of documented operators.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented operators
	NOP
	ANC
	ANE
	ARR
	ASR
	AXS
	DCP
	ISC
	KIL
	LAS
	LAX
	LXA
	RLA
	RRA
	SAX
	SBC
	SHA
	SHX
	SHY
	SLO
	SRE
	TAS
)

var operatorNames = [...]string{
	Nop: "NOP", Adc: "ADC", And: "AND", Asl: "ASL", Bcc: "BCC", Bcs: "BCS",
	Beq: "BEQ", Bit: "BIT", Bmi: "BMI", Bne: "BNE", Bpl: "BPL", Brk: "BRK",
	Bvc: "BVC", Bvs: "BVS", Clc: "CLC", Cld: "CLD", Cli: "CLI", Clv: "CLV",
	Cmp: "CMP", Cpx: "CPX", Cpy: "CPY", Dec: "DEC", Dex: "DEX", Dey: "DEY",
	Eor: "EOR", Inc: "INC", Inx: "INX", Iny: "INY", Jmp: "JMP", Jsr: "JSR",
	Lda: "LDA", Ldx: "LDX", Ldy: "LDY", Lsr: "LSR", Ora: "ORA", Pha: "PHA",
	Php: "PHP", Pla: "PLA", Plp: "PLP", Rol: "ROL", Ror: "ROR", Rti: "RTI",
	Rts: "RTS", Sbc: "SBC", Sec: "SEC", Sed: "SED", Sei: "SEI", Sta: "STA",
	Stx: "STX", Sty: "STY", Tax: "TAX", Tay: "TAY", Tsx: "TSX", Txa: "TXA",
	Txs: "TXS", Tya: "TYA",

	// undocumented operators share the mnemonic of the documented operator
	// where there is one
	NOP: "NOP", ANC: "ANC", ANE: "ANE", ARR: "ARR", ASR: "ASR", AXS: "AXS",
	DCP: "DCP", ISC: "ISC", KIL: "KIL", LAS: "LAS", LAX: "LAX", LXA: "LXA",
	RLA: "RLA", RRA: "RRA", SAX: "SAX", SBC: "SBC", SHA: "SHA", SHX: "SHX",
	SHY: "SHY", SLO: "SLO", SRE: "SRE", TAS: "TAS",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[op]
}
