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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	rtest "github.com/jetsetilly/gopher6502/hardware/cpu/registers/test"
	"github.com/jetsetilly/gopher6502/test"
)

func TestUndocumented(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	tests := []struct {
		name    string
		program []uint8
		setup   func()
		check   func(t *testing.T)
	}{
		{
			name:    "LAX zero page",
			program: []uint8{0xa7, 0x80},
			setup: func() {
				mem.putInstructions(0x0080, 0x85)
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0x85)
				rtest.EquateRegisters(t, mc.X, 0x85)
				rtest.EquateRegisters(t, mc.Status, "Sv-bdizc")
			},
		},
		{
			name:    "SAX zero page",
			program: []uint8{0x87, 0x80},
			setup: func() {
				mc.A.Load(0xf0)
				mc.X.Load(0x3c)
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0080, 0x30)
				rtest.EquateRegisters(t, mc.Status, "sv-bdizc")
			},
		},
		{
			name:    "DCP zero page",
			program: []uint8{0xc7, 0x80},
			setup: func() {
				mem.putInstructions(0x0080, 0x11)
				mc.A.Load(0x10)
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0080, 0x10)
				rtest.EquateRegisters(t, mc.Status, "sv-bdiZC")
			},
		},
		{
			name:    "ISC zero page",
			program: []uint8{0xe7, 0x80},
			setup: func() {
				mem.putInstructions(0x0080, 0x0f)
				mc.A.Load(0x20)
				mc.Status.Carry = true
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0080, 0x10)
				rtest.EquateRegisters(t, mc.A, 0x10)
				rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
			},
		},
		{
			name:    "SLO zero page",
			program: []uint8{0x07, 0x80},
			setup: func() {
				mem.putInstructions(0x0080, 0x81)
				mc.A.Load(0x01)
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0080, 0x02)
				rtest.EquateRegisters(t, mc.A, 0x03)
				rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
			},
		},
		{
			name:    "RLA zero page",
			program: []uint8{0x27, 0x80},
			setup: func() {
				mem.putInstructions(0x0080, 0x81)
				mc.A.Load(0xff)
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0080, 0x02)
				rtest.EquateRegisters(t, mc.A, 0x02)
				rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
			},
		},
		{
			name:    "SRE zero page",
			program: []uint8{0x47, 0x80},
			setup: func() {
				mem.putInstructions(0x0080, 0x03)
				mc.A.Load(0x01)
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0080, 0x01)
				rtest.EquateRegisters(t, mc.A, 0x00)
				rtest.EquateRegisters(t, mc.Status, "sv-bdiZC")
			},
		},
		{
			name:    "RRA zero page",
			program: []uint8{0x67, 0x80},
			setup: func() {
				mem.putInstructions(0x0080, 0x02)
				mc.A.Load(0x01)
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0080, 0x01)
				rtest.EquateRegisters(t, mc.A, 0x02)
				rtest.EquateRegisters(t, mc.Status, "sv-bdizc")
			},
		},
		{
			name:    "ANC immediate",
			program: []uint8{0x0b, 0x80},
			setup: func() {
				mc.A.Load(0xff)
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0x80)
				rtest.EquateRegisters(t, mc.Status, "Sv-bdizC")
			},
		},
		{
			name:    "ASR immediate",
			program: []uint8{0x4b, 0x03},
			setup: func() {
				mc.A.Load(0xff)
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0x01)
				rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
			},
		},
		{
			name:    "ARR immediate",
			program: []uint8{0x6b, 0xff},
			setup: func() {
				mc.A.Load(0xff)
				mc.Status.Carry = true
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0xff)
				rtest.EquateRegisters(t, mc.Status, "Sv-bdizC")
			},
		},
		{
			name:    "ARR immediate (overflow)",
			program: []uint8{0x6b, 0x40},
			setup: func() {
				mc.A.Load(0xff)
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0x20)
				rtest.EquateRegisters(t, mc.Status, "sV-bdizc")
			},
		},
		{
			name:    "AXS immediate",
			program: []uint8{0xcb, 0x02},
			setup: func() {
				mc.A.Load(0x0f)
				mc.X.Load(0x07)
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.X, 0x05)
				rtest.EquateRegisters(t, mc.A, 0x0f)
				rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
			},
		},
		{
			name:    "SBC immediate",
			program: []uint8{0xeb, 0x01},
			setup: func() {
				mc.A.Load(0x05)
				mc.Status.Carry = true
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0x04)
				rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
			},
		},
		{
			name:    "LAS absolute,Y",
			program: []uint8{0xbb, 0x00, 0x02},
			setup: func() {
				mem.putInstructions(0x0200, 0xf3)
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0xf3)
				rtest.EquateRegisters(t, mc.X, 0xf3)
				rtest.EquateRegisters(t, mc.SP, 0xf3)
				rtest.EquateRegisters(t, mc.Status, "Sv-bdizc")
			},
		},
		{
			name:    "SHX absolute,Y",
			program: []uint8{0x9e, 0x00, 0x02},
			setup: func() {
				mc.X.Load(0xff)
				mc.Y.Load(0x01)
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0201, 0x03)
			},
		},
		{
			name:    "SHY absolute,X",
			program: []uint8{0x9c, 0x00, 0x02},
			setup: func() {
				mc.Y.Load(0xff)
				mc.X.Load(0x01)
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0201, 0x03)
			},
		},
		{
			name:    "SHA absolute,Y",
			program: []uint8{0x9f, 0x00, 0x02},
			setup: func() {
				mc.A.Load(0xff)
				mc.X.Load(0x0f)
				mc.Y.Load(0x01)
			},
			check: func(t *testing.T) {
				mem.assert(t, 0x0201, 0x03)
			},
		},
		{
			name:    "TAS absolute,Y",
			program: []uint8{0x9b, 0x00, 0x02},
			setup: func() {
				mc.A.Load(0xff)
				mc.X.Load(0x0f)
				mc.Y.Load(0x01)
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.SP, 0x0f)
				mem.assert(t, 0x0201, 0x03)
			},
		},
		{
			name:    "ANE immediate",
			program: []uint8{0x8b, 0xff},
			setup: func() {
				mc.X.Load(0x0f)
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0x0e)
			},
		},
		{
			name:    "LXA immediate",
			program: []uint8{0xab, 0x0f},
			setup:   func() {},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0x0e)
				rtest.EquateRegisters(t, mc.X, 0x0e)
			},
		},
		{
			name:    "NOP zero page",
			program: []uint8{0x04, 0x80},
			setup: func() {
				mem.putInstructions(0x0080, 0xff)
			},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.A, 0x00)
				rtest.EquateRegisters(t, mc.PC, 0x0402)
				rtest.EquateRegisters(t, mc.Status, "sv-bdizc")
				test.ExpectEquality(t, mc.LastResult.Cycles, 3)
			},
		},
		{
			name:    "NOP implied",
			program: []uint8{0x1a},
			setup:   func() {},
			check: func(t *testing.T) {
				rtest.EquateRegisters(t, mc.PC, 0x0401)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boot(t, mc, mem, origin)
			mc.Quirks.Undocumented = true
			mem.putInstructions(origin, tt.program...)
			tt.setup()
			step(t, mc)
			test.ExpectSuccess(t, mc.LastResult.Defn.Undocumented)
			tt.check(t)
		})
	}
}

func TestKIL(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	boot(t, mc, mem, origin)
	mc.Quirks.Undocumented = true

	mem.putInstructions(origin, 0x02, 0xea)
	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)

	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectSuccess(t, errors.Is(err, cpu.ErrHalted))
	test.ExpectSuccess(t, errors.Is(mc.IRQ(), cpu.ErrHalted))
	test.ExpectSuccess(t, errors.Is(mc.NMI(), cpu.ErrHalted))

	test.ExpectSuccess(t, mc.SoftReset())
	test.ExpectFailure(t, mc.Halted)
}
