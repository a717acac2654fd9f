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

//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// definitions is the table of instruction definitions for the 6502 indexed by\n" +
	"// opcode\n" +
	"var definitions = []*Definition{\n"

const trailingBoilerPlate = "}\n"

// the generator works with the names of the constants in the instructions
// package rather than the constants themselves
type definition struct {
	opcode         uint8
	operator       string
	bytes          int
	cycles         int
	addressingMode string
	pageSensitive  bool
	effect         string
	undocumented   bool
}

func (d definition) String() string {
	return fmt.Sprintf("{OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s, Undocumented: %t},",
		d.opcode, d.operator, d.bytes, d.cycles, d.addressingMode, d.pageSensitive, d.effect, d.undocumented)
}

// mnemonics known to the instructions package
func knownMnemonics() map[string]bool {
	m := make(map[string]bool)
	for op := instructions.Operator(0); op.String() != "???"; op++ {
		m[op.String()] = true
	}
	return m
}

// the name of the operator constant. documented operators are in title case
// and undocumented operators are in upper case
func operatorName(mnemonic string, undocumented bool) string {
	if undocumented {
		return mnemonic
	}
	return mnemonic[:1] + strings.ToLower(mnemonic[1:])
}

func parseCSV() (string, error) {
	// open file
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	// treat the file as a CSV file
	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// instruction file can have a variable number of fields per definition.
	// instruction effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	mnemonics := knownMnemonics()

	// create new definitions table
	deftable := make(map[uint8]definition)

	line := 0
	for {
		// loop through file until EOF is reached
		line++
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		// check for valid record length
		if len(rec) < 5 || len(rec) > 7 {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		// manually trim trailing space from all fields in the record
		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := definition{}

		// field: parse opcode
		opcode := strings.TrimPrefix(rec[0], "0x")
		n, err := strconv.ParseUint(opcode, 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.opcode = uint8(n)

		if _, ok := deftable[newDef.opcode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", newDef.opcode, line)
		}

		// field: undocumented flag. we need to know this before we can decide
		// on the name of the operator
		if len(rec) == 7 {
			if strings.ToUpper(rec[6]) != "UNDOCUMENTED" {
				return "", fmt.Errorf("invalid flag for %#02x (%s) [line %d]", newDef.opcode, rec[6], line)
			}
			newDef.undocumented = true
		}

		// field: opcode mnemonic
		mnemonic := strings.ToUpper(rec[1])
		if !mnemonics[mnemonic] {
			return "", fmt.Errorf("unknown operator for %#02x (%s) [line %d]", newDef.opcode, rec[1], line)
		}
		newDef.operator = operatorName(mnemonic, newDef.undocumented)

		// field: cycle count
		newDef.cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newDef.opcode, rec[2], line)
		}

		// field: addressing mode
		//
		// the addressing mode also defines how many bytes an opcode
		// requires
		var am instructions.AddressingMode
		switch strings.ToUpper(rec[3]) {
		default:
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newDef.opcode, rec[3], line)
		case "IMPLIED":
			am = instructions.Implied
		case "ACCUMULATOR":
			am = instructions.Accumulator
		case "IMMEDIATE":
			am = instructions.Immediate
		case "RELATIVE":
			am = instructions.Relative
		case "ABSOLUTE":
			am = instructions.Absolute
		case "ZERO_PAGE":
			am = instructions.ZeroPage
		case "INDIRECT":
			am = instructions.Indirect
		case "PRE_INDEX_INDIRECT":
			am = instructions.IndexedIndirect
		case "POST_INDEX_INDIRECT":
			am = instructions.IndirectIndexed
		case "ABSOLUTE_INDEXED_X":
			am = instructions.AbsoluteIndexedX
		case "ABSOLUTE_INDEXED_Y":
			am = instructions.AbsoluteIndexedY
		case "INDEXED_ZERO_PAGE_X":
			am = instructions.ZeroPageIndexedX
		case "INDEXED_ZERO_PAGE_Y":
			am = instructions.ZeroPageIndexedY
		}
		newDef.addressingMode = am.String()
		newDef.bytes = am.Bytes()

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		default:
			return "", fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", newDef.opcode, rec[4], line)
		case "TRUE":
			newDef.pageSensitive = true
		case "FALSE":
			newDef.pageSensitive = false
		}

		// field: effect category
		newDef.effect = instructions.Read.String()
		if len(rec) >= 6 {
			switch strings.ToUpper(rec[5]) {
			default:
				return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", newDef.opcode, rec[5], line)
			case "READ":
				newDef.effect = instructions.Read.String()
			case "WRITE":
				newDef.effect = instructions.Write.String()
			case "RMW":
				newDef.effect = instructions.RMW.String()
			case "FLOW":
				newDef.effect = instructions.Flow.String()
			case "SUB-ROUTINE":
				newDef.effect = instructions.Subroutine.String()
			case "INTERRUPT":
				newDef.effect = instructions.Interrupt.String()
			}
		}

		// add new definition to deftable, using opcode as the hash key
		deftable[newDef.opcode] = newDef
	}

	// every opcode must be defined. undocumented opcodes are flagged as such
	if len(deftable) != 256 {
		return "", fmt.Errorf("%s", summary(deftable))
	}

	// output the definitions map as an array
	s := strings.Builder{}
	for opcode := 0; opcode < 256; opcode++ {
		s.WriteString(deftable[uint8(opcode)].String())
		s.WriteString("\n")
	}

	return s.String(), nil
}

// summary lists the missing opcodes
func summary(deftable map[uint8]definition) string {
	missing := make([]int, 0, 255)

	for i := 0; i <= 255; i++ {
		if _, ok := deftable[uint8(i)]; !ok {
			missing = append(missing, i)
		}
	}
	sort.Ints(missing)

	s := strings.Builder{}
	s.WriteString("missing opcodes:\n")
	for i := range missing {
		s.WriteString(fmt.Sprintf("%#02x\t", missing[i]))
		if i%5 == 4 {
			s.WriteString("\n")
		}
	}
	s.WriteString(fmt.Sprintf("\n%d missing", len(missing)))

	return s.String()
}

func main() {
	// parse definitions files
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// add boiler-plate to output
	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	// format code using standard Go formatted
	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// create output file (over-writing) if it already exists
	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(formattedOutput)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
