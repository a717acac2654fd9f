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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopher6502/easyterm"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/inspect"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// options common to all modes
type options struct {
	origin       *uint16
	entry        *uint16
	undocumented *bool
	noJmpBug     *bool
	noDecimal    *bool
	log          *bool
	memviz       *string
}

func addOptions(md *modalflag.Modes) options {
	return options{
		origin:       md.AddAddress("origin", 0x0400, "address at which to load the binary"),
		entry:        md.AddAddress("entry", 0x0400, "reset vector (defaults to the origin)"),
		undocumented: md.AddBool("undocumented", false, "decode undocumented opcodes"),
		noJmpBug:     md.AddBool("nojmpbug", false, "fix the indirect JMP bug"),
		noDecimal:    md.AddBool("nodecimal", false, "ignore the decimal mode flag"),
		log:          md.AddBool("log", false, "echo debugging log to stdout"),
		memviz:       md.AddString("memviz", "", "write graphviz diagram of the final CPU state to file"),
	}
}

// machine creates the memory and CPU and loads the binary file into memory.
// the reset vector is set and the CPU is soft reset
func machine(md *modalflag.Modes, opts options) (*cpu.CPU, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("binary file required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *opts.log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	mem := memory.NewMemory()
	err = mem.Load(*opts.origin, data)
	if err != nil {
		return nil, err
	}

	// the reset vector is the origin unless otherwise specified. if the binary
	// covers the reset vector and no entry point has been specified then the
	// binary's reset vector is used
	entry := *opts.origin
	if md.IsSet("entry") {
		entry = *opts.entry
	}
	if md.IsSet("entry") || int(*opts.origin)+len(data) <= int(cpubus.Reset) {
		mem.Write16(cpubus.Reset, entry)
	}

	mc := cpu.NewCPU(mem)
	mc.Quirks.Undocumented = *opts.undocumented
	mc.Quirks.NoIndirectJMPBug = *opts.noJmpBug
	mc.Quirks.NoDecimalMode = *opts.noDecimal
	mc.LogBugs = *opts.log

	err = mc.SoftReset()
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "gopher6502", "loaded %d bytes at %#04x", len(data), *opts.origin)
	logger.Logf(logger.Allow, "gopher6502", "reset vector %#04x", mc.PC.Address())

	return mc, nil
}

// finish writes the memviz diagram if requested
func finish(mc *cpu.CPU, opts options) error {
	if *opts.memviz == "" {
		return nil
	}

	f, err := os.Create(*opts.memviz)
	if err != nil {
		return err
	}
	defer f.Close()

	return inspect.Graph(f, mc)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)
	maxInstructions := md.AddInt("max", 0, "maximum number of instructions to execute (0 for no limit)")
	trap := md.AddBool("trap", false, "stop when an instruction does not change the PC")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsviewAvailable()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		err = statsview.Launch(md.Output)
		if err != nil {
			return err
		}
	}

	mc, err := machine(md, opts)
	if err != nil {
		return err
	}

	var cycles int
	cycleCallback := func() error {
		cycles++
		return nil
	}

	var instructions int
	for *maxInstructions == 0 || instructions < *maxInstructions {
		pc := mc.PC.Address()

		err = mc.ExecuteInstruction(cycleCallback)
		if err != nil {
			break // for loop
		}
		instructions++

		if *trap && mc.PC.Address() == pc {
			fmt.Fprintf(md.Output, "trapped at %#04x\n", pc)
			break // for loop
		}
	}

	fmt.Fprintf(md.Output, "%s\n", mc)
	fmt.Fprintf(md.Output, "%d instructions in %d cycles\n", instructions, cycles)

	if err != nil {
		return err
	}

	return finish(mc, opts)
}

func statsviewAvailable() string {
	if statsview.Available() {
		return "available"
	}
	return "not available in this build"
}

func step(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("press any key to execute the next instruction. press q to quit")

	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, err := machine(md, opts)
	if err != nil {
		return err
	}

	term, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	err = term.CBreakMode()
	if err != nil {
		return err
	}
	defer func() {
		_ = term.CanonicalMode()
	}()

	term.Print("%s\n", mc)

	for {
		k, err := term.ReadKey()
		if err != nil {
			return err
		}

		switch k {
		case 'q', 'Q', easyterm.KeyEsc, easyterm.KeyEndOfFile:
			return finish(mc, opts)
		}

		err = mc.Step()
		if err != nil {
			if errors.Is(err, cpu.ErrHalted) {
				term.Print("* CPU is halted. press q to quit\n")
			} else {
				term.Print("* %s\n", err)
			}
			continue // for loop
		}

		term.Print("%s\n", mc.LastResult)
		term.Print("%s\n", mc)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	v, r := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
