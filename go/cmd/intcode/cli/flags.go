// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/Fantom-foundation/Intcode/go/intcode"
	"github.com/urfave/cli/v2"
)

type vmFlagType struct {
	cli.StringFlag
}

var VmFlag = &vmFlagType{
	cli.StringFlag{
		Name:  "vm",
		Usage: "name of the machine implementation to use, see the vms command",
		Value: "icvm",
	},
}

// Fetch returns the factory of the selected machine implementation.
func (f *vmFlagType) Fetch(context *cli.Context) (intcode.MachineFactory, error) {
	name := context.String(f.Name)
	factory := intcode.GetMachineFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("unknown machine %q, use one of: %v", name, intcode.GetRegisteredMachineNames())
	}
	return factory, nil
}

type inputFlagType struct {
	cli.StringFlag
}

var InputFlag = &inputFlagType{
	cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "comma separated list of values provided as input",
	},
}

func (f *inputFlagType) Fetch(context *cli.Context) ([]intcode.Word, error) {
	return ParseValues(context.String(f.Name))
}

type patchFlagType struct {
	cli.StringSliceFlag
}

var PatchFlag = &patchFlagType{
	cli.StringSliceFlag{
		Name:  "patch",
		Usage: "overwrites a memory cell before running, given as <address>=<value>",
	},
}

func (f *patchFlagType) Fetch(context *cli.Context) ([]Patch, error) {
	var res []Patch
	for _, text := range context.StringSlice(f.Name) {
		patch, err := ParsePatch(text)
		if err != nil {
			return nil, err
		}
		res = append(res, patch)
	}
	return res, nil
}

type phasesFlagType struct {
	cli.StringFlag
}

var PhasesFlag = &phasesFlagType{
	cli.StringFlag{
		Name:  "phases",
		Usage: "comma separated list of phase settings, defaults to 0-4 or 5-9 in feedback mode",
	},
}

// Fetch returns the configured phase settings or the given defaults if the
// flag is not set.
func (f *phasesFlagType) Fetch(context *cli.Context, defaults []int64) ([]int64, error) {
	if !context.IsSet(f.Name) {
		return defaults, nil
	}
	values, err := ParseValues(context.String(f.Name))
	if err != nil {
		return nil, err
	}
	res := make([]int64, 0, len(values))
	for _, value := range values {
		phase, ok := value.Int64()
		if !ok {
			return nil, fmt.Errorf("phase setting out of range: %v", value)
		}
		res = append(res, phase)
	}
	return res, nil
}

type boolFlagType struct {
	cli.BoolFlag
}

func (f *boolFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

var AsciiFlag = &boolFlagType{
	cli.BoolFlag{
		Name:  "ascii",
		Usage: "exchange text with the program",
	},
}

var InteractiveFlag = &boolFlagType{
	cli.BoolFlag{
		Name:  "interactive",
		Usage: "read additional input from the console",
	},
}

var StatsFlag = &boolFlagType{
	cli.BoolFlag{
		Name:  "stats",
		Usage: "print execution statistics after the program stopped",
	},
}

var FeedbackFlag = &boolFlagType{
	cli.BoolFlag{
		Name:  "feedback",
		Usage: "connect the last amplifier to the first one",
	},
}

type jobsFlagType struct {
	cli.IntFlag
}

var JobsFlag = &jobsFlagType{
	cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "number of jobs run simultaneously",
		Value:   runtime.NumCPU(),
	},
}

func (f *jobsFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type sizeFlagType struct {
	cli.IntFlag
}

var SizeFlag = &sizeFlagType{
	cli.IntFlag{
		Name:  "size",
		Usage: "number of machines in the network",
		Value: 50,
	},
}

func (f *sizeFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type cpuProfileType struct {
	cli.StringFlag
}

var CpuProfileFlag = &cpuProfileType{
	cli.StringFlag{
		Name:      "cpuprofile",
		Usage:     "store CPU profile in the provided filename",
		TakesFile: true,
	},
}

func (f *cpuProfileType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

// AddCommonFlags extends the given command by flags shared by all commands
// running programs.
func AddCommonFlags(command cli.Command) cli.Command {
	command.Flags = append(command.Flags, CpuProfileFlag)

	action := command.Action
	command.Action = func(ctx *cli.Context) (err error) {

		if cpuprofileFilename := CpuProfileFlag.Fetch(ctx); cpuprofileFilename != "" {
			f, err := os.Create(cpuprofileFilename)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		return action(ctx)
	}
	return command
}

// Patch is a memory cell update applied before a program is run.
type Patch struct {
	Address int
	Value   intcode.Word
}

// ParsePatch parses a patch of the form <address>=<value>.
func ParsePatch(text string) (Patch, error) {
	address, value, found := strings.Cut(text, "=")
	if !found {
		return Patch{}, fmt.Errorf("invalid patch %q, expected <address>=<value>", text)
	}
	pos, err := strconv.Atoi(strings.TrimSpace(address))
	if err != nil || pos < 0 {
		return Patch{}, fmt.Errorf("invalid patch address %q", address)
	}
	word, err := intcode.ParseWord(strings.TrimSpace(value))
	if err != nil {
		return Patch{}, fmt.Errorf("invalid patch value %q: %w", value, err)
	}
	return Patch{Address: pos, Value: word}, nil
}

// ParseValues parses a comma separated list of values. An empty text is an
// empty list.
func ParseValues(text string) ([]intcode.Word, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var res []intcode.Word
	for _, element := range strings.Split(text, ",") {
		value, err := intcode.ParseWord(strings.TrimSpace(element))
		if err != nil {
			return nil, err
		}
		res = append(res, value)
	}
	return res, nil
}
