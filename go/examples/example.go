// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"fmt"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

// Example is an executable description of a program computing a
// (int)->int function. The argument is the program's only input, the result
// its only output.
type Example struct {
	exampleSpec
	hash intcode.Hash // the hash of the program
}

// exampleSpec specifies a program and a reference implementation of the
// function it computes.
type exampleSpec struct {
	Name      string
	program   intcode.Program
	reference func(int64) intcode.Word
}

func (s exampleSpec) build() Example {
	return Example{
		exampleSpec: s,
		hash:        s.program.Hash(),
	}
}

type Result struct {
	Result intcode.Word
	Steps  uint64 // < zero if the machine does not count its instructions
}

// Program returns a copy of the example's program.
func (e *Example) Program() intcode.Program {
	return e.program.Clone()
}

func (e *Example) Hash() intcode.Hash {
	return e.hash
}

// RunOn runs this example on a machine created by the given factory, using
// the given argument.
func (e *Example) RunOn(factory intcode.MachineFactory, argument int64) (Result, error) {
	machine, err := factory(e.program)
	if err != nil {
		return Result{}, err
	}
	out := &intcode.Collector{}
	machine.OnOutput(out)
	machine.SendInput(intcode.NewWord(argument))

	if err := machine.Run(); err != nil {
		return Result{}, err
	}
	if !machine.IsDone() {
		return Result{}, fmt.Errorf("example did not halt, status %v", machine.Status())
	}
	if len(out.Values) != 1 {
		return Result{}, fmt.Errorf("unexpected number of outputs; wanted 1, got %d", len(out.Values))
	}

	res := Result{Result: out.Values[0]}
	if profiling, ok := machine.(intcode.ProfilingMachine); ok {
		res.Steps = profiling.Steps()
	}
	return res, nil
}

// RunReference runs the reference function of this example to produce the
// expected result.
func (e *Example) RunReference(argument int64) intcode.Word {
	return e.reference(argument)
}

// GetAllExamples lists all examples of this package.
func GetAllExamples() []Example {
	return []Example{
		GetSumExample(),
		GetFactorialExample(),
		GetFibExample(),
		GetSquaresExample(),
	}
}
