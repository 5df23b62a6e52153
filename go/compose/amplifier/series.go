// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package amplifier chains Intcode machines into a series of amplifiers.
// Each amplifier is configured with a phase setting and forwards its output
// signal to the next amplifier in line. In feedback mode the last amplifier
// feeds its signal back into the first one.
package amplifier

import (
	"fmt"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

const (
	ErrNoAmplifiers = intcode.ConstError("series requires at least one amplifier")
	ErrNoSignal     = intcode.ConstError("series produced no output signal")
	ErrDeadlock     = intcode.ConstError("series made no progress")
)

// Series is a chain of amplifiers, one machine per phase setting.
type Series struct {
	phases   []int64
	machines []intcode.Machine
	feedback bool
	signals  uint64 // < number of signals emitted by any amplifier
	last     intcode.Word
	hasLast  bool
}

// NewSeries creates one machine per phase running the given program using
// the given factory and connects their outputs.
func NewSeries(program intcode.Program, phases []int64, factory intcode.MachineFactory) (*Series, error) {
	if len(phases) == 0 {
		return nil, ErrNoAmplifiers
	}
	res := &Series{
		phases:   append([]int64(nil), phases...),
		machines: make([]intcode.Machine, len(phases)),
	}
	for i := range phases {
		machine, err := factory(program)
		if err != nil {
			return nil, fmt.Errorf("failed to create amplifier %d: %w", i, err)
		}
		res.machines[i] = machine
	}
	for i, machine := range res.machines {
		machine.OnOutput(res.forwardFrom(i))
	}
	return res, nil
}

func (s *Series) forwardFrom(i int) intcode.Sink {
	if i < len(s.machines)-1 {
		next := s.machines[i+1]
		return intcode.SinkFunc(func(value intcode.Word) error {
			s.signals++
			next.SendInput(value)
			return nil
		})
	}
	first := s.machines[0]
	return intcode.SinkFunc(func(value intcode.Word) error {
		s.signals++
		s.last = value
		s.hasLast = true
		if s.feedback {
			first.SendInput(value)
		}
		return nil
	})
}

// Len returns the number of amplifiers in the series.
func (s *Series) Len() int {
	return len(s.machines)
}

// reset restores all amplifiers to their initial state and configures their
// phase settings.
func (s *Series) reset(feedback bool) {
	s.feedback = feedback
	s.signals = 0
	s.hasLast = false
	for i, machine := range s.machines {
		machine.Reset()
		machine.SendInput(intcode.NewWord(s.phases[i]))
	}
}

// Run sends the given signal through the series once, running each
// amplifier in order, and returns the last signal emitted by the final
// amplifier.
func (s *Series) Run(signal intcode.Word) (intcode.Word, error) {
	s.reset(false)
	s.machines[0].SendInput(signal)
	for i, machine := range s.machines {
		if err := machine.Run(); err != nil {
			return intcode.Word{}, fmt.Errorf("amplifier %d failed: %w", i, err)
		}
	}
	if !s.hasLast {
		return intcode.Word{}, ErrNoSignal
	}
	return s.last, nil
}

// RunWithFeedback sends the given signal through the series, feeding the
// output of the final amplifier back into the first one. Amplifiers are run
// in rounds until the final amplifier halts. Its last emitted signal is the
// result. If a full round neither emits a signal nor halts an amplifier, the
// series is deadlocked.
func (s *Series) RunWithFeedback(signal intcode.Word) (intcode.Word, error) {
	s.reset(true)
	s.machines[0].SendInput(signal)
	final := s.machines[len(s.machines)-1]
	for {
		signals := s.signals
		halted := 0
		for i, machine := range s.machines {
			if machine.IsDone() {
				halted++
				continue
			}
			if err := machine.Run(); err != nil {
				return intcode.Word{}, fmt.Errorf("amplifier %d failed: %w", i, err)
			}
		}
		if final.IsDone() {
			if !s.hasLast {
				return intcode.Word{}, ErrNoSignal
			}
			return s.last, nil
		}
		if signals == s.signals && halted == s.countHalted() {
			return intcode.Word{}, ErrDeadlock
		}
	}
}

func (s *Series) countHalted() int {
	res := 0
	for _, machine := range s.machines {
		if machine.IsDone() {
			res++
		}
	}
	return res
}
