// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ascii frames the integer I/O of an Intcode machine as text.
package ascii

import (
	"strings"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

const newline = '\n'

// Terminal wraps a machine exchanging ASCII text. Output codes are collected
// into lines; a newline code completes the current line. Values outside the
// printable ASCII range are not part of the text and are reported as
// non-ASCII values instead, e.g. the numeric result of a program.
type Terminal struct {
	machine intcode.Machine
	current strings.Builder
	lines   []string
	values  []intcode.Word
	onLine  func(line string)
	onValue func(value intcode.Word)
}

// NewTerminal creates a terminal for the given machine and registers it as
// the machine's output sink.
func NewTerminal(machine intcode.Machine) *Terminal {
	res := &Terminal{machine: machine}
	machine.OnOutput(res)
	return res
}

// OnLine registers a callback receiving every completed line. Lines passed
// to the callback are not retained by the terminal.
func (t *Terminal) OnLine(callback func(line string)) {
	t.onLine = callback
}

// OnValue registers a callback receiving every non-ASCII value. Values
// passed to the callback are not retained by the terminal.
func (t *Terminal) OnValue(callback func(value intcode.Word)) {
	t.onValue = callback
}

// Output implements intcode.Sink.
func (t *Terminal) Output(value intcode.Word) error {
	code, ok := value.Int64()
	switch {
	case ok && code == newline:
		line := t.current.String()
		t.current.Reset()
		if t.onLine != nil {
			t.onLine(line)
		} else {
			t.lines = append(t.lines, line)
		}
	case ok && isPrintable(code):
		t.current.WriteByte(byte(code))
	default:
		if t.onValue != nil {
			t.onValue(value)
		} else {
			t.values = append(t.values, value)
		}
	}
	return nil
}

func isPrintable(code int64) bool {
	return code >= ' ' && code <= '~'
}

// Send queues the characters of the given text as input.
func (t *Terminal) Send(text string) {
	t.machine.QueueInput(intcode.Text(text))
}

// SendLine queues the characters of the given text followed by a newline.
func (t *Terminal) SendLine(text string) {
	t.Send(text + "\n")
}

// SendLines queues each of the given lines, each followed by a newline.
func (t *Terminal) SendLines(lines ...string) {
	for _, line := range lines {
		t.SendLine(line)
	}
}

// Run runs the underlying machine until it halts or waits for input.
func (t *Terminal) Run() error {
	return t.machine.Run()
}

// Machine returns the wrapped machine.
func (t *Terminal) Machine() intcode.Machine {
	return t.machine
}

// Lines returns and forgets the lines completed so far.
func (t *Terminal) Lines() []string {
	res := t.lines
	t.lines = nil
	return res
}

// Pending returns the text of the current, not yet completed line, for
// instance an input prompt.
func (t *Terminal) Pending() string {
	return t.current.String()
}

// Values returns and forgets the non-ASCII values received so far.
func (t *Terminal) Values() []intcode.Word {
	res := t.values
	t.values = nil
	return res
}
