// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package icvm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

func newTestContext(program string) *context {
	return &context{
		memory: NewMemory(intcode.MustParseProgram(program)),
		input:  &intcode.InputChannel{},
		status: intcode.Running,
	}
}

func TestLoggingRunner_WritesOneLinePerInstruction(t *testing.T) {
	var buffer bytes.Buffer
	c := newTestContext("109,3,21101,1,2,0,99")
	if err := newLogger(&buffer).run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "" +
		"0, ARB 3, 0\n" +
		"2, ADD 1 2 [rb+0], 3\n" +
		"6, HALT, 3\n"
	if got := buffer.String(); got != want {
		t.Errorf("unexpected log, want %q, got %q", want, got)
	}
}

func TestLoggingRunner_NilWriterIsIgnored(t *testing.T) {
	c := newTestContext("104,1,99")
	if err := (loggingRunner{}).run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.status != intcode.Halted {
		t.Errorf("unexpected status %v", c.status)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("injected")
}

func TestLoggingRunner_WriteErrorsAbortExecution(t *testing.T) {
	c := newTestContext("104,1,99")
	if err := newLogger(failingWriter{}).run(c); err == nil {
		t.Fatalf("expected an error")
	}
	if c.cursor != 0 {
		t.Errorf("no instruction should have been executed")
	}
}

func TestLoggingRunner_DescribesDataAndEnd(t *testing.T) {
	c := newTestContext("98")
	if got := describe(c); got != "DATA 98" {
		t.Errorf("unexpected description %q", got)
	}
	c.cursor = 5
	if got := describe(c); got != "-end-" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestStatisticRunner_CountsInstructionSequences(t *testing.T) {
	runner := &statisticRunner{}
	for i := 0; i < 2; i++ {
		c := newTestContext("1101,1,1,0,1101,1,1,0,104,0,99")
		if err := runner.run(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats := runner.stats
	if stats.count != 8 {
		t.Errorf("unexpected number of steps, want 8, got %d", stats.count)
	}
	if got := stats.singleCount[uint32(ADD)]; got != 4 {
		t.Errorf("unexpected ADD count, want 4, got %d", got)
	}
	if got := stats.pairCount[uint32(ADD)<<8|uint32(ADD)]; got != 2 {
		t.Errorf("unexpected ADD-ADD count, want 2, got %d", got)
	}
	if got := stats.tripleCount[uint32(ADD)<<16|uint32(OUT)<<8|uint32(HALT)]; got != 2 {
		t.Errorf("unexpected ADD-OUT-HALT count, want 2, got %d", got)
	}

	summary := runner.getSummary()
	for _, want := range []string{"Steps: 8", "ADD", "OUT", "HALT", "(50.00%)"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary does not contain %q:\n%s", want, summary)
		}
	}

	runner.reset()
	if runner.stats.count != 0 {
		t.Errorf("statistics should be cleared")
	}
}

func TestStatisticRunner_ForwardsErrors(t *testing.T) {
	runner := &statisticRunner{}
	c := newTestContext("98")
	if err := runner.run(c); !errors.Is(err, intcode.ErrUnknownOpcode) {
		t.Errorf("expected %v, got %v", intcode.ErrUnknownOpcode, err)
	}
	if c.status != intcode.Failed {
		t.Errorf("unexpected status %v", c.status)
	}
}

func TestVanillaRunner_StopsAtSuspension(t *testing.T) {
	c := newTestContext("104,1,3,0,99")
	if err := (vanillaRunner{}).run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.status != intcode.WaitingForInput || c.cursor != 2 {
		t.Errorf("unexpected state, status %v, cursor %d", c.status, c.cursor)
	}
	if c.steps != 1 {
		t.Errorf("suspended instructions must not be counted, got %d steps", c.steps)
	}
}
