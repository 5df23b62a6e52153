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
	"math"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Intcode/go/intcode"
	"go.uber.org/mock/gomock"
)

// runProgram runs the given program with the given inputs until it halts or
// waits for input and returns the machine and its outputs.
func runProgram(t *testing.T, text string, inputs ...int64) (*Machine, string) {
	t.Helper()
	m, err := FromText(text, Config{Inputs: intcode.Words(inputs...)})
	if err != nil {
		t.Fatalf("failed to parse program: %v", err)
	}
	out := &intcode.Collector{}
	m.OnOutput(out)
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m, out.String()
}

func TestMachine_ArithmeticPrograms(t *testing.T) {
	tests := map[string]string{
		"1,0,0,0,99":                    "2,0,0,0,99",
		"2,3,0,3,99":                    "2,3,0,6,99",
		"2,4,4,5,99,0":                  "2,4,4,5,99,9801",
		"1,1,1,4,99,5,6,0,99":           "30,1,1,4,2,5,6,0,99",
		"1,9,10,3,2,3,11,0,99,30,40,50": "3500,9,10,70,2,3,11,0,99,30,40,50",
		"1002,4,3,4,33":                 "1002,4,3,4,99",
		"1101,100,-1,4,0":               "1101,100,-1,4,99",
	}

	for program, want := range tests {
		t.Run(program, func(t *testing.T) {
			m, _ := runProgram(t, program)
			if !m.IsDone() {
				t.Fatalf("program should have halted, status %v", m.Status())
			}
			if got := m.Memory().String(); got != want {
				t.Errorf("unexpected memory, want %s, got %s", want, got)
			}
		})
	}
}

func TestMachine_ComparisonAndJumpPrograms(t *testing.T) {
	const large = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"

	tests := map[string]struct {
		program string
		input   int64
		want    string
	}{
		"equal position 8":        {"3,9,8,9,10,9,4,9,99,-1,8", 8, "1"},
		"equal position 7":        {"3,9,8,9,10,9,4,9,99,-1,8", 7, "0"},
		"equal position -8":       {"3,9,8,9,10,9,4,9,99,-1,8", -8, "0"},
		"less position 7":         {"3,9,7,9,10,9,4,9,99,-1,8", 7, "1"},
		"less position 8":         {"3,9,7,9,10,9,4,9,99,-1,8", 8, "0"},
		"equal immediate 8":       {"3,3,1108,-1,8,3,4,3,99", 8, "1"},
		"equal immediate 9":       {"3,3,1108,-1,8,3,4,3,99", 9, "0"},
		"less immediate 3":        {"3,3,1107,-1,8,3,4,3,99", 3, "1"},
		"less immediate 10":       {"3,3,1107,-1,8,3,4,3,99", 10, "0"},
		"jump position zero":      {"3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 0, "0"},
		"jump position non-zero":  {"3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 5, "1"},
		"jump immediate zero":     {"3,3,1105,-1,9,1101,0,0,12,4,12,99,1", 0, "0"},
		"jump immediate non-zero": {"3,3,1105,-1,9,1101,0,0,12,4,12,99,1", -3, "1"},
		"compare to 8 below":      {large, 7, "999"},
		"compare to 8 equal":      {large, 8, "1000"},
		"compare to 8 above":      {large, 9, "1001"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, got := runProgram(t, test.program, test.input)
			if !m.IsDone() {
				t.Fatalf("program should have halted, status %v", m.Status())
			}
			if got != test.want {
				t.Errorf("unexpected output, want %s, got %s", test.want, got)
			}
		})
	}
}

func TestMachine_LargeNumbersAndRelativeMode(t *testing.T) {
	const quine = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"

	tests := map[string]struct {
		program string
		want    string
	}{
		"quine":          {quine, quine},
		"16 digit value": {"1102,34915192,34915192,7,4,7,99,0", "1219070632396864"},
		"large literal":  {"104,1125899906842624,99", "1125899906842624"},
		"beyond int64":   {"1102,9223372036854775807,10,7,4,7,99,0", "92233720368547758070"},
		"huge literal":   {"104,-123456789012345678901234567890,99", "-123456789012345678901234567890"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, got := runProgram(t, test.program)
			if !m.IsDone() {
				t.Fatalf("program should have halted, status %v", m.Status())
			}
			if got != test.want {
				t.Errorf("unexpected output, want %s, got %s", test.want, got)
			}
		})
	}
}

func TestMachine_RelativeBaseIsAdjusted(t *testing.T) {
	m, err := FromText("109,2000,109,19,204,-34,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Set(1985, intcode.NewWord(42)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := &intcode.Collector{}
	m.OnOutput(out)
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := "42", out.String(); want != got {
		t.Errorf("unexpected output, want %s, got %s", want, got)
	}
	if want, got := 2019, m.RelativeBase(); want != got {
		t.Errorf("unexpected relative base, want %d, got %d", want, got)
	}
}

func TestMachine_RelativeModeWrites(t *testing.T) {
	// rb = 10; [rb+0] = input; output [10]
	m, got := runProgram(t, "109,10,203,0,4,10,99", 77)
	if !m.IsDone() {
		t.Fatalf("program should have halted")
	}
	if got != "77" {
		t.Errorf("unexpected output, want 77, got %s", got)
	}
}

func TestMachine_SuspendsOnMissingInput(t *testing.T) {
	m, err := FromText("3,0,4,0,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := &intcode.Collector{}
	m.OnOutput(out)

	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsWaitingForInput() || m.Status() != intcode.WaitingForInput {
		t.Fatalf("machine should wait for input, status %v", m.Status())
	}
	if m.Cursor() != 0 {
		t.Errorf("input instruction must not be consumed, cursor at %d", m.Cursor())
	}

	// Running again without input does not change anything.
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsWaitingForInput() || m.Cursor() != 0 {
		t.Fatalf("machine should still wait for input at 0, status %v, cursor %d", m.Status(), m.Cursor())
	}

	m.SendInput(intcode.NewWord(7))
	if !m.IsWaitingForInput() {
		t.Errorf("sending input must not resume the machine")
	}
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsDone() {
		t.Fatalf("program should have halted, status %v", m.Status())
	}
	if want, got := "7", out.String(); want != got {
		t.Errorf("unexpected output, want %s, got %s", want, got)
	}
}

func TestMachine_RunOnHaltedMachineHasNoEffect(t *testing.T) {
	m, got := runProgram(t, "104,1,99")
	if got != "1" {
		t.Fatalf("unexpected output %s", got)
	}
	out := &intcode.Collector{}
	m.OnOutput(out)
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Values) != 0 || !m.IsDone() {
		t.Errorf("halted machine must not execute instructions")
	}
}

func TestMachine_ResetReplaysDeterministically(t *testing.T) {
	const program = "3,9,8,9,10,9,4,9,99,-1,8"
	m, err := FromText(program, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := &intcode.Collector{}
	m.OnOutput(out)

	m.SendInput(intcode.NewWord(8))
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstMemory, firstOutput := m.Memory().String(), out.String()

	m.Reset()
	if m.Status() != intcode.Running || m.Cursor() != 0 || m.RelativeBase() != 0 {
		t.Fatalf("unexpected state after reset: %v, %d, %d", m.Status(), m.Cursor(), m.RelativeBase())
	}
	if got := m.Memory().String(); got != program {
		t.Errorf("memory not restored, want %s, got %s", program, got)
	}

	out.Values = nil
	m.SendInput(intcode.NewWord(8))
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Memory().String(); got != firstMemory {
		t.Errorf("memory differs after replay, want %s, got %s", firstMemory, got)
	}
	if got := out.String(); got != firstOutput {
		t.Errorf("output differs after replay, want %s, got %s", firstOutput, got)
	}
}

func TestMachine_ResetRestoresInitialInputsAndDropsPendingOnes(t *testing.T) {
	m, err := FromText("3,0,4,0,99", Config{Inputs: intcode.Words(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := &intcode.Collector{}
	m.OnOutput(out)
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.SendInput(intcode.NewWord(6))
	m.Reset()
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := "5,5", out.String(); want != got {
		t.Errorf("unexpected output, want %s, got %s", want, got)
	}
}

func TestMachine_ResetRestoresMemoryPatches(t *testing.T) {
	m, err := FromText("1,0,0,0,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Set(1, intcode.NewWord(4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := m.Get(0); got.Cmp(intcode.NewWord(100)) != 0 {
		t.Errorf("unexpected result, want 100, got %v", got)
	}
	m.Reset()
	if got, _ := m.Get(1); got.Cmp(intcode.NewWord(0)) != 0 {
		t.Errorf("patch should be reverted by reset, got %v", got)
	}
}

func TestMachine_ChainedMachinesForwardOutputsInOrder(t *testing.T) {
	producer, err := FromText("104,1,104,-2,104,3,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Echoes every input value forever.
	consumer, err := FromText("3,100,4,100,1105,1,0", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	producer.OnOutput(intcode.SinkFunc(func(value intcode.Word) error {
		consumer.SendInput(value)
		return nil
	}))
	if err := producer.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := &intcode.Collector{}
	consumer.OnOutput(out)
	if err := consumer.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := "1,-2,3", out.String(); want != got {
		t.Errorf("unexpected output, want %s, got %s", want, got)
	}
	if !consumer.IsWaitingForInput() {
		t.Errorf("consumer should wait for more input")
	}
}

func TestMachine_OutputsAreDeliveredToSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := intcode.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Output(intcode.NewWord(1)),
		sink.EXPECT().Output(intcode.NewWord(2)),
	)

	m, err := FromText("104,1,104,2,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.OnOutput(sink)
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMachine_LastRegisteredSinkWins(t *testing.T) {
	m, err := FromText("3,100,4,100,1105,1,0", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, second := &intcode.Collector{}, &intcode.Collector{}

	m.OnOutput(first)
	m.SendInput(intcode.NewWord(1))
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.OnOutput(second)
	m.SendInput(intcode.NewWord(2))
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.String() != "1" || second.String() != "2" {
		t.Errorf("unexpected outputs, got %s and %s", first, second)
	}
}

func TestMachine_OutputsWithoutSinkAreDiscarded(t *testing.T) {
	m, err := FromText("104,1,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsDone() {
		t.Errorf("program should have halted")
	}
}

func TestMachine_SinkErrorsAbortRunButKeepMachineResumable(t *testing.T) {
	injected := errors.New("injected")
	m, err := FromText("104,1,104,2,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var received []intcode.Word
	m.OnOutput(intcode.SinkFunc(func(value intcode.Word) error {
		received = append(received, value)
		if len(received) == 1 {
			return injected
		}
		return nil
	}))

	if err := m.Run(); !errors.Is(err, injected) {
		t.Fatalf("expected %v, got %v", injected, err)
	}
	if m.Status() != intcode.Running || m.Cursor() != 2 {
		t.Fatalf("unexpected state, status %v, cursor %d", m.Status(), m.Cursor())
	}
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(received) != 2 || !m.IsDone() {
		t.Errorf("machine should resume after the failed output")
	}
}

func TestMachine_FailedOutputsAreCounted(t *testing.T) {
	injected := errors.New("injected")
	for name, config := range map[string]Config{"plain": {}, "stats": {WithStatistics: true}} {
		t.Run(name, func(t *testing.T) {
			m, err := FromText("104,1,99", config)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			m.OnOutput(intcode.SinkFunc(func(intcode.Word) error {
				return injected
			}))
			if err := m.Run(); !errors.Is(err, injected) {
				t.Fatalf("expected %v, got %v", injected, err)
			}
			if want, got := uint64(1), m.Steps(); want != got {
				t.Errorf("unexpected number of steps, want %d, got %d", want, got)
			}
			if !config.WithStatistics {
				return
			}
			var summary bytes.Buffer
			if err := m.DumpProfile(&summary); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range []string{"Steps: 1", "OUT"} {
				if !strings.Contains(summary.String(), want) {
					t.Errorf("summary does not contain %q:\n%s", want, summary.String())
				}
			}
		})
	}
}

func TestMachine_InputSourceErrorsAreForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := intcode.NewMockInputSource(ctrl)
	injected := errors.New("injected")
	source.EXPECT().HasNext().Return(true).AnyTimes()
	source.EXPECT().Next().Return(intcode.Word{}, injected)

	m, err := FromText("3,0,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.QueueInput(source)
	if err := m.Run(); !errors.Is(err, injected) {
		t.Fatalf("expected %v, got %v", injected, err)
	}
	if m.Status() == intcode.Failed || m.Cursor() != 0 {
		t.Errorf("input failures must not consume the instruction, status %v, cursor %d", m.Status(), m.Cursor())
	}
}

func TestMachine_ImmediateInputTargetFailsWithoutInput(t *testing.T) {
	m, err := FromText("103,0,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Run(); !errors.Is(err, intcode.ErrImmediateWrite) {
		t.Fatalf("expected %v, got %v", intcode.ErrImmediateWrite, err)
	}
	if m.Status() != intcode.Failed || m.Cursor() != 0 {
		t.Errorf("unexpected state, status %v, cursor %d", m.Status(), m.Cursor())
	}
}

func TestMachine_AccessBeyondAddressLimitFails(t *testing.T) {
	m, err := FromText("99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Get(math.MaxInt); !errors.Is(err, intcode.ErrAddressOutOfRange) {
		t.Errorf("expected %v, got %v", intcode.ErrAddressOutOfRange, err)
	}
	if err := m.Set(math.MaxInt, intcode.NewWord(1)); !errors.Is(err, intcode.ErrAddressOutOfRange) {
		t.Errorf("expected %v, got %v", intcode.ErrAddressOutOfRange, err)
	}
}

func TestMachine_QueuedSourcesFeedInput(t *testing.T) {
	m, err := FromText("3,0,3,1,3,2,4,0,4,1,4,2,99", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := &intcode.Collector{}
	m.OnOutput(out)
	m.QueueInput(intcode.Text("A"))
	m.QueueInput(intcode.Int64s())
	m.SendInput(intcode.NewWord(5))
	m.QueueInput(intcode.Console(strings.NewReader("-9\n"), nil))
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := "65,5,-9", out.String(); want != got {
		t.Errorf("unexpected output, want %s, got %s", want, got)
	}
}

func TestMachine_MalformedProgramsFail(t *testing.T) {
	tests := map[string]struct {
		program string
		want    error
		cursor  int
	}{
		"unknown opcode":            {"98", intcode.ErrUnknownOpcode, 0},
		"zero opcode":               {"1101,0,0,4,99", intcode.ErrUnknownOpcode, 4},
		"negative instruction":      {"-1", intcode.ErrUnknownOpcode, 0},
		"running off the program":   {"1101,1,1,0", intcode.ErrUnknownOpcode, 4},
		"immediate write":           {"11101,1,1,0,99", intcode.ErrImmediateWrite, 0},
		"immediate input target":    {"103,0,99", intcode.ErrImmediateWrite, 0},
		"unknown mode":              {"301,0,0,0,99", intcode.ErrUnknownMode, 0},
		"negative read address":     {"1,-1,0,0,99", intcode.ErrAddressOutOfRange, 0},
		"negative write address":    {"1101,1,1,-4,99", intcode.ErrAddressOutOfRange, 0},
		"negative relative address": {"204,-1,99", intcode.ErrAddressOutOfRange, 0},
		"negative jump target":      {"1105,1,-1", intcode.ErrAddressOutOfRange, 0},
		"oversized address":         {"4,100000000000000000000,99", intcode.ErrAddressOutOfRange, 0},
		"largest int64 address":     {"1101,1,1,9223372036854775807,99", intcode.ErrAddressOutOfRange, 0},
		"unallocatable address":     {"4,1000000000000000,99", intcode.ErrAddressOutOfRange, 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := FromText(test.program, Config{Inputs: intcode.Words(1)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			err = m.Run()
			if !errors.Is(err, test.want) {
				t.Fatalf("expected %v, got %v", test.want, err)
			}
			var execErr *intcode.ExecutionError
			if !errors.As(err, &execErr) {
				t.Fatalf("expected an ExecutionError, got %v", err)
			}
			if execErr.Cursor != test.cursor {
				t.Errorf("unexpected cursor, want %d, got %d", test.cursor, execErr.Cursor)
			}
			if m.Status() != intcode.Failed {
				t.Errorf("unexpected status, want %v, got %v", intcode.Failed, m.Status())
			}

			// Failed machines stay failed until reset.
			if again := m.Run(); again != err {
				t.Errorf("expected the same error again, got %v", again)
			}
			m.Reset()
			if m.Status() != intcode.Running {
				t.Errorf("reset should clear the failure, got %v", m.Status())
			}
		})
	}
}

func TestMachine_LoggingConfigurationTracesInstructions(t *testing.T) {
	var log bytes.Buffer
	m, err := FromText("1101,2,3,5,99,0", Config{Trace: &log})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0, ADD 2 3 [5], 0\n4, HALT, 0\n"
	if got := log.String(); got != want {
		t.Errorf("unexpected log, want %q, got %q", want, got)
	}
}

func TestMachine_StatisticsConfigurationCollectsProfile(t *testing.T) {
	m, err := FromText("3,0,4,0,99", Config{WithStatistics: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.SendInput(intcode.NewWord(1))
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Steps() != 3 {
		t.Errorf("unexpected number of steps, want 3, got %d", m.Steps())
	}

	var out strings.Builder
	if err := m.DumpProfile(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Executed instructions: 3", "Steps: 3", "IN", "OUT", "HALT"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("profile does not contain %q:\n%s", want, out.String())
		}
	}

	m.ResetProfile()
	out.Reset()
	if err := m.DumpProfile(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Steps: 0") {
		t.Errorf("profile should be cleared:\n%s", out.String())
	}
}

func TestMachine_IsRegistered(t *testing.T) {
	m, err := intcode.NewMachine("icvm", intcode.MustParseProgram("104,7,99"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := &intcode.Collector{}
	m.OnOutput(out)
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "7" {
		t.Errorf("unexpected output %s", out)
	}
}

func TestMachine_ConstructionCopiesProgram(t *testing.T) {
	program := intcode.MustParseProgram("1,0,0,0,99")
	m := NewMachine(program, Config{})
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if program[0].Cmp(intcode.NewWord(1)) != 0 {
		t.Errorf("running a machine must not modify the program")
	}
}
