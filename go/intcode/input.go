// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package intcode

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

//go:generate mockgen -source input.go -destination input_mock.go -package intcode

// InputSource is a producer of input values for a machine. Sources are
// consumed by an InputChannel which probes them with HasNext before
// retrieving values with Next.
type InputSource interface {
	// HasNext reports whether a call to Next would produce a value.
	HasNext() bool
	// Next produces the next value. It fails with ErrNoInput if the source
	// is exhausted.
	Next() (Word, error)
}

// Values creates a source producing the given values in order.
func Values(values ...Word) InputSource {
	return &sequence{values: values}
}

// Int64s creates a source producing the given integers in order.
func Int64s(values ...int64) InputSource {
	return &sequence{values: Words(values...)}
}

// Text creates a source producing the character codes of the given text,
// one value per byte.
func Text(text string) InputSource {
	values := make([]Word, len(text))
	for i := 0; i < len(text); i++ {
		values[i] = NewWord(int64(text[i]))
	}
	return &sequence{values: values}
}

type sequence struct {
	values []Word
	next   int
}

func (s *sequence) HasNext() bool {
	return s.next < len(s.values)
}

func (s *sequence) Next() (Word, error) {
	if !s.HasNext() {
		return Word{}, ErrNoInput
	}
	res := s.values[s.next]
	s.next++
	return res, nil
}

func (s *sequence) append(values ...Word) {
	// Drop consumed values before growing to keep long-lived queues small.
	if s.next > 0 && s.next == len(s.values) {
		s.values = s.values[:0]
		s.next = 0
	}
	s.values = append(s.values, values...)
}

// Strategy creates a source that computes each value on demand by calling
// the given function. The source never runs dry; errors of the function are
// forwarded to the consumer.
func Strategy(next func() (Word, error)) InputSource {
	return strategy(next)
}

type strategy func() (Word, error)

func (s strategy) HasNext() bool {
	return true
}

func (s strategy) Next() (Word, error) {
	return s()
}

// Console creates a source reading one integer per line from the given
// reader. If prompt is not nil, a prompt is written to it before each line
// is read. Empty lines are skipped. The source is exhausted at the end of
// the input; lines that are not integers are reported by Next.
func Console(in io.Reader, prompt io.Writer) InputSource {
	return &console{scanner: bufio.NewScanner(in), prompt: prompt}
}

type console struct {
	scanner  *bufio.Scanner
	prompt   io.Writer
	line     string
	buffered bool
	eof      bool
}

func (c *console) HasNext() bool {
	for !c.buffered && !c.eof {
		if c.prompt != nil {
			fmt.Fprint(c.prompt, "input> ")
		}
		if !c.scanner.Scan() {
			c.eof = true
			break
		}
		if line := strings.TrimSpace(c.scanner.Text()); line != "" {
			c.line = line
			c.buffered = true
		}
	}
	return c.buffered
}

func (c *console) Next() (Word, error) {
	if !c.HasNext() {
		return Word{}, ErrNoInput
	}
	c.buffered = false
	res, err := ParseWord(c.line)
	if err != nil {
		return Word{}, fmt.Errorf("invalid console input: %w", err)
	}
	return res, nil
}
