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

// InputChannel is the input queue of a machine. It is a FIFO of input
// sources which are drained in the order they were queued. Sources may be
// added at any time, also while a previously queued source is only
// partially consumed. Exhausted sources are dropped lazily when the channel
// is probed.
//
// The zero value is an empty channel ready to use. Channels are not safe for
// concurrent use.
type InputChannel struct {
	sources []InputSource
	// tail is the channel-owned sequence collecting individually sent
	// values. It is only extended while it is the last queued source.
	tail *sequence
}

// Send appends the given values to the end of the channel.
func (c *InputChannel) Send(values ...Word) {
	if len(values) == 0 {
		return
	}
	if c.tail == nil || len(c.sources) == 0 || c.sources[len(c.sources)-1] != InputSource(c.tail) {
		c.tail = &sequence{}
		c.sources = append(c.sources, c.tail)
	}
	c.tail.append(values...)
}

// Queue appends the given source to the end of the channel. Values of the
// source are produced after all values queued before it.
func (c *InputChannel) Queue(source InputSource) {
	if source == nil {
		return
	}
	c.sources = append(c.sources, source)
}

// HasNext reports whether a value is available in any of the queued sources.
func (c *InputChannel) HasNext() bool {
	c.skipExhausted()
	return len(c.sources) > 0
}

// Next retrieves the next available value. It fails with ErrNoInput if none
// of the queued sources can provide a value.
func (c *InputChannel) Next() (Word, error) {
	c.skipExhausted()
	if len(c.sources) == 0 {
		return Word{}, ErrNoInput
	}
	return c.sources[0].Next()
}

// Clear removes all queued sources.
func (c *InputChannel) Clear() {
	c.sources = nil
	c.tail = nil
}

// skipExhausted drops leading sources that have no more values.
func (c *InputChannel) skipExhausted() {
	for len(c.sources) > 0 && !c.sources[0].HasNext() {
		c.sources[0] = nil
		c.sources = c.sources[1:]
	}
	if len(c.sources) == 0 {
		c.sources = nil
	}
}
