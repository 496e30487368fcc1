// SPDX-License-Identifier: EPL-2.0

package midiingest

import (
	"sync/atomic"

	"github.com/ik5/drumcore/queue"
)

// PedalHiHatNote is the General MIDI pedal hi-hat note, the target of a PedalClose event synthesized from the hi-hat
// pedal controller.
const PedalHiHatNote byte = 44

// hiHatPedalController is the CC number carrying continuous hi-hat pedal
// position on the devices this ingest targets.
const hiHatPedalController byte = 4

// pedalClosedThreshold is the controller value below which the pedal is
// considered closed.
const pedalClosedThreshold byte = 64

// Ingest parses raw MIDI messages and forwards the resulting events to
// an EventQueue.
type Ingest struct {
	q *queue.EventQueue

	pedalOpen bool // last observed state of the hi-hat pedal controller

	parseFailures atomic.Uint64
}

// New creates an Ingest that pushes parsed events onto q.
func New(q *queue.EventQueue) *Ingest {
	return &Ingest{q: q, pedalOpen: true}
}

// Handle parses a single raw MIDI message and pushes the event(s) it
// implies onto the queue, tagged with timestamp ts. A message with no
// status byte, or too few data bytes for its type, increments
// ParseFailures and is otherwise ignored; message types outside the
// trigger surface are ignored without being counted. Handle never returns an error because it is meant to be
// called directly from a driver's message callback.
func (in *Ingest) Handle(data []byte, ts uint64) {
	if len(data) == 0 || data[0]&0x80 == 0 {
		in.parseFailures.Add(1)
		return
	}

	switch data[0] & 0xF0 {
	case 0x90: // Note On
		note, vel, ok := in.data2(data)
		if !ok {
			return
		}
		if vel > 0 {
			in.q.Push(queue.Event{Kind: queue.NoteOn, Note: note, Velocity: vel, Timestamp: ts})
		} else {
			in.q.Push(queue.Event{Kind: queue.NoteOff, Note: note, Timestamp: ts})
		}

	case 0x80: // Note Off
		note, _, ok := in.data2(data)
		if !ok {
			return
		}
		in.q.Push(queue.Event{Kind: queue.NoteOff, Note: note, Timestamp: ts})

	case 0xA0: // Polyphonic key pressure: nonzero pressure chokes the note
		note, pressure, ok := in.data2(data)
		if !ok {
			return
		}
		if pressure > 0 {
			in.q.Push(queue.Event{Kind: queue.ChokeAll, Note: note, Timestamp: ts})
		}

	case 0xB0: // Control change
		controller, value, ok := in.data2(data)
		if !ok {
			return
		}
		if controller != hiHatPedalController {
			return
		}
		closed := value < pedalClosedThreshold
		if closed && in.pedalOpen {
			in.q.Push(queue.Event{Kind: queue.PedalClose, Note: PedalHiHatNote, Timestamp: ts})
		}
		in.pedalOpen = !closed

	default:
		// Program change, pitch bend, channel pressure, system messages:
		// not part of the trigger surface.
	}
}

// data2 extracts the two data bytes of a 3-byte channel message,
// counting a parse failure and reporting ok == false if data is too
// short.
func (in *Ingest) data2(data []byte) (b1, b2 byte, ok bool) {
	if len(data) < 3 {
		in.parseFailures.Add(1)
		return 0, 0, false
	}
	return data[1], data[2], true
}

// ParseFailures reports how many messages passed to Handle could not be
// parsed.
func (in *Ingest) ParseFailures() uint64 {
	return in.parseFailures.Load()
}
