// SPDX-License-Identifier: EPL-2.0

package midiingest_test

import (
	"testing"

	"github.com/ik5/drumcore/midiingest"
	"github.com/ik5/drumcore/queue"
)

func TestHandle_NoteOn(t *testing.T) {
	t.Parallel()

	q := queue.New(8)
	in := midiingest.New(q)

	in.Handle([]byte{0x90, 38, 100}, 1)

	e, ok := q.Pop()
	if !ok {
		t.Fatal("no event pushed")
	}
	if e.Kind != queue.NoteOn || e.Note != 38 || e.Velocity != 100 {
		t.Errorf("event = %+v, want NoteOn note=38 vel=100", e)
	}
}

func TestHandle_NoteOnWithZeroVelocityIsNoteOff(t *testing.T) {
	t.Parallel()

	q := queue.New(8)
	in := midiingest.New(q)

	in.Handle([]byte{0x90, 38, 0}, 1)

	e, ok := q.Pop()
	if !ok {
		t.Fatal("no event pushed")
	}
	if e.Kind != queue.NoteOff || e.Note != 38 {
		t.Errorf("event = %+v, want NoteOff note=38", e)
	}
}

func TestHandle_NoteOff(t *testing.T) {
	t.Parallel()

	q := queue.New(8)
	in := midiingest.New(q)

	in.Handle([]byte{0x80, 38, 64}, 1)

	e, ok := q.Pop()
	if !ok {
		t.Fatal("no event pushed")
	}
	if e.Kind != queue.NoteOff || e.Note != 38 {
		t.Errorf("event = %+v, want NoteOff note=38", e)
	}
}

func TestHandle_PolyAftertouchChokesOnNonzero(t *testing.T) {
	t.Parallel()

	q := queue.New(8)
	in := midiingest.New(q)

	in.Handle([]byte{0xA0, 42, 0}, 1)
	if q.Len() != 0 {
		t.Error("zero-pressure aftertouch should not push an event")
	}

	in.Handle([]byte{0xA0, 42, 50}, 2)
	e, ok := q.Pop()
	if !ok {
		t.Fatal("no event pushed for nonzero pressure")
	}
	if e.Kind != queue.ChokeAll || e.Note != 42 {
		t.Errorf("event = %+v, want ChokeAll note=42", e)
	}
}

func TestHandle_HiHatPedalClosesOnEdge(t *testing.T) {
	t.Parallel()

	q := queue.New(8)
	in := midiingest.New(q)

	// Pedal starts open (default); a low CC4 value closes it once.
	in.Handle([]byte{0xB0, 4, 10}, 1)
	e, ok := q.Pop()
	if !ok {
		t.Fatal("expected PedalClose on first closing transition")
	}
	if e.Kind != queue.PedalClose || e.Note != midiingest.PedalHiHatNote {
		t.Errorf("event = %+v, want PedalClose note=%d", e, midiingest.PedalHiHatNote)
	}

	// Staying closed shouldn't refire.
	in.Handle([]byte{0xB0, 4, 5}, 2)
	if q.Len() != 0 {
		t.Error("repeated closed values should not refire PedalClose")
	}

	// Reopening then closing again fires once more.
	in.Handle([]byte{0xB0, 4, 100}, 3)
	in.Handle([]byte{0xB0, 4, 20}, 4)
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after a fresh closing edge", q.Len())
	}
}

func TestHandle_IgnoresOtherControllers(t *testing.T) {
	t.Parallel()

	q := queue.New(8)
	in := midiingest.New(q)

	in.Handle([]byte{0xB0, 7, 10}, 1) // volume, not the pedal controller
	if q.Len() != 0 {
		t.Error("non-pedal CC should not push an event")
	}
}

func TestHandle_MalformedMessagesCountAsParseFailures(t *testing.T) {
	t.Parallel()

	q := queue.New(8)
	in := midiingest.New(q)

	in.Handle(nil, 1)
	in.Handle([]byte{0x00}, 2) // status byte missing high bit
	in.Handle([]byte{0x90, 38}, 3) // short note-on message

	if got := in.ParseFailures(); got != 3 {
		t.Errorf("ParseFailures() = %d, want 3", got)
	}
	if q.Len() != 0 {
		t.Error("malformed messages should not push events")
	}
}

func TestHandle_IgnoresUnhandledMessageTypes(t *testing.T) {
	t.Parallel()

	q := queue.New(8)
	in := midiingest.New(q)

	in.Handle([]byte{0xC0, 5}, 1) // program change
	in.Handle([]byte{0xE0, 0, 64}, 2) // pitch bend

	if q.Len() != 0 {
		t.Error("unhandled message types should not push events")
	}
	if in.ParseFailures() != 0 {
		t.Error("unhandled message types are not parse failures")
	}
}
