// SPDX-License-Identifier: EPL-2.0

// Package voice is the real-time mixing core: a fixed pool of Voice
// slots played back by a Mixer's audio-callback loop. Nothing on the
// Process path allocates, locks, or performs I/O.
//
// A NoteOn drains from the event queue allocates the next free voice, or
// steals the quietest one if the pool is full, and gives it a short
// linear attack ramp. ChokeAll and PedalClose events start a linear
// release ramp on whatever voices they target; NoteOff events are
// ignored and samples play to completion. Voices are mixed
// additively into the output buffer and the sum is hard-clamped to
// [-1, 1].
package voice
