// SPDX-License-Identifier: EPL-2.0

// Package midiingest turns raw MIDI byte messages into queue.Event
// values and pushes them onto an EventQueue. It runs on whatever
// goroutine receives MIDI input (a driver callback, typically) and never
// touches the audio thread directly — it only ever calls
// queue.EventQueue.Push.
package midiingest
