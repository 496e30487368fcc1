// SPDX-License-Identifier: EPL-2.0

// Package queue provides a bounded, wait-free single-producer/single-
// consumer event queue used to bridge MIDI ingest (the producer, running
// on whatever goroutine feeds it MIDI bytes) to the real-time audio
// callback (the sole consumer).
//
// Push never blocks: once the queue is full, further pushes are dropped
// and counted rather than applying backpressure to the producer or, far
// worse, to the audio thread. Pop never blocks either; it reports
// whether an event was available.
package queue
