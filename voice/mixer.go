// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"math"
	"sync/atomic"

	"github.com/ik5/drumcore/kitcell"
	"github.com/ik5/drumcore/queue"
)

// OutputChannels is the fixed channel count of Process's output buffer:
// interleaved stereo.
const OutputChannels = 2

const (
	attackSeconds     = 0.001 // 1ms linear attack for new and stolen voices
	defaultFadeSeconds = 0.005 // 5ms release for PedalClose and a trigger's choke targets
	chokeAllFadeSeconds = 0.05 // 50ms release for an explicit ChokeAll gesture
)

// Mixer owns a fixed pool of Voice slots and mixes them into an output
// buffer once per audio callback.
type Mixer struct {
	cell   *kitcell.Cell
	voices []Voice

	attackFrames        int
	defaultFadeFrames   int
	chokeAllFadeFrames  int

	triggersHandled atomic.Uint64
	voicesStolen    atomic.Uint64
}

// NewMixer creates a Mixer with the given polyphony (voice pool size)
// reading kits from cell, computing its envelope timings for sampleRate.
func NewMixer(cell *kitcell.Cell, polyphony int, sampleRate int) *Mixer {
	if polyphony < 1 {
		polyphony = 1
	}
	return &Mixer{
		cell:               cell,
		voices:             make([]Voice, polyphony),
		attackFrames:       framesFor(sampleRate, attackSeconds),
		defaultFadeFrames:  framesFor(sampleRate, defaultFadeSeconds),
		chokeAllFadeFrames: framesFor(sampleRate, chokeAllFadeSeconds),
	}
}

func framesFor(sampleRate int, seconds float64) int {
	f := int(math.Ceil(float64(sampleRate) * seconds))
	if f < 1 {
		f = 1
	}
	return f
}

// Process drains every pending event from q, applies it to the voice
// pool, then mixes all active voices into out (interleaved stereo,
// len(out) must be a multiple of OutputChannels). It performs no
// allocation and never blocks.
func (m *Mixer) Process(q *queue.EventQueue, out []float32) {
	for {
		e, ok := q.Pop()
		if !ok {
			break
		}
		m.apply(e)
	}

	for i := range out {
		out[i] = 0
	}

	frames := len(out) / OutputChannels
	for i := range m.voices {
		if m.voices[i].state == free {
			continue
		}
		m.mixVoice(&m.voices[i], out, frames)
	}

	for i := range out {
		switch {
		case out[i] > 1:
			out[i] = 1
		case out[i] < -1:
			out[i] = -1
		}
	}
}

func (m *Mixer) apply(e queue.Event) {
	switch e.Kind {
	case queue.NoteOn:
		m.trigger(e.Note, e.Velocity)
	case queue.NoteOff:
		// One-shot drum samples ignore NoteOff and play to completion.
		// Reserved for future gating.
	case queue.ChokeAll:
		m.chokeNote(e.Note, m.chokeAllFadeFrames)
	case queue.PedalClose:
		m.chokeTargetsOf(e.Note, m.defaultFadeFrames)
	}
}

// trigger allocates a voice for note at velocity, if the active kit maps
// it to a sample, and immediately starts fading whatever it chokes.
func (m *Mixer) trigger(note, velocity byte) {
	k := m.cell.Load()
	if k == nil {
		return
	}
	n, ok := k.Note(note)
	if !ok {
		return
	}
	layer := n.LayerFor(velocity)
	if layer == nil {
		return
	}
	sample := layer.Select()
	if sample == nil {
		return
	}

	m.triggersHandled.Add(1)

	v := m.allocVoice()
	v.sample = sample
	v.cursor = 0
	v.note = note
	v.baseGain = velocityGain(velocity)
	v.attackTotal = m.attackFrames
	v.attackRemaining = m.attackFrames
	v.state = attacking

	for _, target := range n.ChokeTargets {
		m.chokeNote(target, m.defaultFadeFrames)
	}
}

// velocityGain maps a MIDI velocity to a sustain gain via a 1.5-power
// curve, giving low velocities a steeper rolloff than a linear map.
func velocityGain(velocity byte) float32 {
	return float32(math.Pow(float64(velocity)/127.0, 1.5))
}

// allocVoice returns the first free slot, or steals the slot with the
// lowest current gain (ties broken by whichever has played furthest
// into its sample).
func (m *Mixer) allocVoice() *Voice {
	for i := range m.voices {
		if m.voices[i].state == free {
			return &m.voices[i]
		}
	}

	best := 0
	bestGain := m.voices[0].currentGain()
	bestProgress := m.voices[0].progress()
	for i := 1; i < len(m.voices); i++ {
		g := m.voices[i].currentGain()
		p := m.voices[i].progress()
		if g < bestGain || (g == bestGain && p > bestProgress) {
			best, bestGain, bestProgress = i, g, p
		}
	}
	m.voicesStolen.Add(1)
	return &m.voices[best]
}

// chokeNote starts a fade on every voice currently sounding note.
func (m *Mixer) chokeNote(note byte, fadeFrames int) {
	for i := range m.voices {
		v := &m.voices[i]
		if v.state == free || v.note != note {
			continue
		}
		v.startRelease(fadeFrames)
	}
}

// chokeTargetsOf fades whatever the active kit says note chokes, without
// touching note's own voices.
func (m *Mixer) chokeTargetsOf(note byte, fadeFrames int) {
	k := m.cell.Load()
	if k == nil {
		return
	}
	n, ok := k.Note(note)
	if !ok {
		return
	}
	for _, target := range n.ChokeTargets {
		m.chokeNote(target, fadeFrames)
	}
}

func (m *Mixer) mixVoice(v *Voice, out []float32, frames int) {
	sample := v.sample
	if sample == nil {
		v.state = free
		return
	}
	channels := sample.Channels()

	for f := 0; f < frames; f++ {
		if v.cursor >= sample.Frames {
			v.state = free
			return
		}

		gain := v.stepEnvelope()

		base := v.cursor * channels
		var l, r float32
		if channels == 1 {
			l = sample.Data[base] * gain
			r = l
		} else {
			l = sample.Data[base] * gain
			r = sample.Data[base+1] * gain
		}

		out[f*OutputChannels] += l
		out[f*OutputChannels+1] += r

		v.cursor++

		if v.state == free {
			return
		}
	}
}

// Stats is a snapshot of the mixer's activity, as returned by
// Mixer.Stats.
type Stats struct {
	TriggersHandled uint64
	VoicesStolen    uint64
	ActiveVoices    int
}

// Stats snapshots the mixer's counters. ActiveVoices walks the voice
// pool and is therefore only safe to call from the audio thread itself.
func (m *Mixer) Stats() Stats {
	active := 0
	for i := range m.voices {
		if m.voices[i].state != free {
			active++
		}
	}
	return Stats{
		TriggersHandled: m.triggersHandled.Load(),
		VoicesStolen:    m.voicesStolen.Load(),
		ActiveVoices:    active,
	}
}
