// SPDX-License-Identifier: EPL-2.0

package voice

import "github.com/ik5/drumcore/kit"

// state is a voice's position in its envelope.
type state uint8

const (
	free state = iota
	attacking
	active
	releasing
)

// Voice is one polyphonic playback slot. All fields are touched only
// from the audio thread; nothing here is safe for concurrent use.
type Voice struct {
	state  state
	sample *kit.Sample
	cursor int
	note   byte

	// baseGain is the velocity-derived sustain gain, constant for the
	// voice's lifetime: (velocity/127)^1.5.
	baseGain float32

	attackTotal     int
	attackRemaining int

	releaseTotal     int
	releaseRemaining int
	releaseStartGain float32
}

// currentGain reports the voice's instantaneous gain without advancing
// its envelope, used to compare candidates when stealing a voice.
func (v *Voice) currentGain() float32 {
	switch v.state {
	case attacking:
		return v.baseGain * float32(v.attackTotal-v.attackRemaining) / float32(v.attackTotal)
	case active:
		return v.baseGain
	case releasing:
		return v.releaseStartGain * float32(v.releaseRemaining) / float32(v.releaseTotal)
	default:
		return 0
	}
}

// progress reports how far the voice has played through its sample, in
// [0, 1], used as the tie-breaker when two voices have equal gain.
func (v *Voice) progress() float32 {
	if v.sample == nil || v.sample.Frames == 0 {
		return 0
	}
	return float32(v.cursor) / float32(v.sample.Frames)
}

// stepEnvelope advances the voice's envelope by one frame and returns
// the gain to apply to that frame.
func (v *Voice) stepEnvelope() float32 {
	switch v.state {
	case attacking:
		gain := v.baseGain * float32(v.attackTotal-v.attackRemaining) / float32(v.attackTotal)
		v.attackRemaining--
		if v.attackRemaining <= 0 {
			v.state = active
		}
		return gain
	case active:
		return v.baseGain
	case releasing:
		gain := v.releaseStartGain * float32(v.releaseRemaining) / float32(v.releaseTotal)
		v.releaseRemaining--
		if v.releaseRemaining <= 0 {
			v.state = free
		}
		return gain
	default:
		return 0
	}
}

// startRelease begins a linear fade to silence over fadeFrames frames,
// ramping from the voice's current instantaneous gain rather than
// baseGain — a voice that's still attacking, or already mid-release
// from an earlier choke, must not jump back up before fading down.
// fadeFrames <= 0 frees the voice immediately (a hard cut).
func (v *Voice) startRelease(fadeFrames int) {
	if v.state == free {
		return
	}
	if fadeFrames <= 0 {
		v.state = free
		return
	}
	v.releaseStartGain = v.currentGain()
	v.releaseTotal = fadeFrames
	v.releaseRemaining = fadeFrames
	v.state = releasing
}
