// SPDX-License-Identifier: EPL-2.0

package kit

import (
	"sync/atomic"

	"github.com/ik5/drumcore/mapping"
)

// Sample is a fully decoded, resampled sample ready for real-time
// playback: interleaved float32 frames at the mixer's target rate.
type Sample struct {
	Data   []float32
	Mono   bool
	Frames int
}

// Channels reports 1 for a mono sample, 2 for stereo.
func (s *Sample) Channels() int {
	if s.Mono {
		return 1
	}
	return 2
}

// VelocityLayer is a contiguous velocity range backed by a round-robin
// pool of samples. Select is called from the audio thread and must not
// allocate or block.
type VelocityLayer struct {
	VLo, VHi byte
	Samples  []*Sample

	cursor atomic.Uint64
}

// Contains reports whether velocity falls within this layer's range.
func (l *VelocityLayer) Contains(velocity byte) bool {
	return velocity >= l.VLo && velocity <= l.VHi
}

// Select returns the next sample in round-robin order, advancing the
// cursor. It returns nil if the layer holds no samples.
func (l *VelocityLayer) Select() *Sample {
	if len(l.Samples) == 0 {
		return nil
	}
	idx := l.cursor.Add(1) - 1
	return l.Samples[int(idx)%len(l.Samples)]
}

// Note is one MIDI note's set of velocity layers, plus the notes it
// chokes when triggered.
type Note struct {
	Number       byte
	Layers       []*VelocityLayer
	ChokeTargets []byte
}

// LayerFor returns the velocity layer covering velocity, or nil if none
// does (a decode failure can leave gaps in coverage).
func (n *Note) LayerFor(velocity byte) *VelocityLayer {
	for _, l := range n.Layers {
		if l.Contains(velocity) {
			return l
		}
	}
	return nil
}

// Kit is an immutable, fully decoded sample library ready to be handed to
// a Cell for hot-swapping.
type Kit struct {
	Name    string
	Notes   map[byte]*Note
	Mapping *mapping.NoteMapping
}

// Note looks up a MIDI note number.
func (k *Kit) Note(number byte) (*Note, bool) {
	n, ok := k.Notes[number]
	return n, ok
}

// velocityRange computes the [lo, hi] velocity range for the i-th
// (zero-indexed) of K velocity tiers, per the fixed partition: tier i
// covers floor(i*127/K)+1 .. floor((i+1)*127/K), except the last tier
// which always extends to 127.
func velocityRange(i, k int) (lo, hi byte) {
	lo = byte(i*127/k + 1)
	hi = byte((i + 1) * 127 / k)
	if i == k-1 {
		hi = 127
	}
	return lo, hi
}
