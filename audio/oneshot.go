// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// MaxOneShotSeconds bounds how long a single drum hit is allowed to run.
// A kit sample library is made of one-shots; anything past this length
// is almost certainly a misplaced loop or field recording rather than a
// drum hit, so OneShotGuard truncates it instead of letting a single bad
// file blow out a voice's memory footprint.
const MaxOneShotSeconds = 30

// OneShotGuard wraps a Source, capping the number of frames it will ever
// yield and tracking the peak absolute sample value seen so far. It is
// meant to sit directly around a freshly decoded sample, before
// resampling, while loading a kit.
type OneShotGuard struct {
	src        Source
	maxFrames  int
	frames     int
	peak       float32
	truncated  bool
}

// NewOneShotGuard wraps src, truncating it after maxSeconds worth of
// frames at src's own sample rate.
func NewOneShotGuard(src Source, maxSeconds int) *OneShotGuard {
	if maxSeconds <= 0 {
		maxSeconds = MaxOneShotSeconds
	}
	return &OneShotGuard{
		src:       src,
		maxFrames: src.SampleRate() * maxSeconds,
	}
}

func (g *OneShotGuard) SampleRate() int { return g.src.SampleRate() }
func (g *OneShotGuard) Channels() int   { return g.src.Channels() }
func (g *OneShotGuard) BufSize() int    { return g.src.BufSize() }
func (g *OneShotGuard) Close() error    { return g.src.Close() }

// Peak reports the largest absolute sample value seen so far. Silent
// source material (peak == 0 after the stream is fully drained) is a
// strong signal the file is not a usable drum hit.
func (g *OneShotGuard) Peak() float32 { return g.peak }

// Truncated reports whether the wrapped source was cut short at
// MaxOneShotSeconds.
func (g *OneShotGuard) Truncated() bool { return g.truncated }

func (g *OneShotGuard) ReadSamples(dst []float32) (int, error) {
	channels := g.src.Channels()
	if channels < 1 {
		channels = 1
	}

	framesRemaining := g.maxFrames - g.frames
	if framesRemaining <= 0 {
		g.truncated = true
		return 0, io.EOF
	}

	limit := dst
	if want := framesRemaining * channels; len(limit) > want {
		limit = limit[:want]
	}

	n, err := g.src.ReadSamples(limit)
	for i := 0; i < n; i++ {
		if v := limit[i]; v > g.peak {
			g.peak = v
		} else if -v > g.peak {
			g.peak = -v
		}
	}
	if channels > 0 {
		g.frames += n / channels
	}
	return n, err
}
