// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level PCM primitives kit.Decode
// assembles into a drum sample decode pipeline: a common Source
// interface every format decoder implements, a cubic-interpolation
// Resampler, and two domain-specific stages — StereoDownmixer and
// OneShotGuard — that exist because the samples flowing through this
// package are always one-shot drum hits, never arbitrary audio.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Every format decoder (wav, mp3, vorbis, aiff) and every processing
// stage in this package implements Source, so kit.Decode can chain them
// without caring which concrete type it's holding.
//
// # A Kit Sample's Pipeline
//
// kit.Decode builds one pipeline per file:
//
//	src, _ := decoder.Decode(file)               // format-specific decode
//	guard := audio.NewOneShotGuard(src, 30)       // cap length, track peak
//	stream := audio.Source(guard)
//	if src.SampleRate() != 48000 {
//	    stream = audio.NewResampler(guard, 48000) // to the kit's target rate
//	}
//	if src.Channels() > 2 {
//	    stream = audio.NewStereoDownmixer(stream) // fold room mics to stereo
//	}
//
// OneShotGuard's Peak() lets the caller reject a file that decoded
// cleanly but contains no audible signal — a silent WAV is not a usable
// drum hit even though nothing about decoding it failed.
//
// # Format Registry
//
// kit.Decode sniffs a file's header (never its extension) and looks the
// resulting format key up in a Registry:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]; 0.0 is silence. This is the same
// representation voice.Voice mixes directly, so no conversion happens
// between decode time and playback time.
//
// # Error Handling
//
// ReadSamples returns io.EOF when a source is exhausted; any other
// non-nil error is a decode failure kit.Decode wraps in kit.ErrMalformed.
package audio
