// SPDX-License-Identifier: EPL-2.0

// Package drumcore is the real-time core of a MIDI-triggered drum sampler.
//
// It decodes sample libraries from disk, keeps a hot-swappable snapshot
// of the active kit, bridges MIDI input to a lock-free event queue, and
// mixes polyphonic voices in a real-time audio callback. This root
// package retains the low-level decode/resample helpers the sampler is
// built on; the sampler-specific pieces live in the kit, mapping, queue,
// voice, kitcell, reload and midiingest subpackages.
//
// # Supported Formats
//
// Sample decoding supports:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// ResampleToMono16 remains available for one-off decode/resample jobs
// outside the real-time path (e.g. auditioning a sample before adding it
// to a kit):
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//	samples, rate, _ := drumcore.ResampleToMono16(src, 8000, 4096)
//
// # Loading a Kit
//
// The sampler's own pipeline is built from the subpackages:
//
//	k, errs := kit.Load(ctx, "kits/acoustic", 48000, kit.LoadOptions{})
//	cell := kitcell.New(k)
//	mixer := voice.NewMixer(cell, 64, 48000)
//	q := queue.New(1024)
//	in := midiingest.New(q)
//	in.Handle(midiBytes, timestamp)
//	mixer.Process(q, outputBuffer)
//
// # Audio Processing Pipeline
//
// For lower-level control the audio subpackage exposes the decode and
// resample primitives directly:
//
//	resampler := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampler)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Performance
//
// The decode path favors correctness over speed (drum samples are
// short-lived and decoded once, off the real-time thread); the voice
// package is the part held to a hard real-time budget — no allocation,
// no locking, no syscalls once a stream is running.
package drumcore
