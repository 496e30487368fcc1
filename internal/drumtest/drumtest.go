// SPDX-License-Identifier: EPL-2.0

// Package drumtest holds fixtures shared by the sampler packages' tests:
// synthetic sample files on disk and small helpers for building kits
// without a real sample library.
package drumtest

import (
	"math"
	"os"
	"path/filepath"

	"github.com/ik5/drumcore/formats/wav"
	"github.com/ik5/drumcore/utils"
)

// WriteSineWAV writes a mono 16-bit PCM WAV file containing durationMs
// milliseconds of a sine wave at frequencyHz, at the given sample rate.
func WriteSineWAV(path string, sampleRate int, frequencyHz float64, durationMs int) error {
	n := sampleRate * durationMs / 1000
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		v := math.Sin(2 * math.Pi * frequencyHz * t)
		samples[i] = utils.Float32ToInt16(float32(v))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return wav.WriteWAV16(f, sampleRate, samples)
}

// WriteSilentWAV writes a mono 16-bit PCM WAV file of pure silence.
func WriteSilentWAV(path string, sampleRate int, durationMs int) error {
	n := sampleRate * durationMs / 1000
	samples := make([]int16, n)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return wav.WriteWAV16(f, sampleRate, samples)
}

// WriteGarbageFile writes bytes that don't match any supported sample
// format, to exercise malformed/unsupported decode paths.
func WriteGarbageFile(path string) error {
	return os.WriteFile(path, []byte("not a sample file"), 0o644)
}

// KitDir writes each of the given sample filenames into dir as a 20 ms,
// 440 Hz sine WAV at sampleRate.
func KitDir(dir string, names []string, sampleRate int) error {
	for _, name := range names {
		if err := WriteSineWAV(filepath.Join(dir, name), sampleRate, 440, 20); err != nil {
			return err
		}
	}
	return nil
}
