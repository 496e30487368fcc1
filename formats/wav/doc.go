// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes 16-bit PCM WAV files, the format most
// drum sample libraries ship in.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit (the overwhelming majority of drum one-shot libraries)
//   - Mono and stereo
//   - Any sample rate
//
// # Decoding a Drum Hit
//
// kit.Decode sniffs a file's header and dispatches here automatically;
// Decoder is also usable directly:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("38_v2_rr1.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// internal/drumtest uses WriteWAV16 to synthesize fixture kits for the
// kit and reload package tests without shipping binary sample files in
// the repository:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("38.wav")
//	err := wav.WriteWAV16(file, 44100, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: unsupported WAV file structure
//
// kit.Decode wraps any of these in kit.ErrMalformed before reporting a
// per-file load error, so a single bad WAV in a kit directory never
// aborts the rest of the load.
package wav
