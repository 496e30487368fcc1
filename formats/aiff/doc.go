// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF-encoded drum samples via
// github.com/go-audio/aiff. Sample libraries produced on macOS-based
// audio workstations sometimes ship AIFF instead of WAV; kit.Decode
// recognizes the "FORM"/"AIFF" header pair and routes here regardless
// of whether the file is named .aif, .aiff, or something else entirely.
//
// # Decoding a Drum Hit
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("49_v1_rr1.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: matches the encoded file
//   - Sample rate: matches the encoded file
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is currently supported
//   - ErrUnsupportedAiffLayout: unsupported AIFF file structure
//
// kit.Decode wraps any of these in kit.ErrMalformed, so one bad AIFF
// file in a kit directory drops that sample's layer rather than failing
// the whole load.
//
// # AIFF vs. WAV
//
//   - AIFF uses big-endian byte order, WAV little-endian
//   - AIFF stores sample rate as an 80-bit float, WAV a 32-bit int
//   - Both are uncompressed PCM formats and decode to the same
//     audio.Source shape once past the header
//
// # Limitations
//
//   - AIFF writing is not supported (decoding only)
//   - Only 16-bit PCM is supported; other bit depths return
//     ErrOnlyPCM16bitSupported
package aiff
