// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis-encoded drum samples via
// github.com/jfreymuth/oggvorbis. Game audio packs and some
// community-built electronic kits distribute one-shots as Ogg to keep
// library size down; kit.Decode recognizes the "OggS" capture pattern
// header and routes here regardless of file extension.
//
// # Decoding a Drum Hit
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("46_v1_rr1.ogg")
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
//   - Channels: matches the encoded file (mono or stereo)
//   - Sample rate: matches the encoded file
//
// Interleaved for stereo files:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// kit.Decode resamples to the kit's target rate afterward when the
// file's rate differs from it, and downmixes with audio.StereoDownmixer if the file somehow carries more
// than two channels.
//
// # Limitations
//
//   - Vorbis encoding is not supported (decoding only)
//   - Reading is frame-based: each ReadSamples call may decode a whole
//     Vorbis frame internally even for a small dst buffer
package vorbis
