// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3-encoded drum samples via
// github.com/hajimehoshi/go-mp3. Most kit libraries ship WAV, but
// commercial packs and web-sourced one-shots occasionally arrive as
// MP3; kit.Decode sniffs the ID3/frame-sync header and routes here
// without ever trusting a ".mp3" extension.
//
// # Decoding a Drum Hit
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("42_v1_rr1.mp3")
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
//   - Channels: 2 (stereo; go-mp3 always decodes to stereo)
//   - Sample rate: whatever the file was encoded at
//
// kit.Decode follows this with an audio.Resampler when the file's rate
// differs from the kit's target rate, and an audio.StereoDownmixer would
// be a no-op here since
// MP3 output is never wider than stereo.
//
// # Limitations
//
//   - MP3 encoding is not supported (decoding only — there's no reason
//     to ever write a lossy one-shot back out)
package mp3
