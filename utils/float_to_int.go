package utils

// Float32ToInt16 clamps and scales a float32 sample to 16-bit PCM range.
// internal/drumtest uses this to build synthetic WAV fixtures; the live
// playback path never converts back to int16, since voice.Mixer writes
// float32 output all the way to the audio device.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
