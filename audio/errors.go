// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize is returned by ReadSamples when the caller's
	// buffer length isn't a whole number of frames for the stage's
	// channel count (e.g. an odd-length buffer passed to a stereo
	// StereoDownmixer).
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
