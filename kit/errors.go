// SPDX-License-Identifier: EPL-2.0

package kit

import "errors"

var (
	// ErrUnsupportedFormat is returned when a sample's content does not
	// match any registered decoder.
	ErrUnsupportedFormat = errors.New("kit: unsupported sample format")

	// ErrMalformed is returned when a sample matches a decoder but its
	// content cannot be decoded.
	ErrMalformed = errors.New("kit: malformed sample file")

	// ErrIO is returned when a sample file cannot be read from disk.
	ErrIO = errors.New("kit: sample read failure")

	// ErrNoSamples is returned by Load when a kit directory contains no
	// filenames matching the sample grammar.
	ErrNoSamples = errors.New("kit: no matching sample filenames found")

	// ErrNoNotes is returned by Load when every candidate note failed to
	// decode a single sample.
	ErrNoNotes = errors.New("kit: no notes decoded successfully")

	// ErrSilentSample is returned when a decoded sample contains no
	// audible signal at all, which is never a usable drum hit.
	ErrSilentSample = errors.New("kit: sample decoded but contains no audible signal")
)
