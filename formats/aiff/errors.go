package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported indicates only 16-bit PCM is supported
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrUnsupportedAiffChunks describes a file whose chunk structure
	// can't be parsed. Decoder.Decode does not return it: a read failure
	// from the underlying go-audio decoder comes back wrapped as
	// "reading aiff data: ..." instead.
	ErrUnsupportedAiffChunks = errors.New("unsupported or malformed AIFF chunks")
)
