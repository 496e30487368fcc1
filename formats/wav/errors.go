package wav

import "errors"

var (
	// ErrNotWavFile is returned when a file's header doesn't carry the
	// RIFF/WAVE magic kit.Decode sniffs for before routing here.
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrUnsupportedWavLayout is returned when the chunk right after the
	// RIFF/WAVE header is not "fmt ".
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	// ErrOnlyPCM16bitSupported is returned for anything but 16-bit PCM —
	// most drum sample packs ship 16-bit, but 24-bit and float exports
	// exist and aren't decoded here.
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	// ErrUnsupportedWavChunks covers malformed or unrecognized chunk data
	// (e.g. truncated metadata chunks some DAWs leave behind).
	ErrUnsupportedWavChunks =  errors.New("unsupported WAV chunks")
)
