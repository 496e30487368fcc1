// SPDX-License-Identifier: EPL-2.0

package kit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/drumcore/audio"
	"github.com/ik5/drumcore/formats/aiff"
	"github.com/ik5/drumcore/formats/mp3"
	"github.com/ik5/drumcore/formats/vorbis"
	"github.com/ik5/drumcore/formats/wav"
)

// registry maps sniffed format keys to the decoders that can read them.
// The extension check in the filename grammar is only a fast filter;
// the actual format is determined by sniffing the file's own header.
func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

var decoders = newRegistry()

// sniff identifies a decoder format key from the first bytes of a file,
// ignoring whatever extension the file was found under.
func sniff(br *bufio.Reader) (string, error) {
	header, err := br.Peek(12)
	if len(header) == 0 && err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}

	switch {
	case len(header) >= 12 && string(header[0:4]) == "RIFF" && string(header[8:12]) == "WAVE":
		return "wav", nil
	case len(header) >= 12 && string(header[0:4]) == "FORM" && string(header[8:12]) == "AIFF":
		return "aiff", nil
	case len(header) >= 4 && string(header[0:4]) == "OggS":
		return "ogg", nil
	case len(header) >= 3 && string(header[0:3]) == "ID3":
		return "mp3", nil
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		return "mp3", nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Decode reads path, decodes it with whichever registered decoder
// matches its content, resamples to targetRate, and downmixes anything
// beyond stereo. It never inspects path's extension.
func Decode(path string, targetRate int) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	format, err := sniff(br)
	if err != nil {
		return nil, err
	}

	dec, ok := decoders.Get(format)
	if !ok {
		return nil, ErrUnsupportedFormat
	}

	src, err := dec.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer src.Close()

	guard := audio.NewOneShotGuard(src, audio.MaxOneShotSeconds)

	var stream audio.Source = guard
	if src.SampleRate() != targetRate {
		stream = audio.NewResampler(guard, targetRate)
	}

	channels := src.Channels()
	if channels > 2 {
		stream = audio.NewStereoDownmixer(stream)
		channels = 2
	}

	data, err := drain(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if guard.Peak() == 0 {
		return nil, ErrSilentSample
	}

	frames := 0
	if channels > 0 {
		frames = len(data) / channels
	}

	return &Sample{
		Data:   data,
		Mono:   channels == 1,
		Frames: frames,
	}, nil
}

// drain reads every sample out of src into a single contiguous buffer.
func drain(src audio.Source) ([]float32, error) {
	var out []float32
	buf := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
