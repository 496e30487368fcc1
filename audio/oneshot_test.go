// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"io"
	"testing"

	"github.com/ik5/drumcore/audio"
	"github.com/ik5/drumcore/internal/audiotest"
)

func TestOneShotGuard_TracksPeak(t *testing.T) {
	t.Parallel()

	// A kick transient: sharp attack, exponential decay.
	src := audiotest.NewKickTransientSource(44100, 1, 100)
	guard := audio.NewOneShotGuard(src, 30)

	buf := make([]float32, 4096)
	for {
		_, err := guard.ReadSamples(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if guard.Peak() != 1.0 {
		t.Errorf("Peak() = %v, want 1.0 (the attack sample)", guard.Peak())
	}
}

func TestOneShotGuard_SilentSourceHasZeroPeak(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 1000)
	guard := audio.NewOneShotGuard(src, 30)

	buf := make([]float32, 4096)
	for {
		_, err := guard.ReadSamples(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if guard.Peak() != 0 {
		t.Errorf("Peak() = %v, want 0 for a silent file", guard.Peak())
	}
}

func TestOneShotGuard_TruncatesRunawayFiles(t *testing.T) {
	t.Parallel()

	// A field recording accidentally dropped in a kit directory: far
	// longer than any drum one-shot should be.
	sampleRate := 1000
	src := audiotest.NewConstantSource(sampleRate, 1, sampleRate*120, 0.5)
	guard := audio.NewOneShotGuard(src, 1) // cap at 1 second

	var total int
	buf := make([]float32, 4096)
	for {
		n, err := guard.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != sampleRate {
		t.Errorf("total frames read = %d, want %d (1 second cap)", total, sampleRate)
	}
	if !guard.Truncated() {
		t.Error("Truncated() = false, want true for a source exceeding the cap")
	}
}

func TestOneShotGuard_ShortSampleIsNotTruncated(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 4410, 440)
	guard := audio.NewOneShotGuard(src, 30)

	buf := make([]float32, 8192)
	for {
		_, err := guard.ReadSamples(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if guard.Truncated() {
		t.Error("Truncated() = true, want false for a normal-length drum hit")
	}
}

func TestOneShotGuard_DefaultMaxSecondsWhenZero(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 10)
	guard := audio.NewOneShotGuard(src, 0)

	if guard.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", guard.SampleRate())
	}
}
