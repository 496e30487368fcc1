// SPDX-License-Identifier: EPL-2.0

// Command drumcored wires the drumcore sampler packages into a running
// daemon: it loads a kit from disk, listens for MIDI input, watches the
// kit directory for changes, and streams mixed audio to the default
// output device.
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ebitengine/oto/v3"
	"github.com/fsnotify/fsnotify"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/ik5/drumcore/kit"
	"github.com/ik5/drumcore/kitcell"
	"github.com/ik5/drumcore/midiingest"
	"github.com/ik5/drumcore/queue"
	"github.com/ik5/drumcore/reload"
	"github.com/ik5/drumcore/voice"
)

// logger is the package-wide structured logger. Safe to use before
// initLogger runs; defaults to slog.Default().
var logger = slog.Default()

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

func main() {
	kitDir := flag.String("kit", "", "kit directory to load (required)")
	sampleRate := flag.Int("rate", 48000, "audio output sample rate")
	polyphony := flag.Int("polyphony", 64, "maximum simultaneous voices")
	midiName := flag.String("midi", "", "MIDI input device name substring; first match connects if empty")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	initLogger(*debug)

	if *kitDir == "" {
		logger.Error("missing required -kit flag")
		os.Exit(1)
	}

	k, errs := kit.Load(context.Background(), *kitDir, *sampleRate, kit.LoadOptions{
		OnProgress: func(done, total int) {
			logger.Debug("decoding kit", "done", done, "total", total)
		},
	})
	for _, e := range errs {
		logger.Warn("sample decode error", "err", e)
	}
	if k == nil {
		logger.Error("failed to load kit", "dir", *kitDir)
		os.Exit(1)
	}
	logger.Info("kit loaded", "name", k.Name, "notes", len(k.Notes))

	cell := kitcell.New(k)
	defer cell.Close()

	mixer := voice.NewMixer(cell, *polyphony, *sampleRate)
	q := queue.New(1024)
	ingest := midiingest.New(q)

	coordinator := reload.NewCoordinator(cell, reload.Config{
		Dir:        *kitDir,
		SampleRate: *sampleRate,
		Logger:     logger,
	})
	defer coordinator.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("failed to start filesystem watcher", "err", err)
		os.Exit(1)
	}
	defer watcher.Close()
	if err := watcher.Add(*kitDir); err != nil {
		logger.Error("failed to watch kit directory", "dir", *kitDir, "err", err)
		os.Exit(1)
	}
	go watchLoop(watcher, coordinator)

	if err := connectMIDI(*midiName, ingest); err != nil {
		logger.Error("failed to connect MIDI input", "err", err)
		os.Exit(1)
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   *sampleRate,
		ChannelCount: voice.OutputChannels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		logger.Error("failed to open audio output", "err", err)
		os.Exit(1)
	}
	<-ready

	player := otoCtx.NewPlayer(&mixerReader{mixer: mixer, q: q})
	player.Play()
	defer player.Close()

	logger.Info("drumcored running",
		"kit_dir", *kitDir,
		"sample_rate", *sampleRate,
		"polyphony", *polyphony,
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")
}

// mixerReader adapts voice.Mixer.Process to the io.Reader oto.Player
// expects, encoding interleaved float32 samples as little-endian bytes.
type mixerReader struct {
	mixer *voice.Mixer
	q     *queue.EventQueue
	buf   []float32
}

func (r *mixerReader) Read(p []byte) (int, error) {
	const bytesPerSample = 4
	frames := len(p) / (bytesPerSample * voice.OutputChannels)
	if frames == 0 {
		return 0, nil
	}

	need := frames * voice.OutputChannels
	if cap(r.buf) < need {
		r.buf = make([]float32, need)
	}
	r.buf = r.buf[:need]

	r.mixer.Process(r.q, r.buf)

	for i, s := range r.buf {
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(s))
	}
	return need * bytesPerSample, nil
}

func watchLoop(w *fsnotify.Watcher, c *reload.Coordinator) {
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Debug("kit directory changed", "event", event)
				c.Notify()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("filesystem watcher error", "err", err)
		}
	}
}

func connectMIDI(namePattern string, ingest *midiingest.Ingest) error {
	drv, err := rtmididrv.New()
	if err != nil {
		return fmt.Errorf("opening MIDI driver: %w", err)
	}

	ins, err := drv.Ins()
	if err != nil {
		return fmt.Errorf("listing MIDI inputs: %w", err)
	}
	if len(ins) == 0 {
		return fmt.Errorf("no MIDI input devices found")
	}

	var chosen drivers.In
	for _, in := range ins {
		if namePattern == "" || strings.Contains(in.String(), namePattern) {
			chosen = in
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("no MIDI input matching %q", namePattern)
	}

	if err := chosen.Open(); err != nil {
		return fmt.Errorf("opening MIDI input %q: %w", chosen.String(), err)
	}

	_, err = midi.ListenTo(chosen, func(msg midi.Message, timestampms int32) {
		ingest.Handle([]byte(msg), uint64(timestampms))
	}, midi.HandleError(func(err error) {
		logger.Warn("MIDI listener error", "err", err)
	}))
	if err != nil {
		return fmt.Errorf("starting MIDI listener: %w", err)
	}

	logger.Info("MIDI input connected", "device", chosen.String())
	return nil
}
