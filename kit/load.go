// SPDX-License-Identifier: EPL-2.0

package kit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/drumcore/mapping"
)

// LoadOptions configures Load.
type LoadOptions struct {
	// Concurrency bounds how many samples decode in parallel. Zero or
	// negative selects runtime.GOMAXPROCS(0).
	Concurrency int

	// OnProgress, if set, is called after each sample finishes decoding
	// (successfully or not) with the running count and the total number
	// of files being decoded. It may be called concurrently from
	// multiple goroutines.
	OnProgress func(done, total int)

	Logger *slog.Logger
}

// decodeJob is one file assigned a slot within a velocity layer's
// round-robin pool.
type decodeJob struct {
	layer *VelocityLayer
	slot  int
	info  fileInfo
}

// Load reads every sample in dir, groups them into notes and velocity
// layers per the filename grammar, decodes them concurrently at
// targetRate, and merges dir's mapping.toml (if any) over the General
// MIDI defaults.
//
// Per-file decode failures are collected and returned alongside a Kit
// built from whatever did succeed; a layer with any failed file is
// dropped, a note with no surviving layers is dropped, and a Kit with no
// surviving notes is a nil result with ErrNoNotes among the returned
// errors. The kit's name is the name set in dir's mapping.toml, or
// dir's base name when the file is absent or sets none.
func Load(ctx context.Context, dir string, targetRate int, opts LoadOptions) (*Kit, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("%w: %v", ErrIO, err)}
	}

	byNote := make(map[byte][]fileInfo)
	for _, e := range entries {
		if e.IsDir() || e.Name() == mapping.FileName {
			continue
		}
		info, ok := parseFilename(e.Name())
		if !ok {
			continue
		}
		info.path = filepath.Join(dir, e.Name())
		byNote[info.note] = append(byNote[info.note], info)
	}

	if len(byNote) == 0 {
		return nil, []error{fmt.Errorf("%w: %s", ErrNoSamples, dir)}
	}

	layersByNote, jobs := planLayers(byNote)

	var errs []error
	var errsMu sync.Mutex
	var done atomic.Int64
	total := len(jobs)

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = max(1, runtime.GOMAXPROCS(0))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			sample, err := Decode(j.info.path, targetRate)
			if err != nil {
				errsMu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", j.info.name, err))
				errsMu.Unlock()
			} else {
				j.layer.Samples[j.slot] = sample
			}

			if opts.OnProgress != nil {
				opts.OnProgress(int(done.Add(1)), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, append(errs, err)
	}

	notes := make(map[byte]*Note, len(layersByNote))
	for note, layers := range layersByNote {
		surviving := make([]*VelocityLayer, 0, len(layers))
		for _, l := range layers {
			kept := l.Samples[:0]
			for _, s := range l.Samples {
				if s != nil {
					kept = append(kept, s)
				}
			}
			if len(kept) < len(l.Samples) {
				continue
			}
			l.Samples = kept
			surviving = append(surviving, l)
		}
		if len(surviving) == 0 {
			continue
		}
		notes[note] = &Note{Number: note, Layers: surviving}
	}

	if len(notes) == 0 {
		return nil, append(errs, ErrNoNotes)
	}

	m := mapping.ForKit(dir)
	for note, n := range notes {
		n.ChokeTargets = m.ChokeTargets(note)
	}

	name := filepath.Base(dir)
	if kitMap, ok := mapping.LoadKitFile(dir); ok && kitMap.Name != "" {
		name = kitMap.Name
	}

	return &Kit{Name: name, Notes: notes, Mapping: m}, errs
}

// planLayers groups files by note and, within a note, by velocity tier,
// assigning each tier a fixed velocity range before any decoding
// happens. Ranges depend only on how many distinct tiers a note has in
// its filenames, never on which samples later fail to decode.
func planLayers(byNote map[byte][]fileInfo) (map[byte][]*VelocityLayer, []decodeJob) {
	layersByNote := make(map[byte][]*VelocityLayer, len(byNote))
	var jobs []decodeJob

	for note, infos := range byNote {
		tierGroups := make(map[int][]fileInfo)
		for _, info := range infos {
			tierGroups[info.velocityTier] = append(tierGroups[info.velocityTier], info)
		}

		tiers := make([]int, 0, len(tierGroups))
		for t := range tierGroups {
			tiers = append(tiers, t)
		}
		sort.Ints(tiers)

		k := len(tiers)
		layers := make([]*VelocityLayer, 0, k)

		for i, tier := range tiers {
			group := tierGroups[tier]
			sort.Slice(group, func(a, b int) bool {
				if group[a].roundRobin != group[b].roundRobin {
					return group[a].roundRobin < group[b].roundRobin
				}
				return group[a].name < group[b].name
			})

			lo, hi := velocityRange(i, k)
			layer := &VelocityLayer{VLo: lo, VHi: hi, Samples: make([]*Sample, len(group))}
			layers = append(layers, layer)

			for slot, info := range group {
				jobs = append(jobs, decodeJob{layer: layer, slot: slot, info: info})
			}
		}

		layersByNote[note] = layers
	}

	return layersByNote, jobs
}
