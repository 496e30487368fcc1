// SPDX-License-Identifier: EPL-2.0

package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// FileName is the name a kit directory uses for its mapping override.
const FileName = "mapping.toml"

// NoteMapping resolves note numbers to display names and choke targets.
// A nil *NoteMapping is safe to query and reports every note as unknown
// with no choke targets.
type NoteMapping struct {
	Name   string
	Notes  map[byte]string
	Chokes map[byte][]byte
}

// DrumName returns the display name for note, or "Unknown" if the
// mapping has no entry for it.
func (m *NoteMapping) DrumName(note byte) string {
	if m == nil {
		return "Unknown"
	}
	if name, ok := m.Notes[note]; ok {
		return name
	}
	return "Unknown"
}

// ChokeTargets returns the notes that should be cut off when note
// sounds. The returned slice must not be mutated by the caller.
func (m *NoteMapping) ChokeTargets(note byte) []byte {
	if m == nil {
		return nil
	}
	return m.Chokes[note]
}

// Merge layers override on top of m, returning a new mapping. Override
// entries win on conflict; m's entries survive where override is silent.
// A non-empty override.Name replaces m.Name.
func (m *NoteMapping) Merge(override *NoteMapping) *NoteMapping {
	if m == nil {
		m = &NoteMapping{}
	}
	merged := &NoteMapping{
		Name:   m.Name,
		Notes:  make(map[byte]string, len(m.Notes)+len(override.Notes)),
		Chokes: make(map[byte][]byte, len(m.Chokes)+len(override.Chokes)),
	}
	for k, v := range m.Notes {
		merged.Notes[k] = v
	}
	for k, v := range m.Chokes {
		merged.Chokes[k] = v
	}
	if override == nil {
		return merged
	}
	if override.Name != "" {
		merged.Name = override.Name
	}
	for k, v := range override.Notes {
		merged.Notes[k] = v
	}
	for k, v := range override.Chokes {
		merged.Chokes[k] = v
	}
	return merged
}

// rawMapping is the TOML wire schema: notes and chokes are keyed by
// decimal note number since TOML table keys are strings.
type rawMapping struct {
	Name   string              `toml:"name"`
	Notes  map[string]string   `toml:"notes"`
	Chokes map[string][]int    `toml:"chokes"`
}

// Parse decodes a mapping.toml document. Note and choke keys that are not
// valid MIDI note numbers (0-127) are dropped rather than treated as a
// parse failure.
func Parse(data []byte) (*NoteMapping, error) {
	var raw rawMapping
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	notes := make(map[byte]string, len(raw.Notes))
	for key, name := range raw.Notes {
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 || n > 127 {
			continue
		}
		notes[byte(n)] = name
	}

	chokes := make(map[byte][]byte, len(raw.Chokes))
	for key, targets := range raw.Chokes {
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 || n > 127 {
			continue
		}
		filtered := make([]byte, 0, len(targets))
		for _, t := range targets {
			if t < 0 || t > 127 {
				continue
			}
			filtered = append(filtered, byte(t))
		}
		chokes[byte(n)] = filtered
	}

	return &NoteMapping{Name: raw.Name, Notes: notes, Chokes: chokes}, nil
}

// LoadKitFile reads and parses dir's mapping.toml, if any. A missing file
// or a parse failure both report ok == false; a mapping override is
// optional, so neither is fatal to the caller.
func LoadKitFile(dir string) (m *NoteMapping, ok bool) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, false
	}
	m, err = Parse(data)
	if err != nil {
		return nil, false
	}
	return m, true
}

// ForKit returns the effective mapping for a kit directory: the General
// MIDI default, merged with the kit's own mapping.toml if present.
func ForKit(dir string) *NoteMapping {
	base := Default()
	if kitMap, ok := LoadKitFile(dir); ok {
		return base.Merge(kitMap)
	}
	return base
}
