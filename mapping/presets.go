// SPDX-License-Identifier: EPL-2.0

package mapping

import (
	_ "embed"
	"fmt"
)

//go:embed presets/general-midi.toml
var generalMIDIPreset []byte

//go:embed presets/alesis-nitro-max.toml
var alesisNitroMaxPreset []byte

// Default returns the General MIDI mapping compiled into the binary.
func Default() *NoteMapping {
	m, err := Parse(generalMIDIPreset)
	if err != nil {
		// The embedded preset is authored alongside this package; a
		// parse failure here means the preset itself is broken.
		panic(fmt.Sprintf("mapping: embedded general-midi.toml is invalid: %v", err))
	}
	return m
}

// BuiltIns returns every mapping compiled into the binary, General MIDI
// first.
func BuiltIns() []*NoteMapping {
	out := []*NoteMapping{Default()}
	if alesis, err := Parse(alesisNitroMaxPreset); err == nil {
		out = append(out, alesis)
	}
	return out
}
