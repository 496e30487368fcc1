// SPDX-License-Identifier: EPL-2.0

// Package mapping resolves MIDI note numbers to human-readable drum names
// and choke-group targets.
//
// A mapping is a display name, a note-number-to-label table, and a table
// of choke targets (which notes should be cut off when a given note
// sounds). Two built-in mappings are compiled in via go:embed: General
// MIDI and the Alesis Nitro Max vendor layout. A kit directory may supply
// its own mapping.toml, which is merged on top of the General MIDI
// defaults: an override wins per note, per choke entry, and for the kit
// display name.
package mapping
