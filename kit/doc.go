// SPDX-License-Identifier: EPL-2.0

// Package kit loads a directory of sample files into an immutable Kit
// ready to be handed to a kitcell.Cell.
//
// Filenames follow a small grammar: "<note>[_v<tier>][_rr<index>].<ext>",
// e.g. "38_v2_rr1.wav" for note 38, velocity tier 2, round-robin slot 1.
// Files that don't match are silently ignored. Within a note, distinct
// velocity tiers partition the 1-127 MIDI velocity range into that many
// equal (as equal as integer division allows) contiguous bands, ordered
// by tier number; round-robin slots within a tier are selected in
// rotation at trigger time.
//
// Decoding runs concurrently across files (bounded by LoadOptions,
// grounded on golang.org/x/sync/errgroup) and format detection sniffs
// each file's own header rather than trusting its extension.
package kit
