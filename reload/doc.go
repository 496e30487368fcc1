// SPDX-License-Identifier: EPL-2.0

// Package reload coordinates rebuilding a kit.Kit from disk and
// publishing it to a kitcell.Cell without ever blocking the audio
// thread.
//
// Notify is meant to be called from a filesystem watcher (see
// cmd/drumcored, which wires github.com/fsnotify/fsnotify to it); rapid
// bursts of filesystem events are debounced into a single rebuild.
// Manual triggers a rebuild immediately, bypassing the debounce, for a
// user-initiated "reload now" action.
package reload
