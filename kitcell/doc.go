// SPDX-License-Identifier: EPL-2.0

// Package kitcell holds the single hot-swappable pointer to the active
// kit.Kit. The audio thread calls Load on every callback; a reload
// coordinator calls Store once a new kit has finished decoding off-
// thread. Both operations are wait-free.
package kitcell
