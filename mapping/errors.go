// SPDX-License-Identifier: EPL-2.0

package mapping

import "errors"

// ErrMalformed is returned when a mapping.toml file cannot be parsed as TOML.
var ErrMalformed = errors.New("mapping: malformed mapping file")
