// SPDX-License-Identifier: EPL-2.0

package kit

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// filenamePattern matches "<note>[_v<tier>][_rr<index>]" against a
// filename stem (extension already stripped). Tier and round-robin index
// default to 1 when absent.
var filenamePattern = regexp.MustCompile(`^(\d+)(?:_v(\d+))?(?:_rr(\d+))?$`)

// supportedExtensions maps a lower-cased extension (without the dot) to
// the decoder format key it is a hint for.
var supportedExtensions = map[string]string{
	"wav":  "wav",
	"mp3":  "mp3",
	"ogg":  "ogg",
	"aiff": "aiff",
	"aif":  "aiff",
}

// fileInfo is a single sample filename parsed against the grammar.
type fileInfo struct {
	note         byte
	velocityTier int
	roundRobin   int
	path         string
	name         string
}

// parseFilename parses name against the sample grammar. It reports ok ==
// false for any name that is not a candidate sample (wrong extension,
// malformed stem, or a note number outside 0-127); such names are
// silently skipped by the caller rather than treated as errors.
func parseFilename(name string) (fileInfo, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if _, ok := supportedExtensions[ext]; !ok {
		return fileInfo{}, false
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	m := filenamePattern.FindStringSubmatch(stem)
	if m == nil {
		return fileInfo{}, false
	}

	note, err := strconv.Atoi(m[1])
	if err != nil || note < 0 || note > 127 {
		return fileInfo{}, false
	}

	velocityTier := 1
	if m[2] != "" {
		v, err := strconv.Atoi(m[2])
		if err != nil || v < 1 {
			return fileInfo{}, false
		}
		velocityTier = v
	}

	roundRobin := 1
	if m[3] != "" {
		r, err := strconv.Atoi(m[3])
		if err != nil || r < 1 {
			return fileInfo{}, false
		}
		roundRobin = r
	}

	return fileInfo{
		note:         byte(note),
		velocityTier: velocityTier,
		roundRobin:   roundRobin,
		name:         name,
	}, true
}
