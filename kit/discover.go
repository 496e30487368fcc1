// SPDX-License-Identifier: EPL-2.0

package kit

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoveredKit is a candidate kit directory found by Discover, before
// any sample has been decoded.
type DiscoveredKit struct {
	Name      string
	Path      string
	FileCount int
}

// Discover lists immediate subdirectories of root that contain at least
// one filename matching the sample grammar, sorted case-insensitively by
// name. It never decodes a sample; FileCount only counts filename
// matches.
func Discover(root string) []DiscoveredKit {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var found []DiscoveredKit
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(root, e.Name())
		count := countSampleFiles(path)
		if count == 0 {
			continue
		}
		found = append(found, DiscoveredKit{Name: e.Name(), Path: path, FileCount: count})
	}

	sort.Slice(found, func(i, j int) bool {
		return strings.ToLower(found[i].Name) < strings.ToLower(found[j].Name)
	})
	return found
}

func countSampleFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := parseFilename(e.Name()); ok {
			count++
		}
	}
	return count
}
