// Package cache provides a content-hash debounce guard for run --watch.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// WatchGuard remembers the last-seen hash of each watched file so the
// CLI's --watch mode can skip a re-run when an editor's save emits more
// than one filesystem event for what is, content-wise, the same write.
// It is purely in-memory: unlike a build cache there is no compiled
// artifact here to persist across process restarts, only a debounce
// decision that only matters within one long-lived watch session.
type WatchGuard struct {
	hashes map[string]string
}

// New creates an empty WatchGuard.
func New() *WatchGuard {
	return &WatchGuard{hashes: make(map[string]string)}
}

// Changed reports whether srcPath's current on-disk content differs from
// the last hash recorded for it, and records the new hash either way. A
// path seen for the first time always reports changed.
func (g *WatchGuard) Changed(srcPath string) (bool, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return true, err
	}

	sum := sha256.Sum256(data)
	current := hex.EncodeToString(sum[:])

	prev, seen := g.hashes[srcPath]
	g.hashes[srcPath] = current
	return !seen || prev != current, nil
}

// Forget removes any recorded hash for srcPath, so the next Changed call
// for it reports true unconditionally.
func (g *WatchGuard) Forget(srcPath string) {
	delete(g.hashes, srcPath)
}
