package fs

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// SnapshotStore archives raw fetched HTML so a page can be re-extracted
// later without another network round trip. Snapshots are content-addressed:
// fetching the same bytes twice overwrites the same file.
type SnapshotStore struct {
	baseDir string
}

// NewSnapshotStore creates a SnapshotStore rooted at baseDir.
// The directory is created on first Save.
func NewSnapshotStore(baseDir string) *SnapshotStore {
	return &SnapshotStore{baseDir: baseDir}
}

// Save writes html under a name derived from its xxHash and returns the
// full path of the written file.
func (s *SnapshotStore) Save(ctx context.Context, html string) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(s.baseDir, fmt.Sprintf("%s.html", hashString(html)))
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// hashString computes the xxHash of s and returns it as a hex string.
func hashString(s string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(s))
	return hex.EncodeToString(b[:])
}
