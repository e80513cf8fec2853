package sifs

import (
	"path/filepath"
	"testing"
)

// newTestVolume creates a fresh volume in a temporary directory and
// opens it, registering cleanup with t.
func newTestVolume(t *testing.T, blocksize, nblocks uint32) *Volume {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.sifs")
	if err := Mkvolume(name, blocksize, nblocks); err != nil {
		t.Fatalf("Mkvolume: %v", err)
	}
	v, err := Open(name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { v.Close() })
	return v
}
