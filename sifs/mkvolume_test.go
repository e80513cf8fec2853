package sifs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMkvolumeThenOpen(t *testing.T) {
	name := filepath.Join(t.TempDir(), "vol.sifs")
	if err := Mkvolume(name, 1024, 64); err != nil {
		t.Fatalf("Mkvolume: %v", err)
	}

	v, err := Open(name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer v.Close()

	if v.header.BlockSize != 1024 || v.header.NBlocks != 64 {
		t.Fatalf("header = %+v, want blocksize=1024 nblocks=64", v.header)
	}

	bm, err := v.loadBitmap()
	if err != nil {
		t.Fatalf("loadBitmap: %v", err)
	}
	if bm[RootBlockID] != Dir {
		t.Errorf("bitmap[root] = %q, want Dir", bm[RootBlockID])
	}
	for i := 1; i < len(bm); i++ {
		if bm[i] != Unused {
			t.Errorf("bitmap[%d] = %q, want Unused", i, bm[i])
		}
	}

	root, err := v.readDirBlock(bm, RootBlockID)
	if err != nil {
		t.Fatalf("readDirBlock(root): %v", err)
	}
	if root.NEntries != 0 {
		t.Errorf("root.NEntries = %d, want 0", root.NEntries)
	}

	info, err := os.Stat(name)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if got, want := info.Size(), v.header.fileSize(); got != want {
		t.Errorf("volume file size = %d, want %d", got, want)
	}
}

func TestMkvolumeRejectsUndersizedBlocksize(t *testing.T) {
	name := filepath.Join(t.TempDir(), "vol.sifs")
	err := Mkvolume(name, 16, 64)
	if err == nil {
		t.Fatal("Mkvolume: expected error for undersized blocksize")
	}
}

func TestMkvolumeUsesDefaultsWhenZero(t *testing.T) {
	name := filepath.Join(t.TempDir(), "vol.sifs")
	if err := Mkvolume(name, 0, 0); err != nil {
		t.Fatalf("Mkvolume: %v", err)
	}
	v, err := Open(name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer v.Close()
	if v.header.BlockSize != DefaultBlockSize || v.header.NBlocks != DefaultNBlocks {
		t.Errorf("header = %+v, want defaults %d/%d", v.header, DefaultBlockSize, DefaultNBlocks)
	}
}

func TestOpenRejectsGarbageFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "garbage.sifs")
	if err := os.WriteFile(name, []byte("not a volume"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Open(name); err == nil {
		t.Fatal("Open: expected error for garbage file")
	}
}
