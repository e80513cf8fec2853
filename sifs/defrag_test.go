package sifs

import (
	"bytes"
	"testing"
)

// TestDefragCompactsAndPreservesContent exercises dir, file, and data
// block relocation together: create and delete directories/files to
// punch holes, defrag, and check every surviving path still resolves
// to the same content.
func TestDefragCompactsAndPreservesContent(t *testing.T) {
	v := newTestVolume(t, 600, 16)

	if err := v.Mkdir("keep1"); err != nil {
		t.Fatalf("Mkdir(keep1): %v", err)
	}
	if err := v.Writefile("gone.bin", []byte("temporary")); err != nil {
		t.Fatalf("Writefile(gone.bin): %v", err)
	}
	if err := v.Mkdir("keep2"); err != nil {
		t.Fatalf("Mkdir(keep2): %v", err)
	}
	content := bytes.Repeat([]byte("y"), 900) // spans 2 data blocks at blocksize 600
	if err := v.Writefile("keep.bin", content); err != nil {
		t.Fatalf("Writefile(keep.bin): %v", err)
	}

	if err := v.Rmfile("gone.bin"); err != nil {
		t.Fatalf("Rmfile(gone.bin): %v", err)
	}

	if err := v.Defrag(); err != nil {
		t.Fatalf("Defrag: %v", err)
	}

	entries, _, err := v.Dirinfo("")
	if err != nil {
		t.Fatalf("Dirinfo: %v", err)
	}
	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name] = true
	}
	for _, want := range []string{"keep1", "keep2", "keep.bin"} {
		if !names[want] {
			t.Errorf("root entries after defrag = %+v, missing %q", entries, want)
		}
	}

	got, err := v.Readfile("keep.bin")
	if err != nil {
		t.Fatalf("Readfile(keep.bin) after defrag: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("Readfile(keep.bin) after defrag = %d bytes, want %d matching original", len(got), len(content))
	}

	if _, _, err := v.Dirinfo("keep1"); err != nil {
		t.Fatalf("Dirinfo(keep1) after defrag: %v", err)
	}
	if _, _, err := v.Dirinfo("keep2"); err != nil {
		t.Fatalf("Dirinfo(keep2) after defrag: %v", err)
	}

	bm, err := v.loadBitmap()
	if err != nil {
		t.Fatalf("loadBitmap: %v", err)
	}
	maxUsed := 0
	for i, k := range bm {
		if k != Unused {
			maxUsed = i
		}
	}
	// 1 root + keep1 + keep2 + file metadata block + 2 data blocks = 6 used blocks (indices 0..5).
	if maxUsed != 5 {
		t.Errorf("highest used block index after defrag = %d, want 5", maxUsed)
	}
}

func TestDefragFixesUpSharedFileBackpointers(t *testing.T) {
	v := newTestVolume(t, 1024, 16)
	content := []byte("shared")

	if err := v.Mkdir("hole"); err != nil {
		t.Fatalf("Mkdir(hole): %v", err)
	}
	if err := v.Writefile("a.txt", content); err != nil {
		t.Fatalf("Writefile(a.txt): %v", err)
	}
	if err := v.Writefile("b.txt", content); err != nil {
		t.Fatalf("Writefile(b.txt): %v", err)
	}
	if err := v.Rmdir("hole"); err != nil {
		t.Fatalf("Rmdir(hole): %v", err)
	}

	if err := v.Defrag(); err != nil {
		t.Fatalf("Defrag: %v", err)
	}

	gotA, err := v.Readfile("a.txt")
	if err != nil {
		t.Fatalf("Readfile(a.txt) after defrag: %v", err)
	}
	gotB, err := v.Readfile("b.txt")
	if err != nil {
		t.Fatalf("Readfile(b.txt) after defrag: %v", err)
	}
	if !bytes.Equal(gotA, content) || !bytes.Equal(gotB, content) {
		t.Fatalf("shared file reads after defrag = %q / %q, want both %q", gotA, gotB, content)
	}
}
