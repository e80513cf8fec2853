package sifs

import (
	"bytes"
	"testing"

	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
)

func TestWritefileThenReadfileRoundtrip(t *testing.T) {
	v := newTestVolume(t, 1024, 64)
	content := []byte("the quick brown fox jumps over the lazy dog")

	if err := v.Writefile("fox.txt", content); err != nil {
		t.Fatalf("Writefile: %v", err)
	}

	got, err := v.Readfile("fox.txt")
	if err != nil {
		t.Fatalf("Readfile: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("Readfile = %q, want %q", got, content)
	}

	length, _, err := v.Fileinfo("fox.txt")
	if err != nil {
		t.Fatalf("Fileinfo: %v", err)
	}
	if length != uint32(len(content)) {
		t.Errorf("Fileinfo length = %d, want %d", length, len(content))
	}
}

func TestWritefileMultiBlockRoundtrip(t *testing.T) {
	v := newTestVolume(t, 600, 64)
	content := bytes.Repeat([]byte("0123456789"), 200) // spans multiple 600-byte blocks

	if err := v.Writefile("big.bin", content); err != nil {
		t.Fatalf("Writefile: %v", err)
	}
	got, err := v.Readfile("big.bin")
	if err != nil {
		t.Fatalf("Readfile: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("Readfile returned %d bytes, want %d matching original", len(got), len(content))
	}
}

func TestWritefileDeduplicatesIdenticalContent(t *testing.T) {
	v := newTestVolume(t, 1024, 64)
	content := []byte("shared payload")

	if err := v.Writefile("a.txt", content); err != nil {
		t.Fatalf("Writefile(a.txt): %v", err)
	}
	if err := v.Writefile("b.txt", content); err != nil {
		t.Fatalf("Writefile(b.txt): %v", err)
	}

	bm, err := v.loadBitmap()
	if err != nil {
		t.Fatalf("loadBitmap: %v", err)
	}
	fileBlocks := 0
	for _, k := range bm {
		if k == File {
			fileBlocks++
		}
	}
	if fileBlocks != 1 {
		t.Fatalf("fileBlocks = %d, want exactly 1 (deduplicated)", fileBlocks)
	}

	gotA, err := v.Readfile("a.txt")
	if err != nil {
		t.Fatalf("Readfile(a.txt): %v", err)
	}
	gotB, err := v.Readfile("b.txt")
	if err != nil {
		t.Fatalf("Readfile(b.txt): %v", err)
	}
	if !bytes.Equal(gotA, content) || !bytes.Equal(gotB, content) {
		t.Fatalf("deduplicated reads = %q / %q, want both %q", gotA, gotB, content)
	}
}

func TestRmfileOnSharedContentKeepsData(t *testing.T) {
	v := newTestVolume(t, 1024, 64)
	content := []byte("shared payload")

	if err := v.Writefile("a.txt", content); err != nil {
		t.Fatalf("Writefile(a.txt): %v", err)
	}
	if err := v.Writefile("b.txt", content); err != nil {
		t.Fatalf("Writefile(b.txt): %v", err)
	}
	if err := v.Rmfile("a.txt"); err != nil {
		t.Fatalf("Rmfile(a.txt): %v", err)
	}

	if _, err := v.Readfile("a.txt"); !sifserrors.IsNotFound(err) {
		t.Fatalf("Readfile(a.txt) after rmfile: err = %v, want ENOENT", err)
	}

	got, err := v.Readfile("b.txt")
	if err != nil {
		t.Fatalf("Readfile(b.txt): %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("Readfile(b.txt) = %q, want %q (data must survive while still referenced)", got, content)
	}
}

func TestRmfileOnSharedContentRemovesCorrectEntry(t *testing.T) {
	v := newTestVolume(t, 1024, 64)
	content := []byte("shared payload")

	if err := v.Writefile("a.txt", content); err != nil {
		t.Fatalf("Writefile(a.txt): %v", err)
	}
	if err := v.Writefile("b.txt", content); err != nil {
		t.Fatalf("Writefile(b.txt): %v", err)
	}

	// a.txt and b.txt dedup to one file block, so their root directory
	// entries share a BlockID and differ only by FileIndex. Removing
	// the second-added name first regression-tests that removal
	// matches the specific entry findFile resolved, not just the
	// BlockID.
	if err := v.Rmfile("b.txt"); err != nil {
		t.Fatalf("Rmfile(b.txt): %v", err)
	}

	if _, err := v.Readfile("b.txt"); !sifserrors.IsNotFound(err) {
		t.Fatalf("Readfile(b.txt) after rmfile: err = %v, want ENOENT", err)
	}

	got, err := v.Readfile("a.txt")
	if err != nil {
		t.Fatalf("Readfile(a.txt): %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("Readfile(a.txt) = %q, want %q (data must survive while still referenced)", got, content)
	}
}

func TestRmfileLastReferenceFreesBlocks(t *testing.T) {
	v := newTestVolume(t, 1024, 64)
	content := []byte("solo payload")

	if err := v.Writefile("solo.txt", content); err != nil {
		t.Fatalf("Writefile: %v", err)
	}
	if err := v.Rmfile("solo.txt"); err != nil {
		t.Fatalf("Rmfile: %v", err)
	}

	bm, err := v.loadBitmap()
	if err != nil {
		t.Fatalf("loadBitmap: %v", err)
	}
	for i, k := range bm {
		if i != int(RootBlockID) && k != Unused {
			t.Errorf("bitmap[%d] = %q after last rmfile, want Unused", i, k)
		}
	}
}

func TestWritefileRejectsDuplicateName(t *testing.T) {
	v := newTestVolume(t, 1024, 64)
	if err := v.Writefile("f.txt", []byte("one")); err != nil {
		t.Fatalf("Writefile: %v", err)
	}
	err := v.Writefile("f.txt", []byte("two"))
	if !sifserrors.IsAlreadyExists(err) {
		t.Fatalf("Writefile duplicate name: err = %v, want EEXIST", err)
	}
}

func TestReadfileRejectsDirectoryPath(t *testing.T) {
	v := newTestVolume(t, 1024, 64)
	if err := v.Mkdir("docs"); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	_, err := v.Readfile("docs")
	if !sifserrors.IsNotFile(err) {
		t.Fatalf("Readfile(docs): err = %v, want ENOTFILE", err)
	}
}
