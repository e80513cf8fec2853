package sifs

import (
	"encoding/binary"
	"fmt"
)

// DirEntry is one entry in a directory's entry table: a pointer to a
// child block, plus the index into that child's filenames table when
// the child is a file block (meaningless when the child is a
// directory).
type DirEntry struct {
	BlockID   BlockID
	FileIndex uint32
}

// dirBlockEncodedLen is the fixed on-disk size of a DirBlock, before
// padding out to the volume's blocksize.
const dirBlockEncodedLen = MaxNameLength + 8 + 4 + MaxEntries*8

// DirBlock is the in-memory representation of a directory block.
type DirBlock struct {
	Name     string
	ModTime  int64
	NEntries uint32
	Entries  [MaxEntries]DirEntry
}

// toBytes marshals a DirBlock to its fixed-length encoded form.
func (d DirBlock) toBytes() ([]byte, error) {
	if len(d.Name) >= MaxNameLength {
		return nil, fmt.Errorf("directory name %q exceeds %d bytes", d.Name, MaxNameLength-1)
	}
	buf := make([]byte, dirBlockEncodedLen)
	copy(buf[0:MaxNameLength], d.Name)
	binary.LittleEndian.PutUint64(buf[MaxNameLength:MaxNameLength+8], uint64(d.ModTime))
	binary.LittleEndian.PutUint32(buf[MaxNameLength+8:MaxNameLength+12], d.NEntries)
	off := MaxNameLength + 12
	for _, e := range d.Entries {
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(e.BlockID))
		binary.LittleEndian.PutUint32(buf[off+4:off+8], e.FileIndex)
		off += 8
	}
	return buf, nil
}

// dirBlockFromBytes unmarshals a DirBlock from its fixed-length encoded
// form.
func dirBlockFromBytes(buf []byte) (DirBlock, error) {
	if len(buf) < dirBlockEncodedLen {
		return DirBlock{}, fmt.Errorf("dir block: expected at least %d bytes, got %d", dirBlockEncodedLen, len(buf))
	}
	var d DirBlock
	d.Name = cStringFromBytes(buf[0:MaxNameLength])
	d.ModTime = int64(binary.LittleEndian.Uint64(buf[MaxNameLength : MaxNameLength+8]))
	d.NEntries = binary.LittleEndian.Uint32(buf[MaxNameLength+8 : MaxNameLength+12])
	off := MaxNameLength + 12
	for i := range d.Entries {
		d.Entries[i].BlockID = BlockID(binary.LittleEndian.Uint32(buf[off : off+4]))
		d.Entries[i].FileIndex = binary.LittleEndian.Uint32(buf[off+4 : off+8])
		off += 8
	}
	return d, nil
}

// fileBlockEncodedLen is the fixed on-disk size of a FileBlock, before
// padding out to the volume's blocksize.
const fileBlockEncodedLen = 8 + 4 + DigestByteLen + 4 + 4 + MaxEntries*MaxNameLength

// FileBlock is the in-memory representation of a file's metadata
// block: length, digest, start of its data run, and the shared
// filenames table (one name per referencing directory entry).
type FileBlock struct {
	ModTime      int64
	Length       uint32
	Digest       [DigestByteLen]byte
	FirstBlockID BlockID
	NFiles       uint32
	FileNames    [MaxEntries]string
}

// toBytes marshals a FileBlock to its fixed-length encoded form.
func (f FileBlock) toBytes() ([]byte, error) {
	for _, name := range f.FileNames {
		if len(name) >= MaxNameLength {
			return nil, fmt.Errorf("filename %q exceeds %d bytes", name, MaxNameLength-1)
		}
	}
	buf := make([]byte, fileBlockEncodedLen)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(f.ModTime))
	binary.LittleEndian.PutUint32(buf[8:12], f.Length)
	copy(buf[12:12+DigestByteLen], f.Digest[:])
	off := 12 + DigestByteLen
	binary.LittleEndian.PutUint32(buf[off:off+4], uint32(f.FirstBlockID))
	binary.LittleEndian.PutUint32(buf[off+4:off+8], f.NFiles)
	off += 8
	for _, name := range f.FileNames {
		copy(buf[off:off+MaxNameLength], name)
		off += MaxNameLength
	}
	return buf, nil
}

// fileBlockFromBytes unmarshals a FileBlock from its fixed-length
// encoded form.
func fileBlockFromBytes(buf []byte) (FileBlock, error) {
	if len(buf) < fileBlockEncodedLen {
		return FileBlock{}, fmt.Errorf("file block: expected at least %d bytes, got %d", fileBlockEncodedLen, len(buf))
	}
	var f FileBlock
	f.ModTime = int64(binary.LittleEndian.Uint64(buf[0:8]))
	f.Length = binary.LittleEndian.Uint32(buf[8:12])
	copy(f.Digest[:], buf[12:12+DigestByteLen])
	off := 12 + DigestByteLen
	f.FirstBlockID = BlockID(binary.LittleEndian.Uint32(buf[off : off+4]))
	f.NFiles = binary.LittleEndian.Uint32(buf[off+4 : off+8])
	off += 8
	for i := range f.FileNames {
		f.FileNames[i] = cStringFromBytes(buf[off : off+MaxNameLength])
		off += MaxNameLength
	}
	return f, nil
}

// dataBlocks returns the number of DataBlock cells a file of the given
// length occupies, rounding up.
func dataBlocks(length uint32, blocksize uint32) uint32 {
	return (length + blocksize - 1) / blocksize
}

// cStringFromBytes returns the NUL-terminated string stored in buf, or
// the whole buffer if it contains no NUL.
func cStringFromBytes(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
