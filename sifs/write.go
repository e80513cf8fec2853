package sifs

import (
	"time"

	"github.com/junnys6018/SIFS/sifs/digest"
	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
)

// Writefile adds a copy of data to the volume at path, deduplicating
// against any existing file with identical content (see spec's
// whole-file content-addressed dedup contract).
func (v *Volume) Writefile(path string, data []byte) error {
	if path == "" {
		return sifserrors.InvalidArgumentf("pathname must not be empty")
	}
	if len(data) == 0 {
		return sifserrors.InvalidArgumentf("data must not be empty")
	}

	dirpath, name, hasParent := splitPath(path)
	if len(name) >= MaxNameLength {
		return sifserrors.InvalidArgumentf("filename %q exceeds %d bytes", name, MaxNameLength-1)
	}

	bm, err := v.loadBitmap()
	if err != nil {
		return err
	}

	dirID, err := v.resolveParentDir(bm, dirpath, hasParent)
	if err != nil {
		return err
	}
	dir, err := v.readDirBlock(bm, dirID)
	if err != nil {
		return err
	}

	if dir.NEntries == MaxEntries {
		return sifserrors.MaxEntriesf("directory is full (%d entries)", MaxEntries)
	}
	if err := v.checkNameFree(bm, dir, name); err != nil {
		return err
	}

	sum := digest.Sum(data)
	fileID, fblock, found, err := v.findByDigest(bm, sum)
	if err != nil {
		return err
	}

	now := time.Now()
	var fileIndex uint32

	if found {
		if fblock.NFiles == MaxEntries {
			return sifserrors.MaxEntriesf("file's name table is full (%d names)", MaxEntries)
		}
		fileIndex = fblock.NFiles
		fblock.FileNames[fileIndex] = name
		fblock.NFiles++
	} else {
		fileID, fblock, err = v.allocateFile(bm, sum, data, now)
		if err != nil {
			return err
		}
		fileIndex = 0
		fblock.FileNames[0] = name
		fblock.NFiles = 1
	}

	if err := v.writeFileBlock(fileID, fblock); err != nil {
		return err
	}

	dir.Entries[dir.NEntries] = DirEntry{BlockID: fileID, FileIndex: fileIndex}
	dir.NEntries++
	dir.ModTime = now.Unix()
	return v.writeDirBlock(dirID, dir)
}

// findByDigest scans every file block for one whose content digest
// matches sum.
func (v *Volume) findByDigest(bm Bitmap, sum digest.Digest) (BlockID, FileBlock, bool, error) {
	for id, k := range bm {
		if k != File {
			continue
		}
		fblock, err := v.readFileBlock(bm, BlockID(id))
		if err != nil {
			return 0, FileBlock{}, false, err
		}
		if fblock.Digest == [DigestByteLen]byte(sum) {
			return BlockID(id), fblock, true, nil
		}
	}
	return 0, FileBlock{}, false, nil
}

// allocateFile finds a free metadata cell and a contiguous free run of
// data cells for data, writes data to the run, and returns a populated
// FileBlock (not yet written). bm is mutated in place to reflect the
// new allocation and is persisted via writeBitmap before the data is
// written; the file block and directory writes are left to the caller.
//
// The metadata cell is marked File in bm immediately upon selection,
// before the data-run scan begins, so a single-block file's own
// metadata cell can never be mistaken for part of its data run.
func (v *Volume) allocateFile(bm Bitmap, sum digest.Digest, data []byte, now time.Time) (BlockID, FileBlock, error) {
	metaID, ok := firstUnused(bm, 0)
	if !ok {
		return 0, FileBlock{}, sifserrors.OutOfSpacef("no free block for file metadata")
	}
	bm[metaID] = File

	nblocks := dataBlocks(uint32(len(data)), v.header.BlockSize)
	firstBlockID, ok := firstFreeRun(bm, metaID+1, nblocks)
	if !ok {
		return 0, FileBlock{}, sifserrors.OutOfSpacef("no contiguous run of %d free blocks", nblocks)
	}

	for id := firstBlockID; id < firstBlockID+BlockID(nblocks); id++ {
		bm[id] = DataBlock
	}
	if err := v.writeBitmap(bm); err != nil {
		return 0, FileBlock{}, err
	}

	if err := v.writeFileData(firstBlockID, data); err != nil {
		return 0, FileBlock{}, err
	}

	fblock := FileBlock{
		ModTime:      now.Unix(),
		Length:       uint32(len(data)),
		Digest:       [DigestByteLen]byte(sum),
		FirstBlockID: firstBlockID,
	}
	return metaID, fblock, nil
}

// writeFileData writes data across consecutive blocks starting at
// firstBlockID.
func (v *Volume) writeFileData(firstBlockID BlockID, data []byte) error {
	blocksize := int(v.header.BlockSize)
	id := firstBlockID
	for off := 0; off < len(data); off += blocksize {
		end := off + blocksize
		if end > len(data) {
			end = len(data)
		}
		if err := v.writeDataBlock(id, data[off:end]); err != nil {
			return err
		}
		id++
	}
	return nil
}

// firstUnused returns the BlockID of the first Unused cell at or after
// start.
func firstUnused(bm Bitmap, start BlockID) (BlockID, bool) {
	for i := int(start); i < len(bm); i++ {
		if bm[i] == Unused {
			return BlockID(i), true
		}
	}
	return 0, false
}

// firstFreeRun returns the first BlockID at or after start beginning a
// contiguous run of at least n Unused cells.
func firstFreeRun(bm Bitmap, start BlockID, n uint32) (BlockID, bool) {
	run := uint32(0)
	for i := int(start); i < len(bm); i++ {
		if bm[i] == Unused {
			run++
		} else {
			run = 0
		}
		if run == n {
			return BlockID(i+1) - BlockID(n), true
		}
	}
	return 0, false
}
