package sifs

import (
	"time"

	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
)

// Readfile returns the full contents of the file at path.
func (v *Volume) Readfile(path string) ([]byte, error) {
	if path == "" {
		return nil, sifserrors.InvalidArgumentf("pathname must not be empty")
	}

	bm, err := v.loadBitmap()
	if err != nil {
		return nil, err
	}

	dirID, fblock, err := v.resolveFile(bm, path)
	if err != nil {
		return nil, err
	}

	_ = dirID
	data := make([]byte, 0, fblock.Length)
	remaining := fblock.Length
	id := fblock.FirstBlockID
	for remaining > 0 {
		buf, err := v.readDataBlock(id)
		if err != nil {
			return nil, err
		}
		n := remaining
		if n > v.header.BlockSize {
			n = v.header.BlockSize
		}
		data = append(data, buf[:n]...)
		remaining -= n
		id++
	}
	return data, nil
}

// Fileinfo reports the length and modification time of the file at
// path.
func (v *Volume) Fileinfo(path string) (length uint32, modTime time.Time, err error) {
	if path == "" {
		return 0, time.Time{}, sifserrors.InvalidArgumentf("pathname must not be empty")
	}

	bm, err := v.loadBitmap()
	if err != nil {
		return 0, time.Time{}, err
	}

	_, fblock, err := v.resolveFile(bm, path)
	if err != nil {
		return 0, time.Time{}, err
	}
	return fblock.Length, time.Unix(fblock.ModTime, 0), nil
}

// resolveFile resolves path to its containing directory and file
// block.
func (v *Volume) resolveFile(bm Bitmap, path string) (dirID BlockID, fblock FileBlock, err error) {
	dirpath, name, hasParent := splitPath(path)
	dirID, err = v.resolveParentDir(bm, dirpath, hasParent)
	if err != nil {
		return 0, FileBlock{}, err
	}

	dir, err := v.readDirBlock(bm, dirID)
	if err != nil {
		return 0, FileBlock{}, err
	}

	fileID, _, err := v.findFile(bm, dir, name)
	if err != nil {
		return 0, FileBlock{}, err
	}

	fblock, err = v.readFileBlock(bm, fileID)
	if err != nil {
		return 0, FileBlock{}, err
	}
	return dirID, fblock, nil
}

// Rmfile removes the directory entry for the file at path. If no
// other directory references the underlying content, the content and
// its file block are freed too (see spec's whole-file deduplication
// contract).
func (v *Volume) Rmfile(path string) error {
	if path == "" {
		return sifserrors.InvalidArgumentf("pathname must not be empty")
	}

	bm, err := v.loadBitmap()
	if err != nil {
		return err
	}

	dirpath, name, hasParent := splitPath(path)
	dirID, err := v.resolveParentDir(bm, dirpath, hasParent)
	if err != nil {
		return err
	}

	dir, err := v.readDirBlock(bm, dirID)
	if err != nil {
		return err
	}

	fileID, fileIndex, err := v.findFile(bm, dir, name)
	if err != nil {
		return err
	}

	removeFileEntry(&dir, fileID, fileIndex)
	dir.ModTime = time.Now().Unix()
	if err := v.writeDirBlock(dirID, dir); err != nil {
		return err
	}

	fblock, err := v.readFileBlock(bm, fileID)
	if err != nil {
		return err
	}

	if fblock.NFiles == 1 {
		return v.freeFileContent(bm, fileID, fblock)
	}
	return v.unlinkFileName(bm, fileID, fblock, fileIndex)
}

// freeFileContent releases a file block and its data run when no
// directory entry references it any longer.
func (v *Volume) freeFileContent(bm Bitmap, fileID BlockID, fblock FileBlock) error {
	bm[fileID] = Unused
	n := dataBlocks(fblock.Length, v.header.BlockSize)
	for id := fblock.FirstBlockID; id < fblock.FirstBlockID+BlockID(n); id++ {
		bm[id] = Unused
	}
	return v.writeBitmap(bm)
}

// unlinkFileName removes one name from a shared file block's filenames
// table, compacting the table and fixing up every other directory
// entry's fileindex that pointed past the removed slot.
func (v *Volume) unlinkFileName(bm Bitmap, fileID BlockID, fblock FileBlock, fileIndex uint32) error {
	for i := fileIndex; i < fblock.NFiles-1; i++ {
		fblock.FileNames[i] = fblock.FileNames[i+1]
	}
	fblock.FileNames[fblock.NFiles-1] = ""
	fblock.NFiles--
	if err := v.writeFileBlock(fileID, fblock); err != nil {
		return err
	}

	dirsProcessed := uint32(0)
	for id := BlockID(0); int(id) < len(bm) && dirsProcessed < fblock.NFiles; id++ {
		if bm[id] != Dir {
			continue
		}
		d, err := v.readDirBlock(bm, id)
		if err != nil {
			return err
		}
		changed := false
		for i := uint32(0); i < d.NEntries; i++ {
			if d.Entries[i].BlockID != fileID {
				continue
			}
			dirsProcessed++
			if d.Entries[i].FileIndex > fileIndex {
				d.Entries[i].FileIndex--
				changed = true
			}
		}
		if changed {
			if err := v.writeDirBlock(id, d); err != nil {
				return err
			}
		}
	}
	return nil
}
