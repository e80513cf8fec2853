package sifs

import (
	"time"

	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
)

// DirEntryInfo describes one entry returned by Dirinfo: a name plus
// the kind of block it resolves to.
type DirEntryInfo struct {
	Name string
	Kind Kind
}

// Dirinfo reports the entries and modification time of the directory
// at path. An empty path refers to the root directory.
func (v *Volume) Dirinfo(path string) (entries []DirEntryInfo, modTime time.Time, err error) {
	bm, err := v.loadBitmap()
	if err != nil {
		return nil, time.Time{}, err
	}

	dirID := RootBlockID
	if path != "" {
		dirID, err = v.findDir(bm, RootBlockID, path)
		if err != nil {
			return nil, time.Time{}, err
		}
	}

	dir, err := v.readDirBlock(bm, dirID)
	if err != nil {
		return nil, time.Time{}, err
	}

	entries = make([]DirEntryInfo, dir.NEntries)
	for i := uint32(0); i < dir.NEntries; i++ {
		kind, name, err := v.entryKind(bm, dir.Entries[i])
		if err != nil {
			return nil, time.Time{}, err
		}
		entries[i] = DirEntryInfo{Name: name, Kind: kind}
	}

	return entries, time.Unix(dir.ModTime, 0), nil
}

// Mkdir creates a new, empty directory at path. The parent directory
// (everything before the final '/') must already exist.
func (v *Volume) Mkdir(path string) error {
	if path == "" {
		return sifserrors.InvalidArgumentf("dirname must not be empty")
	}
	dirpath, name, hasParent := splitPath(path)
	if len(name) >= MaxNameLength {
		return sifserrors.InvalidArgumentf("directory name %q exceeds %d bytes", name, MaxNameLength-1)
	}

	bm, err := v.loadBitmap()
	if err != nil {
		return err
	}

	parentID, err := v.resolveParentDir(bm, dirpath, hasParent)
	if err != nil {
		return err
	}

	parent, err := v.readDirBlock(bm, parentID)
	if err != nil {
		return err
	}

	if parent.NEntries == MaxEntries {
		return sifserrors.MaxEntriesf("directory is full (%d entries)", MaxEntries)
	}

	if err := v.checkNameFree(bm, parent, name); err != nil {
		return err
	}

	childID, err := v.allocateBlock(bm)
	if err != nil {
		return err
	}
	bm[childID] = Dir
	if err := v.writeBitmap(bm); err != nil {
		return err
	}

	now := time.Now()
	parent.Entries[parent.NEntries] = DirEntry{BlockID: childID}
	parent.NEntries++
	parent.ModTime = now.Unix()
	if err := v.writeDirBlock(parentID, parent); err != nil {
		return err
	}

	child := DirBlock{Name: name, ModTime: now.Unix(), NEntries: 0}
	return v.writeDirBlock(childID, child)
}

// Rmdir removes the empty directory at path.
func (v *Volume) Rmdir(path string) error {
	if path == "" {
		return sifserrors.InvalidArgumentf("dirname must not be empty")
	}

	bm, err := v.loadBitmap()
	if err != nil {
		return err
	}

	childID, err := v.findDir(bm, RootBlockID, path)
	if err != nil {
		return err
	}

	child, err := v.readDirBlock(bm, childID)
	if err != nil {
		return err
	}
	if child.NEntries != 0 {
		return sifserrors.NotEmptyf("directory %q is not empty", path)
	}

	dirpath, _, hasParent := splitPath(path)
	parentID, err := v.resolveParentDir(bm, dirpath, hasParent)
	if err != nil {
		return err
	}
	parent, err := v.readDirBlock(bm, parentID)
	if err != nil {
		return err
	}

	removeDirEntry(&parent, childID)
	parent.ModTime = time.Now().Unix()
	if err := v.writeDirBlock(parentID, parent); err != nil {
		return err
	}

	bm[childID] = Unused
	if err := v.writeBitmap(bm); err != nil {
		return err
	}
	return v.zeroBlock(childID)
}

// removeEntryAt deletes the entry at position i from dir, shifting
// later entries down to close the gap.
func removeEntryAt(dir *DirBlock, i uint32) {
	for j := i; j < dir.NEntries-1; j++ {
		dir.Entries[j] = dir.Entries[j+1]
	}
	dir.Entries[dir.NEntries-1] = DirEntry{}
	dir.NEntries--
}

// removeDirEntry deletes the entry pointing at childID from dir. Used
// for subdirectories, which have exactly one parent back-reference, so
// matching on BlockID alone is unambiguous.
func removeDirEntry(dir *DirBlock, childID BlockID) {
	for i := uint32(0); i < dir.NEntries; i++ {
		if dir.Entries[i].BlockID == childID {
			removeEntryAt(dir, i)
			return
		}
	}
}

// removeFileEntry deletes the entry pointing at (fileID, fileIndex)
// from dir. A deduplicated file can be linked under several names in
// the same directory, giving dir several entries with the same
// BlockID — so, unlike removeDirEntry, the match must include the
// FileIndex findFile resolved, not just the BlockID.
func removeFileEntry(dir *DirBlock, fileID BlockID, fileIndex uint32) {
	for i := uint32(0); i < dir.NEntries; i++ {
		if dir.Entries[i].BlockID == fileID && dir.Entries[i].FileIndex == fileIndex {
			removeEntryAt(dir, i)
			return
		}
	}
}

// checkNameFree reports EEXIST if dir already has an entry named name,
// ENOTVOL if an entry points at a corrupt block.
func (v *Volume) checkNameFree(bm Bitmap, dir DirBlock, name string) error {
	for i := uint32(0); i < dir.NEntries; i++ {
		_, entryName, err := v.entryKind(bm, dir.Entries[i])
		if err != nil {
			return err
		}
		if entryName == name {
			return sifserrors.AlreadyExistsf("%q already exists", name)
		}
	}
	return nil
}

// zeroBlock overwrites block id with zero bytes, for hygiene after
// Rmdir frees it. Rmfile does not call it.
func (v *Volume) zeroBlock(id BlockID) error {
	buf := make([]byte, v.header.BlockSize)
	if _, err := v.f.WriteAt(buf, v.header.blockOffset(id)); err != nil {
		return err
	}
	return nil
}

// allocateBlock returns the BlockID of the first Unused cell in bm.
func (v *Volume) allocateBlock(bm Bitmap) (BlockID, error) {
	for i, k := range bm {
		if k == Unused {
			return BlockID(i), nil
		}
	}
	return 0, sifserrors.OutOfSpacef("no free block available")
}
