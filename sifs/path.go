package sifs

import (
	"strings"

	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
)

// splitSegments splits a '/'-separated path into its non-empty
// segments, ignoring a leading slash.
func splitSegments(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// splitPath splits p on its last '/' into a parent path and a final
// name. A path with no '/' returns ("", name, false) — no parent
// path, so the caller resolves against the root. A leading-only slash
// (e.g. "/foo") also returns no parent path. Callers must reject an
// empty p themselves (spec: empty path is valid for directory queries
// but not for file operations).
func splitPath(p string) (parent string, name string, hasParent bool) {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return "", p, false
	}
	parent = p[:idx]
	name = p[idx+1:]
	if parent == "" {
		return "", name, false
	}
	return parent, name, true
}

// entryKind reports the kind and displayed name of a directory entry's
// target block.
func (v *Volume) entryKind(bm Bitmap, entry DirEntry) (Kind, string, error) {
	switch bm[entry.BlockID] {
	case Dir:
		child, err := v.readDirBlock(bm, entry.BlockID)
		if err != nil {
			return 0, "", err
		}
		return Dir, child.Name, nil
	case File:
		child, err := v.readFileBlock(bm, entry.BlockID)
		if err != nil {
			return 0, "", err
		}
		if entry.FileIndex >= child.NFiles {
			return 0, "", sifserrors.NotVolumef("file block %d: fileindex %d out of range (nfiles=%d)", entry.BlockID, entry.FileIndex, child.NFiles)
		}
		return File, child.FileNames[entry.FileIndex], nil
	default:
		return 0, "", sifserrors.NotVolumef("directory entry points at block %d of invalid kind %q", entry.BlockID, bm[entry.BlockID])
	}
}

// findDir walks path one '/'-separated segment at a time from start,
// which must already be a directory. It returns the BlockID of the
// directory the path resolves to.
func (v *Volume) findDir(bm Bitmap, start BlockID, path string) (BlockID, error) {
	segments := splitSegments(path)
	current := start
	for _, seg := range segments {
		if len(seg) >= MaxNameLength {
			return 0, sifserrors.InvalidArgumentf("path segment %q exceeds %d bytes", seg, MaxNameLength-1)
		}

		dir, err := v.readDirBlock(bm, current)
		if err != nil {
			return 0, err
		}

		found := false
		for i := uint32(0); i < dir.NEntries; i++ {
			entry := dir.Entries[i]
			kind, name, err := v.entryKind(bm, entry)
			if err != nil {
				return 0, err
			}
			if name != seg {
				continue
			}
			if kind == File {
				return 0, sifserrors.NotDirectoryf("%q is a file, not a directory", seg)
			}
			current = entry.BlockID
			found = true
			break
		}
		if !found {
			return 0, sifserrors.NotFoundf("no such directory entry %q", seg)
		}
	}
	return current, nil
}

// findFile scans dir's entries for a file entry named name. It returns
// the file block's BlockID and the entry's fileindex.
func (v *Volume) findFile(bm Bitmap, dir DirBlock, name string) (BlockID, uint32, error) {
	for i := uint32(0); i < dir.NEntries; i++ {
		entry := dir.Entries[i]
		kind, entryName, err := v.entryKind(bm, entry)
		if err != nil {
			return 0, 0, err
		}
		if entryName != name {
			continue
		}
		if kind == Dir {
			return 0, 0, sifserrors.NotFilef("%q is a directory, not a file", name)
		}
		return entry.BlockID, entry.FileIndex, nil
	}
	return 0, 0, sifserrors.NotFoundf("no such file %q", name)
}

// resolveParentDir resolves the parent directory of path: if dirpath
// is empty (no '/' in path, or only a leading '/'), the parent is the
// root directory.
func (v *Volume) resolveParentDir(bm Bitmap, dirpath string, hasParent bool) (BlockID, error) {
	if !hasParent {
		return RootBlockID, nil
	}
	return v.findDir(bm, RootBlockID, dirpath)
}
