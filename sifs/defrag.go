package sifs

// Defrag compacts the volume in place: every run of Unused cells that
// precedes a used cell is closed up, shifting each used cell (and its
// back-pointers) down by the total number of Unused cells before it.
// Blocks after the highest-indexed used cell are left untouched.
func (v *Volume) Defrag() error {
	bm, err := v.loadBitmap()
	if err != nil {
		return err
	}

	maxIndex := 0
	for i := 1; i < len(bm); i++ {
		if bm[i] != Unused {
			maxIndex = i
		}
	}

	consecutiveUnused := BlockID(0)
	for i := BlockID(0); int(i) <= maxIndex; i++ {
		switch bm[i] {
		case Unused:
			consecutiveUnused++
			continue
		}
		if consecutiveUnused == 0 {
			continue
		}
		switch bm[i] {
		case Dir:
			if err := v.shiftDir(bm, i, consecutiveUnused); err != nil {
				return err
			}
		case File:
			if err := v.shiftFile(bm, i, consecutiveUnused); err != nil {
				return err
			}
		case DataBlock:
			if err := v.fixupFirstBlockID(bm, i, consecutiveUnused); err != nil {
				return err
			}
			if err := v.shiftData(bm, i, consecutiveUnused); err != nil {
				return err
			}
		}
	}

	return nil
}

// shiftDir relocates the directory block at id down by npos blocks,
// fixing up the single back-pointer from its parent directory.
func (v *Volume) shiftDir(bm Bitmap, id, npos BlockID) error {
	dest := id - npos

	for parentID := BlockID(0); int(parentID) < len(bm); parentID++ {
		if bm[parentID] != Dir {
			continue
		}
		block, err := v.readDirBlock(bm, parentID)
		if err != nil {
			return err
		}
		changed := false
		for i := uint32(0); i < block.NEntries; i++ {
			if block.Entries[i].BlockID == id {
				block.Entries[i].BlockID = dest
				changed = true
			}
		}
		if changed {
			if err := v.writeDirBlock(parentID, block); err != nil {
				return err
			}
			break
		}
	}

	child, err := v.readDirBlock(bm, id)
	if err != nil {
		return err
	}

	bm[id] = Unused
	bm[dest] = Dir
	if err := v.writeBitmap(bm); err != nil {
		return err
	}

	return v.writeDirBlock(dest, child)
}

// shiftFile relocates the file block at id down by npos blocks, fixing
// up every directory entry that references it.
func (v *Volume) shiftFile(bm Bitmap, id, npos BlockID) error {
	dest := id - npos

	fblock, err := v.readFileBlock(bm, id)
	if err != nil {
		return err
	}

	dirsProcessed := uint32(0)
	for dirID := BlockID(0); int(dirID) < len(bm) && dirsProcessed < fblock.NFiles; dirID++ {
		if bm[dirID] != Dir {
			continue
		}
		dblock, err := v.readDirBlock(bm, dirID)
		if err != nil {
			return err
		}
		changed := false
		for i := uint32(0); i < dblock.NEntries; i++ {
			if dblock.Entries[i].BlockID == id {
				dirsProcessed++
				dblock.Entries[i].BlockID = dest
				changed = true
			}
		}
		if changed {
			if err := v.writeDirBlock(dirID, dblock); err != nil {
				return err
			}
		}
	}

	bm[id] = Unused
	bm[dest] = File
	if err := v.writeBitmap(bm); err != nil {
		return err
	}

	return v.writeFileBlock(dest, fblock)
}

// fixupFirstBlockID updates the one file block (if any) whose
// FirstBlockID points at the data block about to be shifted, since
// shiftData itself only knows about bitmap cells, not back-pointers.
func (v *Volume) fixupFirstBlockID(bm Bitmap, id, npos BlockID) error {
	for fileID, k := range bm {
		if k != File {
			continue
		}
		fblock, err := v.readFileBlock(bm, BlockID(fileID))
		if err != nil {
			return err
		}
		if fblock.FirstBlockID == id {
			fblock.FirstBlockID -= npos
			return v.writeFileBlock(BlockID(fileID), fblock)
		}
	}
	return nil
}

// shiftData relocates the raw data block at id down by npos blocks.
func (v *Volume) shiftData(bm Bitmap, id, npos BlockID) error {
	dest := id - npos

	payload, err := v.readDataBlock(id)
	if err != nil {
		return err
	}

	bm[id] = Unused
	bm[dest] = DataBlock
	if err := v.writeBitmap(bm); err != nil {
		return err
	}

	return v.writeDataBlock(dest, payload)
}
