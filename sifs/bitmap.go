package sifs

import (
	"fmt"

	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
)

// Bitmap is an in-memory copy of a volume's allocation bitmap: one
// Kind per block.
type Bitmap []Kind

// ValidateBitmap checks that every cell holds one of the four
// recognized kinds and that bitmap[RootBlockID] is Dir, per spec
// invariant 1 (and the fixed root-directory convention). It is
// exported so tests can assert the invariant directly, mirroring
// original_source's validate_bitmap helper.
func ValidateBitmap(bm Bitmap) error {
	if len(bm) == 0 {
		return sifserrors.NotVolumef("bitmap is empty")
	}
	for i, k := range bm {
		if !k.Valid() {
			return sifserrors.NotVolumef("bitmap cell %d holds invalid kind %q", i, byte(k))
		}
	}
	if bm[RootBlockID] != Dir {
		return sifserrors.NotVolumef("bitmap[%d] must be Dir, got %q", RootBlockID, bm[RootBlockID].String())
	}
	return nil
}

// readBitmap reads the entire bitmap from the volume file.
func (v *Volume) readBitmap() (Bitmap, error) {
	buf := make([]byte, v.header.NBlocks)
	if _, err := v.f.ReadAt(buf, v.header.bitmapOffset()); err != nil {
		return nil, fmt.Errorf("reading bitmap: %w", err)
	}
	bm := make(Bitmap, len(buf))
	for i, b := range buf {
		bm[i] = Kind(b)
	}
	return bm, nil
}

// writeBitmap writes the entire bitmap to the volume file.
func (v *Volume) writeBitmap(bm Bitmap) error {
	buf := make([]byte, len(bm))
	for i, k := range bm {
		buf[i] = byte(k)
	}
	if _, err := v.f.WriteAt(buf, v.header.bitmapOffset()); err != nil {
		return fmt.Errorf("writing bitmap: %w", err)
	}
	return nil
}
