package sifs

import (
	"encoding/binary"
	"fmt"

	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
)

// headerSize is the on-disk size of Header: two little-endian uint32s.
const headerSize = 8

// Header is the fixed-size record at the start of every volume file.
type Header struct {
	BlockSize uint32
	NBlocks   uint32
}

// toBytes marshals a Header to its on-disk representation.
func (h Header) toBytes() []byte {
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.BlockSize)
	binary.LittleEndian.PutUint32(buf[4:8], h.NBlocks)
	return buf
}

// headerFromBytes unmarshals a Header from bytes. buf must be exactly
// headerSize bytes.
func headerFromBytes(buf []byte) (Header, error) {
	if len(buf) != headerSize {
		return Header{}, fmt.Errorf("header: expected %d bytes, got %d", headerSize, len(buf))
	}
	return Header{
		BlockSize: binary.LittleEndian.Uint32(buf[0:4]),
		NBlocks:   binary.LittleEndian.Uint32(buf[4:8]),
	}, nil
}

// validate checks the header invariants from the data model: blocksize
// at least MinBlockSize, and at least one block.
func (h Header) validate() error {
	if h.BlockSize < MinBlockSize {
		return sifserrors.NotVolumef("blocksize %d is below the minimum of %d", h.BlockSize, MinBlockSize)
	}
	if h.NBlocks < 1 {
		return sifserrors.NotVolumef("volume has no blocks")
	}
	return nil
}

// bitmapOffset is the byte offset of the bitmap region.
func (h Header) bitmapOffset() int64 {
	return headerSize
}

// blockOffset is the byte offset of block id within the volume file.
func (h Header) blockOffset(id BlockID) int64 {
	return h.bitmapOffset() + int64(h.NBlocks) + int64(id)*int64(h.BlockSize)
}

// fileSize is the total expected length of a well-formed volume file.
func (h Header) fileSize() int64 {
	return h.bitmapOffset() + int64(h.NBlocks) + int64(h.NBlocks)*int64(h.BlockSize)
}
