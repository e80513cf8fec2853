package sifs

import (
	"fmt"
	"os"

	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
	sifslog "github.com/junnys6018/SIFS/sifs/log"
)

// Volume is an open sifs volume file. Its header is validated once, by
// Open. Every public method that mutates the volume validates
// arguments, reads and validates the bitmap, checks preconditions, and
// only then begins writing — once a
// mutation begins, it is assumed to run to completion (see spec §7).
type Volume struct {
	f      *os.File
	header Header
	log    *sifslog.Logger
}

// Option configures a Volume opened with Open.
type Option func(*Volume)

// WithLogger attaches a logger to a Volume. Without this option,
// Volume logs nothing.
func WithLogger(l *sifslog.Logger) Option {
	return func(v *Volume) { v.log = l }
}

// Open opens an existing volume file for reading and writing,
// validating its header and checking that the file's length matches
// the size the header describes.
func Open(name string, opts ...Option) (*Volume, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, sifserrors.NoVolumef("cannot open volume %q: %v", name, err)
	}

	v := &Volume{f: f, log: sifslog.New(sifslog.LevelSilent)}
	for _, opt := range opts {
		opt(v)
	}

	hdr, err := v.readHeader()
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := hdr.validate(); err != nil {
		f.Close()
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, sifserrors.NoVolumef("cannot stat volume %q: %v", name, err)
	}
	if info.Size() != hdr.fileSize() {
		f.Close()
		return nil, sifserrors.NotVolumef("volume %q is %d bytes, header describes %d", name, info.Size(), hdr.fileSize())
	}
	v.header = hdr

	v.log.Debugf("opened volume %q: blocksize=%d nblocks=%d", name, hdr.BlockSize, hdr.NBlocks)
	return v, nil
}

// Close closes the underlying volume file.
func (v *Volume) Close() error {
	return v.f.Close()
}

// readHeader reads the header from the start of the volume file.
func (v *Volume) readHeader() (Header, error) {
	buf := make([]byte, headerSize)
	if _, err := v.f.ReadAt(buf, 0); err != nil {
		return Header{}, sifserrors.NotVolumef("cannot read header: %v", err)
	}
	return headerFromBytes(buf)
}

// writeHeader writes h to the start of the volume file.
func (v *Volume) writeHeader(h Header) error {
	if _, err := v.f.WriteAt(h.toBytes(), 0); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// readDirBlock reads and validates the directory block at id.
func (v *Volume) readDirBlock(bm Bitmap, id BlockID) (DirBlock, error) {
	if err := v.checkKind(bm, id, Dir); err != nil {
		return DirBlock{}, err
	}
	buf := make([]byte, v.header.BlockSize)
	if _, err := v.f.ReadAt(buf, v.header.blockOffset(id)); err != nil {
		return DirBlock{}, fmt.Errorf("reading dir block %d: %w", id, err)
	}
	return dirBlockFromBytes(buf)
}

// writeDirBlock writes d to block id, zero-padded to the volume's
// blocksize.
func (v *Volume) writeDirBlock(id BlockID, d DirBlock) error {
	encoded, err := d.toBytes()
	if err != nil {
		return err
	}
	buf := make([]byte, v.header.BlockSize)
	copy(buf, encoded)
	if _, err := v.f.WriteAt(buf, v.header.blockOffset(id)); err != nil {
		return fmt.Errorf("writing dir block %d: %w", id, err)
	}
	return nil
}

// readFileBlock reads and validates the file block at id.
func (v *Volume) readFileBlock(bm Bitmap, id BlockID) (FileBlock, error) {
	if err := v.checkKind(bm, id, File); err != nil {
		return FileBlock{}, err
	}
	buf := make([]byte, v.header.BlockSize)
	if _, err := v.f.ReadAt(buf, v.header.blockOffset(id)); err != nil {
		return FileBlock{}, fmt.Errorf("reading file block %d: %w", id, err)
	}
	return fileBlockFromBytes(buf)
}

// writeFileBlock writes f to block id, zero-padded to the volume's
// blocksize.
func (v *Volume) writeFileBlock(id BlockID, f FileBlock) error {
	encoded, err := f.toBytes()
	if err != nil {
		return err
	}
	buf := make([]byte, v.header.BlockSize)
	copy(buf, encoded)
	if _, err := v.f.WriteAt(buf, v.header.blockOffset(id)); err != nil {
		return fmt.Errorf("writing file block %d: %w", id, err)
	}
	return nil
}

// readDataBlock reads the raw blocksize-byte payload at id.
func (v *Volume) readDataBlock(id BlockID) ([]byte, error) {
	buf := make([]byte, v.header.BlockSize)
	if _, err := v.f.ReadAt(buf, v.header.blockOffset(id)); err != nil {
		return nil, fmt.Errorf("reading data block %d: %w", id, err)
	}
	return buf, nil
}

// writeDataBlock writes the raw bytes at id. data may be shorter than
// blocksize; the remainder of the block slot is left unchanged.
func (v *Volume) writeDataBlock(id BlockID, data []byte) error {
	if _, err := v.f.WriteAt(data, v.header.blockOffset(id)); err != nil {
		return fmt.Errorf("writing data block %d: %w", id, err)
	}
	return nil
}

// checkKind validates that bitmap[id] matches want, surfacing ENOTVOL
// if the volume is corrupt (a reference pointing at a cell of the
// wrong kind).
func (v *Volume) checkKind(bm Bitmap, id BlockID, want Kind) error {
	if int(id) >= len(bm) {
		return sifserrors.NotVolumef("block %d is out of range (nblocks=%d)", id, len(bm))
	}
	if bm[id] != want {
		return sifserrors.NotVolumef("block %d: expected kind %q, got %q", id, want, bm[id])
	}
	return nil
}

// loadBitmap reads and validates the volume's bitmap.
func (v *Volume) loadBitmap() (Bitmap, error) {
	bm, err := v.readBitmap()
	if err != nil {
		return nil, err
	}
	if err := ValidateBitmap(bm); err != nil {
		return nil, err
	}
	return bm, nil
}
