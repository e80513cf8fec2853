package sifs

import (
	"os"
	"time"

	"github.com/junnys6018/SIFS/sifs/config"
	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
)

// MkvolumeOption configures Mkvolume.
type MkvolumeOption func(*mkvolumeOptions)

type mkvolumeOptions struct {
	configFile string
}

// WithConfigFile tells Mkvolume to source blocksize/nblocks defaults
// from the named viper-readable config file (see sifs/config) whenever
// the caller passes 0 for that argument.
func WithConfigFile(path string) MkvolumeOption {
	return func(o *mkvolumeOptions) { o.configFile = path }
}

// Mkvolume creates (or truncates) a volume file: a header, an
// all-Unused bitmap except bitmap[0]=Dir, and a zeroed root directory
// block. A blocksize or nblocks of 0 is resolved against
// sifs/config.Load(configFile) first, and DefaultBlockSize/
// DefaultNBlocks after that.
func Mkvolume(name string, blocksize, nblocks uint32, opts ...MkvolumeOption) error {
	var o mkvolumeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if blocksize == 0 || nblocks == 0 {
		defaults, err := config.Load(o.configFile)
		if err != nil {
			return err
		}
		if blocksize == 0 {
			blocksize = defaults.BlockSize
		}
		if nblocks == 0 {
			nblocks = defaults.NBlocks
		}
	}
	if blocksize == 0 {
		blocksize = DefaultBlockSize
	}
	if nblocks == 0 {
		nblocks = DefaultNBlocks
	}

	hdr := Header{BlockSize: blocksize, NBlocks: nblocks}
	if err := hdr.validate(); err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return sifserrors.NoVolumef("cannot create volume %q: %v", name, err)
	}
	defer f.Close()

	if _, err := f.WriteAt(hdr.toBytes(), 0); err != nil {
		return err
	}

	bm := make(Bitmap, nblocks)
	for i := range bm {
		bm[i] = Unused
	}
	bm[RootBlockID] = Dir
	bmBytes := make([]byte, nblocks)
	for i, k := range bm {
		bmBytes[i] = byte(k)
	}
	if _, err := f.WriteAt(bmBytes, hdr.bitmapOffset()); err != nil {
		return err
	}

	root := DirBlock{
		Name:     "",
		ModTime:  time.Now().Unix(),
		NEntries: 0,
	}
	encoded, err := root.toBytes()
	if err != nil {
		return err
	}
	rootBuf := make([]byte, blocksize)
	copy(rootBuf, encoded)
	if _, err := f.WriteAt(rootBuf, hdr.blockOffset(RootBlockID)); err != nil {
		return err
	}

	// Extend the file to its full expected size so later ReadAt calls
	// on never-allocated block slots don't hit EOF.
	if err := f.Truncate(hdr.fileSize()); err != nil {
		return err
	}

	return nil
}

// DefaultBlockSize and DefaultNBlocks are the built-in fallbacks used
// by Mkvolume when neither an explicit argument nor a config file
// supplies a value.
const (
	DefaultBlockSize = 1024
	DefaultNBlocks   = 256
)
