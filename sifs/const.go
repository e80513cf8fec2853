// Package sifs implements a single-file, block-addressed filesystem
// image: a fixed header, a per-block allocation bitmap, and a
// homogeneous block array holding directory blocks, file-metadata
// blocks, and raw data blocks. See Mkvolume, Open, and the methods on
// *Volume for the public surface.
package sifs

import "github.com/junnys6018/SIFS/sifs/digest"

// BlockID is an index into a volume's block array.
type BlockID uint32

// RootBlockID is the fixed block holding the root directory.
const RootBlockID BlockID = 0

// Fixed format constants. Changing any of these changes the on-disk
// layout: existing volumes would no longer parse correctly.
const (
	// MaxNameLength bounds the length (including the trailing NUL) of a
	// directory name or filename.
	MaxNameLength = 32

	// MaxEntries bounds both the number of entries in a directory and
	// the number of filenames (≡ reference count) a single file block
	// can carry.
	MaxEntries = 16

	// DigestByteLen is the width of a file block's content digest.
	DigestByteLen = digest.ByteLen

	// MinBlockSize is the smallest blocksize a volume may use. It
	// leaves room for a fully populated DirBlock (172 bytes) or
	// FileBlock (548 bytes).
	MinBlockSize = 600
)

// Kind is the value stored in one bitmap cell, identifying what the
// corresponding block slot holds.
type Kind byte

// Bitmap cell kinds. The byte values double as the on-disk bitmap
// bytes and as ASCII-printable glyphs, so a raw bitmap dump is legible.
const (
	Unused    Kind = '.'
	Dir       Kind = 'D'
	File      Kind = 'F'
	DataBlock Kind = 'd'
)

// String returns the display glyph for a Kind.
func (k Kind) String() string {
	return string(rune(k))
}

// Valid returns true if k is one of the four recognized bitmap kinds.
func (k Kind) Valid() bool {
	switch k {
	case Unused, Dir, File, DataBlock:
		return true
	default:
		return false
	}
}
