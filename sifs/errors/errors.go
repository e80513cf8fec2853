// Package errors contains the sentinel error kinds returned by the sifs
// package, plus the tag-interface/predicate pattern used to test for them.
package errors

import (
	"errors"
	"fmt"
)

// New is errors.New, re-exported so callers don't need a second import.
func New(text string) error {
	return errors.New(text)
}

// --------------------- EINVAL

// invalidArgument is returned when an argument is missing, empty, or
// otherwise malformed (oversize name, path semantics violated).
type invalidArgument string

// InvalidArgumentI is the tag interface used to mark EINVAL errors.
type InvalidArgumentI interface {
	IsInvalidArgument()
}

var _ InvalidArgumentI = invalidArgument("test")

func (e invalidArgument) Error() string { return string(e) }

func (e invalidArgument) IsInvalidArgument() {}

// InvalidArgumentf is fmt.Errorf for EINVAL errors.
func InvalidArgumentf(format string, a ...interface{}) error {
	return invalidArgument(fmt.Sprintf(format, a...))
}

// IsInvalidArgument returns true if err is an EINVAL error.
func IsInvalidArgument(err error) bool {
	_, ok := err.(InvalidArgumentI)
	return ok
}

// --------------------- ENOVOL

// noVolume is returned when the volume file cannot be opened.
type noVolume string

// NoVolumeI is the tag interface used to mark ENOVOL errors.
type NoVolumeI interface {
	IsNoVolume()
}

var _ NoVolumeI = noVolume("test")

func (e noVolume) Error() string { return string(e) }

func (e noVolume) IsNoVolume() {}

// NoVolumef is fmt.Errorf for ENOVOL errors.
func NoVolumef(format string, a ...interface{}) error {
	return noVolume(fmt.Sprintf(format, a...))
}

// IsNoVolume returns true if err is an ENOVOL error.
func IsNoVolume(err error) bool {
	_, ok := err.(NoVolumeI)
	return ok
}

// --------------------- ENOTVOL

// notVolume is returned when the header, bitmap, or a block reference
// fails sanity checking: the volume is corrupt.
type notVolume string

// NotVolumeI is the tag interface used to mark ENOTVOL errors.
type NotVolumeI interface {
	IsNotVolume()
}

var _ NotVolumeI = notVolume("test")

func (e notVolume) Error() string { return string(e) }

func (e notVolume) IsNotVolume() {}

// NotVolumef is fmt.Errorf for ENOTVOL errors.
func NotVolumef(format string, a ...interface{}) error {
	return notVolume(fmt.Sprintf(format, a...))
}

// IsNotVolume returns true if err is an ENOTVOL error.
func IsNotVolume(err error) bool {
	_, ok := err.(NotVolumeI)
	return ok
}

// --------------------- ENOMEM

// outOfMemory is returned when scratch allocation fails.
type outOfMemory string

// OutOfMemoryI is the tag interface used to mark ENOMEM errors.
type OutOfMemoryI interface {
	IsOutOfMemory()
}

var _ OutOfMemoryI = outOfMemory("test")

func (e outOfMemory) Error() string { return string(e) }

func (e outOfMemory) IsOutOfMemory() {}

// OutOfMemoryf is fmt.Errorf for ENOMEM errors.
func OutOfMemoryf(format string, a ...interface{}) error {
	return outOfMemory(fmt.Sprintf(format, a...))
}

// IsOutOfMemory returns true if err is an ENOMEM error.
func IsOutOfMemory(err error) bool {
	_, ok := err.(OutOfMemoryI)
	return ok
}

// --------------------- ENOENT

// notFound is returned when a path segment cannot be found.
type notFound string

// NotFoundI is the tag interface used to mark ENOENT errors.
type NotFoundI interface {
	IsNotFound()
}

var _ NotFoundI = notFound("test")

func (e notFound) Error() string { return string(e) }

func (e notFound) IsNotFound() {}

// NotFoundf is fmt.Errorf for ENOENT errors.
func NotFoundf(format string, a ...interface{}) error {
	return notFound(fmt.Sprintf(format, a...))
}

// IsNotFound returns true if err is an ENOENT error.
func IsNotFound(err error) bool {
	_, ok := err.(NotFoundI)
	return ok
}

// --------------------- ENOTDIR

// notDirectory is returned when an intermediate path segment is a file,
// not a directory.
type notDirectory string

// NotDirectoryI is the tag interface used to mark ENOTDIR errors.
type NotDirectoryI interface {
	IsNotDirectory()
}

var _ NotDirectoryI = notDirectory("test")

func (e notDirectory) Error() string { return string(e) }

func (e notDirectory) IsNotDirectory() {}

// NotDirectoryf is fmt.Errorf for ENOTDIR errors.
func NotDirectoryf(format string, a ...interface{}) error {
	return notDirectory(fmt.Sprintf(format, a...))
}

// IsNotDirectory returns true if err is an ENOTDIR error.
func IsNotDirectory(err error) bool {
	_, ok := err.(NotDirectoryI)
	return ok
}

// --------------------- ENOTFILE

// notFile is returned when the terminal path segment is a directory
// where a file was required.
type notFile string

// NotFileI is the tag interface used to mark ENOTFILE errors.
type NotFileI interface {
	IsNotFile()
}

var _ NotFileI = notFile("test")

func (e notFile) Error() string { return string(e) }

func (e notFile) IsNotFile() {}

// NotFilef is fmt.Errorf for ENOTFILE errors.
func NotFilef(format string, a ...interface{}) error {
	return notFile(fmt.Sprintf(format, a...))
}

// IsNotFile returns true if err is an ENOTFILE error.
func IsNotFile(err error) bool {
	_, ok := err.(NotFileI)
	return ok
}

// --------------------- EEXIST

// alreadyExists is returned when a name collides with an existing entry
// in the target directory.
type alreadyExists string

// AlreadyExistsI is the tag interface used to mark EEXIST errors.
type AlreadyExistsI interface {
	IsAlreadyExists()
}

var _ AlreadyExistsI = alreadyExists("test")

func (e alreadyExists) Error() string { return string(e) }

func (e alreadyExists) IsAlreadyExists() {}

// AlreadyExistsf is fmt.Errorf for EEXIST errors.
func AlreadyExistsf(format string, a ...interface{}) error {
	return alreadyExists(fmt.Sprintf(format, a...))
}

// IsAlreadyExists returns true if err is an EEXIST error.
func IsAlreadyExists(err error) bool {
	_, ok := err.(AlreadyExistsI)
	return ok
}

// --------------------- EMAXENTRY

// maxEntries is returned when a directory or file-block name table is
// full.
type maxEntries string

// MaxEntriesI is the tag interface used to mark EMAXENTRY errors.
type MaxEntriesI interface {
	IsMaxEntries()
}

var _ MaxEntriesI = maxEntries("test")

func (e maxEntries) Error() string { return string(e) }

func (e maxEntries) IsMaxEntries() {}

// MaxEntriesf is fmt.Errorf for EMAXENTRY errors.
func MaxEntriesf(format string, a ...interface{}) error {
	return maxEntries(fmt.Sprintf(format, a...))
}

// IsMaxEntries returns true if err is an EMAXENTRY error.
func IsMaxEntries(err error) bool {
	_, ok := err.(MaxEntriesI)
	return ok
}

// --------------------- ENOSPC

// outOfSpace is returned when no free block, or no contiguous free run
// of the required length, is available.
type outOfSpace string

// OutOfSpaceI is the tag interface used to mark ENOSPC errors.
type OutOfSpaceI interface {
	IsOutOfSpace()
}

var _ OutOfSpaceI = outOfSpace("test")

func (e outOfSpace) Error() string { return string(e) }

func (e outOfSpace) IsOutOfSpace() {}

// OutOfSpacef is fmt.Errorf for ENOSPC errors.
func OutOfSpacef(format string, a ...interface{}) error {
	return outOfSpace(fmt.Sprintf(format, a...))
}

// IsOutOfSpace returns true if err is an ENOSPC error.
func IsOutOfSpace(err error) bool {
	_, ok := err.(OutOfSpaceI)
	return ok
}

// --------------------- ENOTEMPTY

// notEmpty is returned when rmdir targets a non-empty directory.
type notEmpty string

// NotEmptyI is the tag interface used to mark ENOTEMPTY errors.
type NotEmptyI interface {
	IsNotEmpty()
}

var _ NotEmptyI = notEmpty("test")

func (e notEmpty) Error() string { return string(e) }

func (e notEmpty) IsNotEmpty() {}

// NotEmptyf is fmt.Errorf for ENOTEMPTY errors.
func NotEmptyf(format string, a ...interface{}) error {
	return notEmpty(fmt.Sprintf(format, a...))
}

// IsNotEmpty returns true if err is an ENOTEMPTY error.
func IsNotEmpty(err error) bool {
	_, ok := err.(NotEmptyI)
	return ok
}
