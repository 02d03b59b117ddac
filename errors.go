package houtveilig

import "errors"

var (
	// ErrDirectoryCreation is returned when the output directory cannot be created.
	// Nothing has been written when this error occurs.
	ErrDirectoryCreation = errors.New("unable to create the output directory")
	// ErrFileWrite is returned when an icon file cannot be created or written.
	ErrFileWrite = errors.New("unable to write the icon file")
	// ErrCompression is returned when the pixel data cannot be compressed or decompressed.
	ErrCompression = errors.New("compression failed")

	ErrInvalidSize   = errors.New("icon size should be a positive number")
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrCorrupt is returned by the verification of a generated file.
	ErrCorrupt = errors.New("corrupt icon file")
)
