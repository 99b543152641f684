package terrainio

import (
	"errors"
)

// Sentinel errors for terrain loading.
var (
	// ErrBadValue indicates a value in the file that cannot be handled by
	// the part of the loader it was intended for.
	ErrBadValue = errors.New("terrainio: received a bad value from a file")
	// ErrSourceOutOfRange indicates a water-source coordinate outside the
	// declared grid dimensions.
	ErrSourceOutOfRange = errors.New("terrainio: water source out of range")
	// ErrTruncated indicates the file ended before all declared data was read.
	ErrTruncated = errors.New("terrainio: unexpected end of terrain data")
	// ErrRemoteTerrain indicates a terrain whose header names a URL; Parse
	// cannot follow it, use Loader.Load or Loader.LoadRemote.
	ErrRemoteTerrain = errors.New("terrainio: terrain data is remote")
)
