package boot

import "errors"

// Decoding failures are fatal to the extraction in progress; callers test
// the kind with errors.Is and surface the wrapped detail.
var (
	// ErrTruncatedImage - the source held fewer bytes than a fixed-size read requires.
	ErrTruncatedImage = errors.New("truncated image")

	// ErrNotBootable - the volume descriptor does not identify an El Torito bootable ISO9660 volume.
	ErrNotBootable = errors.New("not a bootable cd image")

	// ErrInvalidValidationEntry - the boot catalog validation entry failed its fixed checks.
	ErrInvalidValidationEntry = errors.New("invalid validation entry")

	// ErrNotBootableEntry - the initial catalog entry is not marked bootable.
	ErrNotBootableEntry = errors.New("initial entry is not bootable")

	// ErrInvalidArgument - a required collaborator is absent.
	ErrInvalidArgument = errors.New("invalid argument")
)
