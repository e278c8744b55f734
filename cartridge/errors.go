package cartridge

import "errors"

// Errors returned by Load. Callers should compare with errors.Is.
var (
	ErrBadMagic          = errors.New("cartridge: missing iNES magic number")
	ErrTruncatedROM      = errors.New("cartridge: file shorter than header declares")
	ErrUnsupportedMapper = errors.New("cartridge: mapper id not implemented")
)
