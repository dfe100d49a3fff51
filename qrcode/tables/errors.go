package tables

import "errors"

var (
	ErrInvalidECLevel = errors.New("qrcode/tables: invalid error correction level")
	ErrInvalidMode    = errors.New("qrcode/tables: invalid mode")
	ErrInvalidVersion = errors.New("qrcode/tables: invalid version number")
	ErrInvalidMask    = errors.New("qrcode/tables: mask pattern must be in 0..7")
)
