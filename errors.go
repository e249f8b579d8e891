// File: errors.go
package captcha

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned for non-positive dimensions, bad colors
	// and unknown policies.
	ErrInvalidConfig = errors.New("captcha: invalid config")

	// ErrFont covers a missing, unreadable or malformed font resource.
	ErrFont = errors.New("captcha: font unavailable")

	// ErrBitmapSize means a pixel buffer does not match its declared
	// dimensions. It indicates a bug, not bad input.
	ErrBitmapSize = errors.New("captcha: bitmap size mismatch")

	// ErrNegativeSpacing is returned under SpacingReject when the glyphs
	// do not fit the canvas width.
	ErrNegativeSpacing = errors.New("captcha: glyphs do not fit canvas width")

	// ErrEncode wraps image serialization failures.
	ErrEncode = errors.New("captcha: encode failed")
)
