package canvas

import "errors"

// ErrInvalidSize indicates that a canvas could not be allocated because
// the requested dimensions are not positive.
var ErrInvalidSize = errors.New("canvas: width and height must be positive")

// ErrEncode indicates that the final image file could not be written.
// No partial output file is left behind when this is returned.
var ErrEncode = errors.New("canvas: image encoding failed")
