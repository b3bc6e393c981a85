package estimator

import "errors"

// ErrInvalidRoomType is returned when the room configuration is not 1BHK, 2BHK or 3BHK
var ErrInvalidRoomType = errors.New("invalid room type")

// ErrInvalidAverageMode is returned by ParseAverageMode for unknown mode names
var ErrInvalidAverageMode = errors.New("invalid average mode")
