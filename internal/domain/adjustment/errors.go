package adjustment

import "errors"

var (
	ErrValueOutOfRange = errors.New("adjustment value outside configured range")
	ErrUnknownRole     = errors.New("unknown adjustment role")
)
