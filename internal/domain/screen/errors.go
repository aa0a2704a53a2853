package screen

import "errors"

var ErrUnknownScreen = errors.New("unknown screen")
