package store

import "errors"

var ErrNoProductSelected = errors.New("no product selected")
