package world

import "errors"

var ErrWorldNotFound = errors.New("world not found")
