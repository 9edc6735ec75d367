package player

import "errors"

var ErrNoWorld = errors.New("destination has no world")
