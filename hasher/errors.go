package hasher

import "errors"

// ErrUnknownHasher signals that no construction is registered under a name
var ErrUnknownHasher = errors.New("unknown hasher")
