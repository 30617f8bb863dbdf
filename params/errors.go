package params

import "errors"

// ErrInvalidParameters signals a malformed (m, n, capacity) tuple or a missing collaborator
var ErrInvalidParameters = errors.New("invalid parameters")

// ErrNormBound signals that the norm thresholds do not fit the field for the chosen tuple
var ErrNormBound = errors.New("norm bound exceeds field capacity")

// ErrSamplingExhausted signals that rejection sampling ran out of nonces for a matrix cell
var ErrSamplingExhausted = errors.New("rejection sampling exhausted")

// ErrDigestTooShort signals a hasher whose digest cannot cover a field representation
var ErrDigestTooShort = errors.New("hash digest shorter than field representation")
