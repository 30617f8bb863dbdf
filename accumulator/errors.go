package accumulator

import "errors"

// ErrElementLength signals an element whose bit length differs from the parameter set
var ErrElementLength = errors.New("wrong element length")

// ErrElementWeight signals an element whose Hamming weight exceeds the element norm bound
var ErrElementWeight = errors.New("element weight exceeds norm bound")
