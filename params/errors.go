package params

import "errors"

var ErrChainIDMismatch = errors.New("chain id mismatch")
