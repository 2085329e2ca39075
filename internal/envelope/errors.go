package envelope

import "errors"

var ErrIncompleteEnvelope = errors.New("envelope has empty fields")
