package client

import "errors"

// ErrNoIdentity is returned when neither a user ID nor a usable identity
// token is configured.
var ErrNoIdentity = errors.New("no user identity configured")
