package hevy

import "errors"

// ErrUnauthorized is returned when the remote source rejects the
// credentials or auth token. It is not retried automatically; callers
// should prompt for re-authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNetwork is returned on transport failure during any call. The
// whole call is safe to retry; there is no partial-page retry.
var ErrNetwork = errors.New("network error")

// ErrAPI is returned for any non-200 response other than 401.
var ErrAPI = errors.New("api error")
