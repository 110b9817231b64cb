package optional

import "errors"

var (
	// ErrNotCallable a dispatch value was routed as the target but is neither
	// a wrapper.Callable of the adapted type nor a function of it.
	ErrNotCallable = errors.New("optional: argument is not a callable target")
)
