package hull

import "github.com/pkg/errors"

// Returning errors from deep inside the algorithms would thread an error
// value through every loop for conditions that are always caller bugs.
// Instead, we panic, and the public API recovers to convert to an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
