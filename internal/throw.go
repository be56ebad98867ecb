package internal

import "github.com/pkg/errors"

// Subdivision plans all of its work before touching the store, and the
// planning helpers sit a few calls deep. Rather than thread errors through
// each of them, they panic with an arrangeError, and the store's public
// methods recover to convert it to an error.

var ErrUnsupportedEntityType = errors.New("unsupported entity type")

type arrangeError struct {
	error
}

func (e arrangeError) Cause() error  { return e.error }
func (e arrangeError) Unwrap() error { return e.error }

// Panic with an arrangeError.
func fatalf(format string, args ...interface{}) {
	panic(arrangeError{errors.Errorf(format, args...)})
}

// Panic with an arrangeError wrapping err.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(arrangeError{errors.Wrapf(err, format, args...)})
}

// Convert a recovered arrangeError back into an error. Any other panic is a
// real bug, and is re-raised.
func HandleArrangePanicRecover(r interface{}) error {
	if r != nil {
		if arrangeErr, ok := r.(arrangeError); ok {
			return arrangeErr.error
		}
		panic(r)
	}
	return nil
}
