// Package guard ties the lifetime of a resource to a block of code.
//
// A guarded resource is released exactly once when the block finishes,
// whether it returns normally, returns an error or panics. The same shape
// works for anything that must be given back, such as a held lock; this
// package only ships the file form.
//
// Guards are owned by the goroutine that acquired them and are not safe for
// concurrent use.
package guard

import (
	"io"

	"go.uber.org/multierr"
)

// Use acquires a resource with open, hands it to fn and closes it when fn
// returns or panics. If open fails its error is returned and neither fn nor
// Close is called. An error from Close is combined with the error from fn.
func Use[T io.Closer](open func() (T, error), fn func(T) error) (err error) {
	r, err := open()
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, r.Close())
	}()
	return fn(r)
}
