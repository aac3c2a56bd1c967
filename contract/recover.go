package contract

// AsViolation reports whether a recovered panic value is a raised
// Violation.
func AsViolation(r any) (*Violation, bool) {
	v, ok := r.(*Violation)
	return v, ok
}

// Recover converts a raised Violation into the error pointed to by err.
// It must be deferred. Panic values other than *Violation are re-raised
// untouched.
//
//	func process(img *Image) (err error) {
//		defer contract.Recover(&err)
//		contract.Precondition(img != nil, "image must not be nil")
//		// ...
//		return nil
//	}
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	v, ok := AsViolation(r)
	if !ok {
		panic(r)
	}

	*err = v
}

// Check runs fn and returns the Violation it raises, if any, as an error.
func Check(fn func()) (err error) {
	defer Recover(&err)

	fn()

	return nil
}
