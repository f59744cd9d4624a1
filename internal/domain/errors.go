package domain

// ValidationError marks every rule violation raised by the domain layer.
// Handlers map these to 400s; anything else is an infrastructure failure.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err (or anything it wraps) is a domain rule
// violation.
func IsValidation(err error) bool {
	for err != nil {
		if _, ok := err.(ValidationError); ok {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
