package db

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// DuplicateSignerError is returned when a guardian attempts to sign the same
// withdrawal request twice.
type DuplicateSignerError struct {
	Key     string
	Signer  string
	Message string
}

func (e *DuplicateSignerError) Error() string {
	return e.Message
}

func IsDuplicateSignerError(err error) bool {
	_, ok := err.(*DuplicateSignerError)
	return ok
}

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	_, ok := err.(*DuplicateKeyError)
	return ok
}
