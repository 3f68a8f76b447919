package kafka

import "errors"

var (
	errEmptyEvent   = errors.New("empty event name")
	errEmptyOrderID = errors.New("empty order_id")
)

// PoisonMessageError marks a job message that can never be decoded. Retrying it is pointless.
type PoisonMessageError struct {
	Offset int64
	Err    error
}

func (e *PoisonMessageError) Error() string {
	return "poison job message: " + e.Err.Error()
}

func (e *PoisonMessageError) Unwrap() error { return e.Err }

// IsPoison reports whether err came from an undecodable message.
func IsPoison(err error) bool {
	var pe *PoisonMessageError
	return errors.As(err, &pe)
}
