package famrisk

import "errors"

// Kind classifies the failures that the models can report
type Kind uint32

const (
	// InvalidInput means a count or probability violated the model's domain.
	// Nothing was computed.
	InvalidInput Kind = iota + 1

	// NotConverged means the optimizer exhausted its iteration budget before
	// the bracket shrank to the requested tolerance.
	NotConverged

	// Undefined means the result contains 0/0 quantities, reported as NaN.
	// The result is still returned so that callers can inspect it.
	Undefined
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case NotConverged:
		return "not converged"
	case Undefined:
		return "undefined result"

	default:
		return "Illegal selection"
	}
}

// Sentinels for use with errors.Is. Only the Kind is compared.
var (
	ErrInvalidInput = &Error{Kind: InvalidInput}
	ErrNotConverged = &Error{Kind: NotConverged}
	ErrUndefined    = &Error{Kind: Undefined}
)

// Error is the only error type returned by this package.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// kindOf returns the Kind carried by err, or InvalidInput if it has none.
func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return InvalidInput
}

// cause strips the Kind from err so that it can be annotated and tagged again
// without repeating the Kind in the message.
func cause(err error) error {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err
	}
	return err
}

// newError tags err with kind. Callers pass pfx.Err(...) so that the message
// names the function that detected the problem.
func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
