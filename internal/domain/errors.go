package domain

import "errors"

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindValidation
	KindServer
)

// Error is a tagged error carrying a user-facing title and message so
// handlers can render descriptive error views without sniffing strings.
type Error struct {
	Kind    ErrorKind `json:"-"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func NotFoundError(title, message string) *Error {
	return &Error{Kind: KindNotFound, Title: title, Message: message}
}

func ValidationError(title, message string) *Error {
	return &Error{Kind: KindValidation, Title: title, Message: message}
}

func ServerError(title, message string) *Error {
	return &Error{Kind: KindServer, Title: title, Message: message}
}

// IsNotFound reports whether err is a tagged not-found error.
func IsNotFound(err error) bool {
	var derr *Error
	return errors.As(err, &derr) && derr.Kind == KindNotFound
}

// ErrCartEmpty is a control-flow signal, not a failure: checkout
// handlers redirect back to the cart instead of rendering an error.
var ErrCartEmpty = errors.New("cart is empty")
