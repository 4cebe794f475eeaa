package servererrors

import "errors"

// sentinel errors surfaced by services and mapped to status codes in handlers.
var (
	ErrInvalidRequestPayload = errors.New("invalid request payload")
	ErrValidationFailed      = errors.New("request validation failed")

	ErrMissingToken   = errors.New("a valid token is missing")
	ErrInvalidToken   = errors.New("token is invalid")
	ErrAdminRequired  = errors.New("admin required for this action")
	ErrCouldNotVerify = errors.New("could not verify")

	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user does not exist")
	ErrWrongAdminKey     = errors.New("wrong admin key")

	ErrProductAlreadyExists = errors.New("product already exists")
	ErrInvalidPrice         = errors.New("price must be an integer between 1 and 1000000")
	ErrInvalidWeight        = errors.New("weight must be a number greater than 0 and less than 1000")
	ErrInvalidQuantity      = errors.New("quantity must be a non-negative integer")
	ErrProductNotFound      = errors.New("product does not exist")
	ErrStockNotFound        = errors.New("no stock tracking record for product")
	ErrOutOfStock           = errors.New("product is out of stock")

	ErrNoOpenCart        = errors.New("no current invoice associated to user")
	ErrNoInvoicesInRange = errors.New("no invoices found for the given dates")
)

type ServerError struct {
	StatusCode int
	Message    string
	Errors     any
}

// New creates a *ServerError carrying the HTTP status code the error handler
// middleware should reply with, plus optional field-level details.
func New(statusCode int, message string, errors any) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errors,
	}
}

func (e *ServerError) Error() string {
	return e.Message
}
