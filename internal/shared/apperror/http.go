package apperror

import "errors"

// HTTPError is the flattened form handlers write to the response.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP maps any error to its HTTP representation. Errors that are not
// an *AppError are treated as store failures and hidden behind a generic
// message so internals never leak to the dashboard.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
