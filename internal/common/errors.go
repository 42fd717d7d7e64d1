package common

// The handler layer reduces every failure to one of three typed variants so
// status codes are assigned in a single place instead of per endpoint.

// ValidationError covers rejected input and conflicts (duplicate username,
// email already in use, wrong current password). Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError covers lookups that matched no row. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// UnauthorizedError covers failed credential checks. Maps to 401.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }
