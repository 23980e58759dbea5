package services

// ValidationError signals a request payload missing required fields.
// The HTTP layer maps it to 400 with the message as the response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals that the target row does not exist.
// The HTTP layer maps it to 404 with the message as the response body.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
