package models

// Response is the envelope every endpoint returns. Errors carry only
// sanitized messages; detail stays in the operational log.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
	}
}
