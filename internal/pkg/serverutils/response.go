package serverutils

// Response is the uniform envelope for every successful JSON reply.
type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// ErrorBody is the uniform envelope for error replies.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{Message: message, Data: data}
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{Code: code, Message: message}
}
