package serverutils

// BaseResponse is the body of every non-data answer, errors included.
type BaseResponse struct {
	Message string `json:"message"`
}

type DataResponse[T any] struct {
	Data T `json:"data"`
}

func SuccessResponse[T any](data T) DataResponse[T] {
	return DataResponse[T]{Data: data}
}

func ErrorResponse(message string) BaseResponse {
	return BaseResponse{Message: message}
}
