package utils

// ErrorResponse is the body returned on every failed request. Success
// responses carry the entity or list payload directly, so only errors
// get a wrapper.
type ErrorResponse struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// NewErrorResponse creates a new ErrorResponse instance.
func NewErrorResponse(status int, detail string) ErrorResponse {
	return ErrorResponse{
		Status: status,
		Detail: detail,
	}
}
