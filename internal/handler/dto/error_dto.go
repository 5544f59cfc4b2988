package dto

// ErrorResponse - единый формат ошибки API
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse создает DTO ошибки с HTTP-кодом status
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	}
}
