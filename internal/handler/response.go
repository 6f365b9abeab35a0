package handler

// All error responses share one envelope: {"error":{"code","message"}}.
// Codes are stable machine-readable strings (bad_request, store_unavailable,
// bad_gateway, gateway_unreachable, invalid_signature, ...).

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}
