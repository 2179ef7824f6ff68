package constants

const (
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeSendRejected       = "SEND_REJECTED"
	ErrCodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidRequestBody = "failed to parse request body"
	ErrMsgValidationFailed   = "request validation failed"
	ErrMsgSendRejected       = "gateway rejected the message"
	ErrMsgGatewayUnavailable = "gateway could not be reached"
	ErrMsgInternalError      = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:   ErrMsgValidationFailed,
	ErrCodeSendRejected:       ErrMsgSendRejected,
	ErrCodeGatewayUnavailable: ErrMsgGatewayUnavailable,
	ErrCodeInternalError:      ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeValidationFailed:
		return 400
	case ErrCodeSendRejected:
		return 422
	case ErrCodeGatewayUnavailable:
		return 502
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
