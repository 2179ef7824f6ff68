package esteria

const unknownError = "unknown error"

// Failure reasons by gateway response code, from the Esteria API
// documentation. Codes above 100 are message ids and never reach this table.
var codeMessages = map[int]string{
	1:  "system internal error",
	2:  "missing PARAM_NAME parameter",
	3:  "unable to authenticate",
	4:  "IP ADDRESS is not allowed",
	5:  "invalid SENDER parameter",
	6:  "SENDER is not allowed",
	7:  "invalid NUMBER parameter",
	8:  "invalid CODING parameter",
	9:  "unable to convert TEXT",
	10: "length of UDH and TEXT too long",
	11: "empty TEXT parameter",
	12: "invalid TIME parameter",
	13: "invalid EXPIRED parameter",
	14: "invalid DLR-URL parameter",
	15: "Invalid FLAG-FLASH parameter",
	16: "invalid FLAG-NOLOG parameter",
	17: "invalid FLAG-TEST parameter",
	18: "invalid FLAG-NOBL parameter",
	19: "invalid FLAG-CONVERT parameter",
}

// CodeMessage returns the human-readable reason for a gateway failure code.
func CodeMessage(code int) string {
	if msg, exists := codeMessages[code]; exists {
		return msg
	}

	return unknownError
}
