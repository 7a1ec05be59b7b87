package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// MessageResponse carries the human-readable result of a mutation, mirroring
// the admin UI's expectation of a message string on success.
type MessageResponse struct {
	Message string `json:"message"`
}
