package types

// APIError is the uniform failure body. Code carries the stage kind for
// pipeline failures and is omitted for validation and internal errors.
type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
	Status  int    `json:"status"`
}

// FieldViolation names one invalid request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
