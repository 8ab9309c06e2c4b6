package dto

// Envelope wraps every JSON response body.
type Envelope struct {
	Success bool    `json:"success"`
	Error   *string `json:"error"`
	Data    any     `json:"data"`
}

// Success wraps data in a successful envelope.
func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Failure wraps an error message. Data is always null.
func Failure(message string) Envelope {
	return Envelope{Error: &message}
}
