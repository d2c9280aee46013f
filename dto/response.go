package dto

// Response is the envelope wrapping every API payload. Data is null on
// failure; Message is null when there is nothing to say.
type Response struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Message *string `json:"message"`
}

// OK wraps data in a successful envelope. An empty message is omitted (null).
func OK(data any, message string) Response {
	r := Response{Success: true, Data: data}
	if message != "" {
		r.Message = &message
	}
	return r
}

// Fail builds a failed envelope carrying message.
func Fail(message string) Response {
	return Response{Success: false, Message: &message}
}
