package response

// Message is the plain error body used across the API.
type Message struct {
	Message string `json:"message"`
}

// Status is the success/failure body returned by write endpoints that do
// not echo a row (newsletter, contact, auth, deletes).
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Error(msg string) Message {
	return Message{Message: msg}
}

func OK(msg string) Status {
	return Status{Success: true, Message: msg}
}

func Failed(msg string) Status {
	return Status{Success: false, Message: msg}
}
