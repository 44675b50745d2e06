package response

var (
	ErrAuthRequired = Message{
		Message: "Authentication required",
	}

	ErrNotAuthenticated = Message{
		Message: "Not authenticated",
	}

	ErrInvalidRequestFormat = Message{
		Message: "Invalid request format",
	}

	ErrInvalidCredentials = Status{
		Success: false,
		Message: "Invalid username or password",
	}
)
