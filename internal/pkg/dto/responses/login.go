package responses

type ValidateEmail struct {
	Email   string `json:"email"`
	Touched bool   `json:"touched"`
	Error   string `json:"error,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}
