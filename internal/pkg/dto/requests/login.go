package requests

type Login struct {
	Email string `json:"email" validate:"required,email"`
}

// ValidateEmail is sent by the form on every change or blur of the email field.
type ValidateEmail struct {
	Email string `json:"email"`
	Event string `json:"event"`
}
