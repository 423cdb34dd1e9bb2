package bootstrap

type State int

const (
	CheckingExistingSession State = iota
	AwaitingInput
	Submitting
	Redirecting
)

func (s State) String() string {
	switch s {
	case CheckingExistingSession:
		return "checking_existing_session"
	case AwaitingInput:
		return "awaiting_input"
	case Submitting:
		return "submitting"
	case Redirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// FormState is the transient state of the email form for one activation.
type FormState struct {
	Email   string
	Errors  map[string]string
	Touched map[string]bool
	Loading bool
}

// FieldError returns the error to display for field. Errors of untouched
// fields stay hidden.
func (f FormState) FieldError(field string) string {
	if !f.Touched[field] {
		return ""
	}
	return f.Errors[field]
}

func (f FormState) clone() FormState {
	out := FormState{
		Email:   f.Email,
		Errors:  make(map[string]string, len(f.Errors)),
		Touched: make(map[string]bool, len(f.Touched)),
		Loading: f.Loading,
	}
	for k, v := range f.Errors {
		out.Errors[k] = v
	}
	for k, v := range f.Touched {
		out.Touched[k] = v
	}
	return out
}
