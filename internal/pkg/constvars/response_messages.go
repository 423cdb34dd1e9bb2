package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Login messages
	ValidateEmailSuccessMessage = "email validated"
	HealthCheckSuccessMessage   = "ok"
)
