package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Storage errors
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")
	ErrMalformedPayload   = fmt.Errorf("malformed persisted payload")
	ErrRecordNotFound     = fmt.Errorf("record not found")

	// Notification errors
	ErrPermissionDenied   = fmt.Errorf("notification permission denied")
	ErrChannelUnavailable = fmt.Errorf("notification channel unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
