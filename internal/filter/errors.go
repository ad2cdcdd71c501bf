package filter

import "errors"

// Errors returned when loading a filter script.
var (
	// ErrScriptLoad indicates the script failed to parse or run.
	ErrScriptLoad = errors.New("filter script load failed")

	// ErrNoAcceptFunction indicates the script defines no accept function.
	ErrNoAcceptFunction = errors.New("filter script defines no accept function")
)
