package model

// FailureKind classifies why a user action did not complete
type FailureKind int

const (
	// FailureUserInput means the request was rejected locally (empty URL, bad filename, no selection)
	FailureUserInput FailureKind = iota + 1

	// FailureToolUnavailable means the rendering engine is missing or misconfigured
	FailureToolUnavailable

	// FailureConversionFailed means the rendering engine ran but reported an error
	FailureConversionFailed

	// FailureFilesystem means a file or directory operation failed
	FailureFilesystem
)

// String returns the string representation of FailureKind
func (k FailureKind) String() string {
	switch k {
	case FailureUserInput:
		return "UserInput"
	case FailureToolUnavailable:
		return "ToolUnavailable"
	case FailureConversionFailed:
		return "ConversionFailed"
	case FailureFilesystem:
		return "Filesystem"
	default:
		return "Unknown"
	}
}

// IsLocal returns true if the failure was detected before any external tool ran
func (k FailureKind) IsLocal() bool {
	return k == FailureUserInput
}

// IsExternal returns true if the failure came from the rendering engine
func (k FailureKind) IsExternal() bool {
	return k == FailureToolUnavailable || k == FailureConversionFailed
}
