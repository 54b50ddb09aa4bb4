package domain

// Severity classifies a diagnostic line.
type Severity int

// Diagnostic severities, from least to most severe.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Outcome is the two-variant result of a diagnostic operation:
// a notice (success with message) or a failure (failure with message).
// Process exit codes are derived from it only at the CLI boundary.
type Outcome struct {
	Message  string
	Severity Severity
}

// Notice returns a non-failing outcome with the given message.
func Notice(severity Severity, message string) Outcome {
	if severity == SeverityError {
		severity = SeverityWarning
	}
	return Outcome{Message: message, Severity: severity}
}

// Failure returns a failing outcome with the given message.
func Failure(message string) Outcome {
	return Outcome{Message: message, Severity: SeverityError}
}

// Failed reports whether the outcome is the failure variant.
func (o Outcome) Failed() bool {
	return o.Severity == SeverityError
}

// ExitCode maps the outcome to the conventional process exit status.
func (o Outcome) ExitCode() int {
	if o.Failed() {
		return ExitFailure
	}
	return ExitSuccess
}
