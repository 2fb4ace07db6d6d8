// Package common provides spans and diagnostic objects shared by the frontend.
package common

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
)

type (
	dSeverity  = protocol.DiagnosticSeverity
	diagnostic = protocol.Diagnostic
)

func NewDiagnostic(severity dSeverity, message string, span Span) *diagnostic {
	return &protocol.Diagnostic{
		Severity: &severity,
		Message:  message,
		Range:    span.ToRange(),
	}
}

func ErrorDiag(msg string, span Span) *diagnostic {
	return NewDiagnostic(protocol.DiagnosticSeverityError,
		msg, span)
}

func PanicDiag(msg string, span Span) {
	panic(ErrorDiag(msg, span))
}

func WarningDiag(msg string, span Span) *diagnostic {
	return NewDiagnostic(protocol.DiagnosticSeverityWarning,
		msg, span)
}

// DiagError carries a diagnostic across an error boundary.
type DiagError struct {
	Src  string
	Diag protocol.Diagnostic
}

func NewDiagError(src string, diag *diagnostic) *DiagError {
	return &DiagError{Src: src, Diag: *diag}
}

// Error formats the diagnostic as src:line:col: message, with 1-based positions.
func (e *DiagError) Error() string {
	start := e.Diag.Range.Start
	if e.Src == "" {
		return fmt.Sprintf("%d:%d: %s", start.Line+1, start.Character+1, e.Diag.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Src, start.Line+1, start.Character+1, e.Diag.Message)
}
