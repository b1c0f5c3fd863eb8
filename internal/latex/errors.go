// Package latex invokes the external pdflatex compiler to produce PDF
// artifacts from assembled LaTeX documents.
package latex

import "fmt"

// UnavailableError indicates the pdflatex binary was not found at startup.
// This is a setup error, not a per-request failure.
type UnavailableError struct {
	Binary string
	Cause  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s not found in PATH. Install a LaTeX distribution (e.g., TeX Live, MiKTeX): %v", e.Binary, e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// CompilationError indicates a compilation run failed. LogOutput carries the
// tail of the compiler diagnostics; Timeout marks runs killed by the per-pass
// deadline.
type CompilationError struct {
	Message   string
	LogOutput string
	Timeout   bool
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("latex compilation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("latex compilation failed: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}
