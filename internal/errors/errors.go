// Package errors provides structured error types for the gemini CLI.
package errors

import (
	"fmt"
	"strings"
)

// Code represents a unique error code.
type Code string

// Error codes.
const (
	// Prompt errors
	CodeSystemMdNotFound  Code = "SYSTEM_MD_NOT_FOUND"
	CodePromptWriteFailed Code = "PROMPT_WRITE_FAILED"

	// Config errors
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// CLIError is the structured error type for the gemini CLI.
type CLIError struct {
	Code  Code
	What  string
	Why   string
	Fix   string
	Cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString(": ")
		b.WriteString(e.Why)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// UserMessage returns a user-friendly message for CLI output.
func (e *CLIError) UserMessage() string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString("\n\nWhy: ")
		b.WriteString(e.Why)
	}
	if e.Fix != "" {
		b.WriteString("\n\nFix: ")
		b.WriteString(e.Fix)
	}
	return b.String()
}

// Is reports whether target is a CLIError with the same code.
func (e *CLIError) Is(target error) bool {
	t, ok := target.(*CLIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *CLIError) WithCause(err error) *CLIError {
	return &CLIError{
		Code:  e.Code,
		What:  e.What,
		Why:   e.Why,
		Fix:   e.Fix,
		Cause: err,
	}
}

// --- Error constructors ---

// ErrSystemMdNotFound returns an error for a requested system prompt override
// whose file does not exist. This is fatal: an explicit override that cannot
// be honored must abort startup rather than silently fall back to defaults.
func ErrSystemMdNotFound(path string) *CLIError {
	return &CLIError{
		Code: CodeSystemMdNotFound,
		What: "missing system prompt override file",
		Why:  fmt.Sprintf("GEMINI_SYSTEM_MD points at %s, which cannot be read", path),
		Fix:  "Create the file, or unset GEMINI_SYSTEM_MD to use the built-in prompt",
	}
}

// ErrPromptWriteFailed returns an error for a failed system prompt write-back.
func ErrPromptWriteFailed(path string) *CLIError {
	return &CLIError{
		Code: CodePromptWriteFailed,
		What: "failed to write system prompt",
		Why:  fmt.Sprintf("Could not persist the computed prompt to %s", path),
		Fix:  "Check that the target directory is writable, or unset GEMINI_WRITE_SYSTEM_MD",
	}
}

// ErrConfigInvalid returns an error for an unparseable settings file.
func ErrConfigInvalid(path string) *CLIError {
	return &CLIError{
		Code: CodeConfigInvalid,
		What: "invalid settings file",
		Why:  fmt.Sprintf("%s is not valid YAML", path),
		Fix:  "Fix the syntax error or remove the file to use defaults",
	}
}
