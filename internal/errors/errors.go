// Package errors provides standardized error types for the nginx-deploy tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages across settings
// resolution, template rendering and command assembly.
//
// # Error Types
//
// DeployError is the primary error type, containing:
//   - Code: Categorizes the error (ALREADY_EXISTS, VALIDATION, etc.)
//   - Message: Human-readable error description
//   - Path: The file path involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrTemplateExists   // install refuses to overwrite a local template
//	errors.ErrDomainsRequired  // certbot found no domains to issue for
//	errors.ErrInvalidAction    // unknown service action
//	errors.ErrHostRequired     // remote command without a target host
//	errors.ErrCommandFailed    // a remote command exited non-zero
//	errors.ErrSettingNotFound  // settings get for an unknown key
//
// # Usage
//
//	// Local template already installed
//	return errors.AlreadyExists(path)
//
//	// Validation error
//	return errors.Validation("certbot domains required")
//
//	// Wrapping an underlying error
//	return errors.Wrap(errors.ErrCodeTemplate, "failed to read template", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison. Comparison is by code, so any
// VALIDATION error matches ErrDomainsRequired:
//
//	if errors.Is(err, errors.ErrTemplateExists) {
//	    // Handle existing template
//	}
//
// Use errors.As for type assertion:
//
//	var deployErr *errors.DeployError
//	if errors.As(err, &deployErr) {
//	    fmt.Printf("Error code: %s, Path: %s\n", deployErr.Code, deployErr.Path)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"      // Resource not found
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS" // Resource already exists
	ErrCodeValidation    ErrorCode = "VALIDATION"     // Precondition failed
	ErrCodeConfig        ErrorCode = "CONFIG"         // Settings error
	ErrCodeTemplate      ErrorCode = "TEMPLATE"       // Template read/parse/render error
	ErrCodeExec          ErrorCode = "EXEC"           // Command execution failed
	ErrCodeInternal      ErrorCode = "INTERNAL"       // Internal/unexpected error
)

// DeployError represents a structured error with context about the operation.
type DeployError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Path    string    // File path (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *DeployError) Error() string {
	if e.Path != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *DeployError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *DeployError) Is(target error) bool {
	t, ok := target.(*DeployError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrTemplateExists indicates a project-local template is already installed.
	ErrTemplateExists = &DeployError{Code: ErrCodeAlreadyExists, Message: "file exists; please rm to continue"}

	// ErrTemplateNotFound indicates no template could be read.
	ErrTemplateNotFound = &DeployError{Code: ErrCodeNotFound, Message: "template not found"}

	// ErrDomainsRequired indicates certbot has no domains to issue for.
	ErrDomainsRequired = &DeployError{Code: ErrCodeValidation, Message: "certbot domains required"}

	// ErrInvalidAction indicates an unknown nginx service action.
	ErrInvalidAction = &DeployError{Code: ErrCodeValidation, Message: "invalid service action"}

	// ErrHostRequired indicates a remote command was run without a target host.
	ErrHostRequired = &DeployError{Code: ErrCodeConfig, Message: "domain setting required for remote commands"}

	// ErrCommandFailed indicates a remote command exited non-zero.
	ErrCommandFailed = &DeployError{Code: ErrCodeExec, Message: "command failed"}

	// ErrSettingNotFound indicates a lookup of a key that was never set.
	ErrSettingNotFound = &DeployError{Code: ErrCodeNotFound, Message: "setting not set"}

	// ErrChecksFailed indicates doctor found at least one failing check.
	ErrChecksFailed = &DeployError{Code: ErrCodeValidation, Message: "doctor found problems"}
)

// AlreadyExists creates an error for a file that must not be overwritten.
func AlreadyExists(path string) error {
	return &DeployError{
		Code:    ErrCodeAlreadyExists,
		Message: "file exists; please rm to continue",
		Path:    path,
	}
}

// NotFound creates an error for a missing file.
func NotFound(path string, err error) error {
	return &DeployError{
		Code:    ErrCodeNotFound,
		Message: "template not found",
		Path:    path,
		Err:     err,
	}
}

// SettingNotFound creates an error for a settings key that was never set.
func SettingNotFound(key string) error {
	return &DeployError{
		Code:    ErrCodeNotFound,
		Message: "setting not set",
		Path:    key,
	}
}

// CommandFailed creates an error for a command that exited non-zero. The
// command is kept as the path so long commands can be shortened by the caller.
func CommandFailed(cmd string, err error) error {
	return &DeployError{
		Code:    ErrCodeExec,
		Message: "command failed",
		Path:    cmd,
		Err:     err,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &DeployError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Config creates a settings error with a custom message.
func Config(msg string) error {
	return &DeployError{
		Code:    ErrCodeConfig,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &DeployError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapPath creates an error with path context and underlying error.
func WrapPath(code ErrorCode, msg, path string, err error) error {
	return &DeployError{
		Code:    code,
		Message: msg,
		Path:    path,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
