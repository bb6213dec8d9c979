// Package errors provides standardized error handling for the Galleray
// application. It defines common error types, constants, and helper functions
// for consistent error creation, wrapping, and handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Scan error kinds
	DirectoryNotFound
	DirectoryUnreadable
	EmptyDirectory
	// Image error kinds
	ImageDecodeFailure
	// Config error kinds
	InvalidConfig
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ScanError represents errors raised while scanning a directory
type ScanError struct {
	ApplicationError
	dir string
}

// NewScanError creates a new scan error for a directory
func NewScanError(msg string, dir string, kind ErrorKind, err error) *ScanError {
	return &ScanError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		dir: dir,
	}
}

// Error returns the scan error message
func (e *ScanError) Error() string {
	if e.dir != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.dir, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.dir)
	}
	return e.ApplicationError.Error()
}

// Dir returns the directory associated with the error
func (e *ScanError) Dir() string {
	return e.dir
}

// DecodeError represents a failure to decode an image file
type DecodeError struct {
	ApplicationError
	path string
}

// NewDecodeError creates a new image decode error
func NewDecodeError(msg string, path string, err error) *DecodeError {
	return &DecodeError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: ImageDecodeFailure,
		},
		path: path,
	}
}

// Error returns the decode error message
func (e *DecodeError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *DecodeError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidConfig,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// kindOf extracts the ErrorKind from the first typed error in the chain.
func kindOf(err error) ErrorKind {
	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		return scanErr.Kind()
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.Kind()
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind()
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

// IsDirectoryNotFound checks if the error reports a missing directory
func IsDirectoryNotFound(err error) bool {
	return kindOf(err) == DirectoryNotFound
}

// IsDirectoryUnreadable checks if the error reports an unreadable directory
func IsDirectoryUnreadable(err error) bool {
	return kindOf(err) == DirectoryUnreadable
}

// IsEmptyDirectory checks if the error reports a directory without images
func IsEmptyDirectory(err error) bool {
	return kindOf(err) == EmptyDirectory
}

// IsImageDecodeFailure checks if the error reports a corrupt or unsupported image
func IsImageDecodeFailure(err error) bool {
	return kindOf(err) == ImageDecodeFailure
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return kindOf(err) == InvalidConfig
}
