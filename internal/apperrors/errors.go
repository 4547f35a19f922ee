package apperrors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the sortvis binary.
const (
	ExitSuccess      = 0
	ExitErrorGeneric = 1
	ExitErrorConfig  = 4 // invalid flags, config file or preset
	ExitErrorInit    = 5 // window or terminal could not be initialised
)

// ConfigError reports invalid user input. The run cannot start.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InitError reports that a rendering collaborator could not be brought up.
type InitError struct {
	Component string
	Cause     error
}

func (e InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Component, e.Cause)
}

func (e InitError) Unwrap() error { return e.Cause }

func NewInitError(component string, cause error) error {
	return InitError{Component: component, Cause: cause}
}

// ExitCode maps an error chain to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	var initErr InitError
	if errors.As(err, &initErr) {
		return ExitErrorInit
	}
	return ExitErrorGeneric
}
