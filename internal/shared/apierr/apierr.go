// Package apierr defines the error taxonomy shared by every remote call
// the dashboard performs. Gateways translate transport and HTTP failures
// into these types so controllers can decide between a generic toast, a
// conflict-specific message, or a redirect to sign-in.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// NetworkError indicates the request could not be completed at all: no
// HTTP response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request could not be completed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// FetchError is a non-2xx HTTP response without a recognized domain
// meaning. Message holds the best-effort text extracted from the body.
type FetchError struct {
	Status  int
	Body    string
	Message string
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ConflictError is a delete or update rejected by a referential
// constraint on the server, e.g. a company that still has jobs.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthError covers invalid credentials and missing or expired tokens on
// protected actions.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ValidationError is a local, pre-request field validation failure. It
// never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors aggregates per-field failures from a single submit.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return "validation failed"
	case 1:
		return e[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", e[0].Error(), len(e)-1)
	}
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a referential-constraint rejection.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var single *ValidationError
	if errors.As(err, &single) {
		return true
	}
	var multi ValidationErrors
	return errors.As(err, &multi)
}

// ExtractMessage pulls a human-readable message out of a JSON error body.
// The remote API is inconsistent about the key it uses, so the common
// ones are tried in order.
func ExtractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, candidate := range []string{payload.Message, payload.Error, payload.Detail} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// MessageFor returns the user-facing text for any error from this
// taxonomy, falling back to err.Error() for unknown errors.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}
	var network *NetworkError
	if errors.As(err, &network) {
		return "Network error. Please check your connection and try again."
	}
	return err.Error()
}
