package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies failures that may cross the API boundary.
type Kind string

const (
	KindUnauthenticated  Kind = "unauthenticated"
	KindInvalidArgument  Kind = "invalid-argument"
	KindPermissionDenied Kind = "permission-denied"
	KindNotFound         Kind = "not-found"
	KindInternal         Kind = "internal"
)

var (
	// ErrUnauthenticated is returned when no caller identity is present.
	ErrUnauthenticated = New(KindUnauthenticated, "User must be authenticated.")
	// ErrAdminRequired is returned when a non-admin calls an admin operation.
	ErrAdminRequired = New(KindPermissionDenied, "Admin access required")
	// ErrInvalidBody is returned when the request body cannot be decoded.
	ErrInvalidBody = New(KindInvalidArgument, "Invalid request body")
	// ErrPasswordRequired is returned when the password field is missing.
	ErrPasswordRequired = New(KindInvalidArgument, "Password is required")
	// ErrURLRequired is returned when the url field is missing.
	ErrURLRequired = New(KindInvalidArgument, "URL is required")
	// ErrFileRequired is returned when neither file name nor hash is given.
	ErrFileRequired = New(KindInvalidArgument, "File name or hash is required")
	// ErrVerdictRequired is returned when submission id or verdict is missing.
	ErrVerdictRequired = New(KindInvalidArgument, "Submission ID and verdict are required")
	// ErrInvalidPhishingVerdict is returned for verdicts outside safe/phishing.
	ErrInvalidPhishingVerdict = New(KindInvalidArgument, "Verdict must be 'safe' or 'phishing'")
	// ErrInvalidMalwareVerdict is returned for verdicts outside clean/malware.
	ErrInvalidMalwareVerdict = New(KindInvalidArgument, "Verdict must be 'clean' or 'malware'")
	// ErrInvalidRole is returned for roles outside user/admin.
	ErrInvalidRole = New(KindInvalidArgument, "Role must be 'user' or 'admin'")
	// ErrRoleChangeForbidden is returned when self-service elevation is disabled.
	ErrRoleChangeForbidden = New(KindPermissionDenied, "Role change requires an administrator")
	// ErrSubmissionNotFound is returned when a verdict targets an unknown submission.
	ErrSubmissionNotFound = New(KindNotFound, "Submission not found")
)

// Error is a failure with a kind the API knows how to report.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a typed error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// InvalidArgument builds an invalid-argument error with a formatted message.
func InvalidArgument(format string, args ...any) *Error {
	return New(KindInvalidArgument, fmt.Sprintf(format, args...))
}

// KindOf returns the kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return KindInternal
}

// KindForStatus classifies an HTTP status raised outside the domain, such as
// an unknown route or method.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindUnauthenticated
	case http.StatusForbidden:
		return KindPermissionDenied
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return KindNotFound
	}
	if status >= 400 && status < 500 {
		return KindInvalidArgument
	}
	return KindInternal
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Untyped errors never leak
// their message; they become a generic internal failure.
func MapErrorToHTTP(err error) *HTTPError {
	var typed *Error
	if !errors.As(err, &typed) {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", string(KindInternal))
	}

	switch typed.Kind {
	case KindUnauthenticated:
		return NewHTTPError(http.StatusUnauthorized, typed.Message, string(typed.Kind))
	case KindInvalidArgument:
		return NewHTTPError(http.StatusBadRequest, typed.Message, string(typed.Kind))
	case KindPermissionDenied:
		return NewHTTPError(http.StatusForbidden, typed.Message, string(typed.Kind))
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, typed.Message, string(typed.Kind))
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", string(KindInternal))
	}
}
