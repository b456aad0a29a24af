package repository

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport covers failures before a response status was read: dial, timeout, decode.
	ErrTransport = errors.New("directory service unreachable")
	// ErrService covers any non-2xx response.
	ErrService = errors.New("directory service error")
)

// ServiceError is a non-2xx response from the directory service.
type ServiceError struct {
	Operation  string
	StatusCode int
	Detail     string // server-supplied explanation, may be empty
	Body       string
}

func (e *ServiceError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("directory API %s error %d: %s", e.Operation, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("directory API %s error %d: %s", e.Operation, e.StatusCode, e.Body)
}

func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

// NotFound reports whether the service answered 404.
func (e *ServiceError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Detail returns the server-supplied explanation carried by err, if any.
func Detail(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Detail
	}
	return ""
}

// IsNotFound reports whether err is a 404 from the directory service.
func IsNotFound(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.NotFound()
}
