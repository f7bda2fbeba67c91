package remeha

import (
	"errors"
	"strconv"
)

// ErrUnauthorized is returned when the Remeha Home API rejects the credentials.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is returned when the Remeha Home API replies with an unexpected HTTP status code.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return "remeha: " + e.Status
	}
	return "remeha: http status " + strconv.Itoa(e.StatusCode)
}
