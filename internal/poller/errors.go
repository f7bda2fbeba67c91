package poller

import "errors"

var (
	// ErrAuthRequired indicates the Remeha Home API rejected the credentials. Scheduled updates should stop until
	// the credentials have been renewed.
	ErrAuthRequired = errors.New("authentication required")
	// ErrUpdateFailed indicates the update cycle failed. The next scheduled update may succeed.
	ErrUpdateFailed = errors.New("update failed")
)
