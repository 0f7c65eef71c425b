package errors

import "fmt"

var (
	// ErrValidation covers recoverable input problems, e.g. a message with
	// neither text nor an image. The user corrects the input and retries.
	ErrValidation = fmt.Errorf("invalid send request")
	// ErrUnknownUser means the sender or receiver is not a known participant.
	ErrUnknownUser = fmt.Errorf("unknown participant")
	// ErrPermissionDenied is the access gate refusing a send. Surfaced to the
	// user as "you need an active package to message this coach".
	ErrPermissionDenied = fmt.Errorf("no active package with this coach")
	// ErrStoreUnavailable wraps transient storage failures. Safe to retry
	// with backoff at the caller's discretion.
	ErrStoreUnavailable = fmt.Errorf("message store unavailable")
	// ErrEmptyWords rejects a moderator built without a default word list.
	ErrEmptyWords = fmt.Errorf("no words have been found")
	// ErrNotifierClosed is returned when subscribing to a stopped notifier.
	ErrNotifierClosed = fmt.Errorf("notifier is closed")
)
