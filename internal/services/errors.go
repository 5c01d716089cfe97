package services

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrChatNotFound    = errors.New("chat not found")
	ErrMessageNotFound = errors.New("message not found")
)

// listResultCap bounds every listing; there is no pagination beyond it.
const listResultCap = 1000
