package repository

import "errors"

// ErrDuplicateID is returned when a message with the same ID is already in the log.
var ErrDuplicateID = errors.New("duplicate message id")

// ErrUnknownCategory is returned for a project filter that matches no category.
var ErrUnknownCategory = errors.New("unknown project category")
