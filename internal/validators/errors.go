package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID       = errors.New("record id is required")
	ErrInvalidUserID   = errors.New("user id is required")
	ErrEmptyTitle      = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidURL      = errors.New("url must be an absolute http(s) address")
	ErrPlaceholderSave = errors.New("a display placeholder cannot be saved as a value")
)
