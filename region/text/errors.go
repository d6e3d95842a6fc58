package text

import "errors"

var (
	// ErrTooLong indicates an encoded string does not fit its fixed field.
	ErrTooLong = errors.New("text: encoded string longer than field")

	// ErrUnknownEncoding indicates an Encoding value outside the defined set.
	ErrUnknownEncoding = errors.New("text: unknown encoding")
)
