package domain

import "errors"

// Domain errors represent conversion failures.
// These are distinct from infrastructure errors.
var (
	// ErrUnsupportedFormat indicates the input file is not a valid container
	// for its declared format (e.g. not a DOCX/ZIP archive).
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrCorruptDocument indicates the container opened but its internal
	// structure could not be read.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrUnsupportedConversion indicates no converter is registered for the
	// requested input/output format pair.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrUnsupportedLocale indicates the requested locale has no bundled
	// strings and no fallback is available.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrInvalidChunkSize indicates a configured chunk size limit of zero or less.
	ErrInvalidChunkSize = errors.New("invalid chunk size")

	// ErrOutputWrite indicates the output destination is not writable.
	ErrOutputWrite = errors.New("output write failure")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
