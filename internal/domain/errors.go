package domain

import "errors"

var (
	// ErrMalformedIdentifier is returned when a runtime test identifier has no separator.
	ErrMalformedIdentifier = errors.New("malformed test identifier")
	// ErrMalformedReport is returned when the report lacks a testsuite element or its counters.
	ErrMalformedReport = errors.New("malformed report")
	// ErrReadReport is returned when the original report cannot be read.
	ErrReadReport = errors.New("read report")
	// ErrWriteReport is returned when the output report cannot be written.
	ErrWriteReport = errors.New("write report")
	// ErrNoResults is returned when no result log was supplied.
	ErrNoResults = errors.New("no re-run results given")
	// ErrRerunFailed is returned when the re-run command exited unsuccessfully.
	ErrRerunFailed = errors.New("re-run command failed")
)
