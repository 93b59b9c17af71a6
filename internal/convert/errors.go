// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for conversion failures. Every error returned by Convert
// matches exactly one of them under errors.Is.
var (
	// ErrFileAccess reports that the input CSV could not be opened or read.
	ErrFileAccess = errors.New("file access error")
	// ErrParse reports malformed CSV or input that is not valid UTF-8.
	ErrParse = errors.New("parse error")
	// ErrWrite reports that the output JSON could not be written.
	ErrWrite = errors.New("write error")
)

// Error carries the failure kind, the path involved, and the cause.
type Error struct {
	Kind error
	Path string
	Err  error
}

// Error names the path only when the cause does not already mention it, as
// errors from package os do.
func (e *Error) Error() string {
	if e.Path == "" || strings.Contains(e.Err.Error(), e.Path) {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause so callers can match either.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func fileAccessError(path string, err error) error {
	return &Error{Kind: ErrFileAccess, Path: path, Err: err}
}

func parseError(path string, err error) error {
	return &Error{Kind: ErrParse, Path: path, Err: err}
}

func writeError(path string, err error) error {
	return &Error{Kind: ErrWrite, Path: path, Err: err}
}
