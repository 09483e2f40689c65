package models

import (
	"errors"
	"fmt"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

/* BadRequestError */

var ErrBadRequest = errors.New("bad request")

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

func (*BadRequestError) Unwrap() error {
	return ErrBadRequest
}

func NewBadRequestError(message string) error {
	return &BadRequestError{Message: message}
}

/* DocumentParseError */

var ErrDocumentParse = errors.New("unable to parse document")

// DocumentParseError is returned when an uploaded document cannot be decoded into page text.
// It fails the whole request since extraction is per document.
type DocumentParseError struct {
	Filename string
	Err      error
}

func (e *DocumentParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %q", ErrDocumentParse, e.Filename)
	}
	return fmt.Sprintf("%s %q: %v", ErrDocumentParse, e.Filename, e.Err)
}

func (e *DocumentParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDocumentParse}
	}
	return []error{ErrDocumentParse, e.Err}
}

func NewDocumentParseError(filename string, err error) error {
	return &DocumentParseError{Filename: filename, Err: err}
}
