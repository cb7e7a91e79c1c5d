package objz

import "github.com/udhos/objz/internal/objerr"

// ErrorKind classifies a parse failure.
type ErrorKind = objerr.Kind

const (
	ErrIOOpen       = objerr.IOOpen
	ErrIORead       = objerr.IORead
	ErrParseFloat   = objerr.ParseFloat
	ErrParseInt     = objerr.ParseInt
	ErrParseFace    = objerr.ParseFace
	ErrExpectedName = objerr.ExpectedName
	ErrFaceTooShort = objerr.FaceTooShort
)

// ParseError is the error type returned by a failing Load. It renders as
// "(line:col) message" for lexical/syntactic errors, or
// "Failed to read file '<path>'" for I/O errors. Use errors.As to recover
// Kind, Line, Col and Keyword.
type ParseError = objerr.ParseError
